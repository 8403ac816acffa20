package domain

import "time"

// AcademicBackground groups the academic history a student fills in on
// their profile. All three lists keep the order the student entered.
type AcademicBackground struct {
	Courses      []string `json:"courses"`
	Projects     []string `json:"projects"`
	Achievements []string `json:"achievements"`
}

type User struct {
	ID                 int                 `json:"id"`
	Username           string              `json:"username"` // unique
	Password           string              `json:"-"`        // never serialized
	FullName           string              `json:"fullName"`
	Email              string              `json:"email"`
	Department         string              `json:"department,omitempty"`
	Level              string              `json:"level,omitempty"`
	Skills             []string            `json:"skills"`
	Interests          []string            `json:"interests"`
	AcademicBackground *AcademicBackground `json:"academicBackground,omitempty"`
	ProfileComplete    bool                `json:"profileComplete"`
	CreatedAt          time.Time           `json:"createdAt"`
}

// Assessment types: technical, soft, career. Status is either
// "scheduled" or "completed"; the store does not police the transition.
type Assessment struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"` // minutes
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CareerMatch struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	Title           string    `json:"title"`
	MatchPercentage int       `json:"matchPercentage"`
	SalaryRange     string    `json:"salaryRange,omitempty"`
	Description     string    `json:"description,omitempty"`
	RequiredSkills  []string  `json:"requiredSkills"`
	DemandStatus    string    `json:"demandStatus,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SkillGap records how far a student currently is from a skill their
// target career expects. CurrentLevel is a 0-100 percentage.
type SkillGap struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	Skill        string    `json:"skill"`
	CurrentLevel int       `json:"currentLevel"`
	TargetCareer string    `json:"targetCareer,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Resource types: course, tutorial, book, video, website, workshop.
// SkillID is an informal link to a SkillGap, not a foreign key.
type Resource struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link,omitempty"`
	SkillID     int       `json:"skillId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MarketTrend struct {
	ID          int       `json:"id"`
	CareerTitle string    `json:"careerTitle"`
	Month       string    `json:"month"`
	Year        int       `json:"year"`
	JobCount    int       `json:"jobCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
