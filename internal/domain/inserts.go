package domain

import "time"

// Insert* types carry the caller-supplied fields for a create call. The
// store assigns the id and creation timestamp, never the caller.

type InsertUser struct {
	Username           string              `json:"username"`
	Password           string              `json:"password"`
	FullName           string              `json:"fullName"`
	Email              string              `json:"email"`
	Department         string              `json:"department,omitempty"`
	Level              string              `json:"level,omitempty"`
	Skills             []string            `json:"skills"`
	Interests          []string            `json:"interests"`
	AcademicBackground *AcademicBackground `json:"academicBackground,omitempty"`
	ProfileComplete    bool                `json:"profileComplete"`
}

type InsertAssessment struct {
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
}

type InsertCareerMatch struct {
	UserID          int      `json:"userId"`
	Title           string   `json:"title"`
	MatchPercentage int      `json:"matchPercentage"`
	SalaryRange     string   `json:"salaryRange,omitempty"`
	Description     string   `json:"description,omitempty"`
	RequiredSkills  []string `json:"requiredSkills"`
	DemandStatus    string   `json:"demandStatus,omitempty"`
}

type InsertSkillGap struct {
	UserID       int    `json:"userId"`
	Skill        string `json:"skill"`
	CurrentLevel int    `json:"currentLevel"`
	TargetCareer string `json:"targetCareer,omitempty"`
}

type InsertResource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	SkillID     int    `json:"skillId,omitempty"`
}

type InsertMarketTrend struct {
	CareerTitle string `json:"careerTitle"`
	Month       string `json:"month"`
	Year        int    `json:"year"`
	JobCount    int    `json:"jobCount"`
}

// Patch types model partial updates. A nil field is left untouched; a
// set slice or struct replaces the stored value wholesale.

type UserPatch struct {
	Username           *string             `json:"username,omitempty"`
	Password           *string             `json:"password,omitempty"`
	FullName           *string             `json:"fullName,omitempty"`
	Email              *string             `json:"email,omitempty"`
	Department         *string             `json:"department,omitempty"`
	Level              *string             `json:"level,omitempty"`
	Skills             []string            `json:"skills,omitempty"`
	Interests          []string            `json:"interests,omitempty"`
	AcademicBackground *AcademicBackground `json:"academicBackground,omitempty"`
	ProfileComplete    *bool               `json:"profileComplete,omitempty"`
}

type AssessmentPatch struct {
	Title       *string    `json:"title,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

type SkillGapPatch struct {
	Skill        *string `json:"skill,omitempty"`
	CurrentLevel *int    `json:"currentLevel,omitempty"`
	TargetCareer *string `json:"targetCareer,omitempty"`
}
