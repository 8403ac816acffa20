package repository

import (
	"sort"
	"sync"
	"time"

	"career-compass/internal/domain"
)

// MemStore is the single source of truth for every entity collection for
// the lifetime of one process. Point lookups are O(1) map hits; list
// operations scan the collection and return rows in insertion order
// (ascending id) unless documented otherwise. Nothing here survives a
// restart and no delete operation exists for any entity.
//
// Fiber serves requests on concurrent goroutines, so unlike a
// single-threaded event loop the maps need a lock. One RWMutex covers
// the whole store; every operation is a single short critical section.
type MemStore struct {
	mu sync.RWMutex

	users         map[int]domain.User
	assessments   map[int]domain.Assessment
	careerMatches map[int]domain.CareerMatch
	skillGaps     map[int]domain.SkillGap
	resources     map[int]domain.Resource
	marketTrends  map[int]domain.MarketTrend

	nextUserID        int
	nextAssessmentID  int
	nextCareerMatchID int
	nextSkillGapID    int
	nextResourceID    int
	nextMarketTrendID int

	now func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:         make(map[int]domain.User),
		assessments:   make(map[int]domain.Assessment),
		careerMatches: make(map[int]domain.CareerMatch),
		skillGaps:     make(map[int]domain.SkillGap),
		resources:     make(map[int]domain.Resource),
		marketTrends:  make(map[int]domain.MarketTrend),

		nextUserID:        1,
		nextAssessmentID:  1,
		nextCareerMatchID: 1,
		nextSkillGapID:    1,
		nextResourceID:    1,
		nextMarketTrendID: 1,

		now: time.Now,
	}
}

// User operations

func (s *MemStore) GetUser(id int) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, false
	}
	return cloneUser(u), true
}

// GetUserByUsername scans the collection for an exact username match.
// Usernames are unique (the HTTP boundary rejects duplicates), so first
// match is the only match.
func (s *MemStore) GetUserByUsername(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(u), true
		}
	}
	return domain.User{}, false
}

func (s *MemStore) CreateUser(in domain.InsertUser) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{
		ID:                 s.nextUserID,
		Username:           in.Username,
		Password:           in.Password,
		FullName:           in.FullName,
		Email:              in.Email,
		Department:         in.Department,
		Level:              in.Level,
		Skills:             cloneStrings(in.Skills),
		Interests:          cloneStrings(in.Interests),
		AcademicBackground: cloneBackground(in.AcademicBackground),
		ProfileComplete:    in.ProfileComplete,
		CreatedAt:          s.now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return cloneUser(u)
}

func (s *MemStore) UpdateUser(id int, patch domain.UserPatch) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, false
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Department != nil {
		u.Department = *patch.Department
	}
	if patch.Level != nil {
		u.Level = *patch.Level
	}
	if patch.Skills != nil {
		u.Skills = cloneStrings(patch.Skills)
	}
	if patch.Interests != nil {
		u.Interests = cloneStrings(patch.Interests)
	}
	if patch.AcademicBackground != nil {
		u.AcademicBackground = cloneBackground(patch.AcademicBackground)
	}
	if patch.ProfileComplete != nil {
		u.ProfileComplete = *patch.ProfileComplete
	}
	s.users[id] = u
	return cloneUser(u), true
}

// Assessment operations

func (s *MemStore) GetAssessment(id int) (domain.Assessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[id]
	return a, ok
}

func (s *MemStore) AssessmentsByUser(userID int) []domain.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Assessment{}
	for _, id := range sortedKeys(s.assessments) {
		if a := s.assessments[id]; a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

func (s *MemStore) CreateAssessment(in domain.InsertAssessment) domain.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := domain.Assessment{
		ID:          s.nextAssessmentID,
		UserID:      in.UserID,
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		Date:        in.Date,
		Duration:    in.Duration,
		Status:      in.Status,
		CreatedAt:   s.now(),
	}
	s.nextAssessmentID++
	s.assessments[a.ID] = a
	return a
}

func (s *MemStore) UpdateAssessment(id int, patch domain.AssessmentPatch) (domain.Assessment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[id]
	if !ok {
		return domain.Assessment{}, false
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Duration != nil {
		a.Duration = *patch.Duration
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	s.assessments[id] = a
	return a, true
}

// Career match operations

// CareerMatchesByUser returns the user's matches ordered best match
// first. The descending sort is part of the contract: list views rely
// on it and the store re-sorts on every call rather than on insert.
func (s *MemStore) CareerMatchesByUser(userID int) []domain.CareerMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.CareerMatch{}
	for _, id := range sortedKeys(s.careerMatches) {
		if m := s.careerMatches[id]; m.UserID == userID {
			out = append(out, cloneCareerMatch(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

func (s *MemStore) CreateCareerMatch(in domain.InsertCareerMatch) domain.CareerMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := domain.CareerMatch{
		ID:              s.nextCareerMatchID,
		UserID:          in.UserID,
		Title:           in.Title,
		MatchPercentage: in.MatchPercentage,
		SalaryRange:     in.SalaryRange,
		Description:     in.Description,
		RequiredSkills:  cloneStrings(in.RequiredSkills),
		DemandStatus:    in.DemandStatus,
		CreatedAt:       s.now(),
	}
	s.nextCareerMatchID++
	s.careerMatches[m.ID] = m
	return cloneCareerMatch(m)
}

// Skill gap operations

func (s *MemStore) SkillGapsByUser(userID int) []domain.SkillGap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.SkillGap{}
	for _, id := range sortedKeys(s.skillGaps) {
		if g := s.skillGaps[id]; g.UserID == userID {
			out = append(out, g)
		}
	}
	return out
}

func (s *MemStore) CreateSkillGap(in domain.InsertSkillGap) domain.SkillGap {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := domain.SkillGap{
		ID:           s.nextSkillGapID,
		UserID:       in.UserID,
		Skill:        in.Skill,
		CurrentLevel: in.CurrentLevel,
		TargetCareer: in.TargetCareer,
		CreatedAt:    s.now(),
	}
	s.nextSkillGapID++
	s.skillGaps[g.ID] = g
	return g
}

func (s *MemStore) UpdateSkillGap(id int, patch domain.SkillGapPatch) (domain.SkillGap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.skillGaps[id]
	if !ok {
		return domain.SkillGap{}, false
	}
	if patch.Skill != nil {
		g.Skill = *patch.Skill
	}
	if patch.CurrentLevel != nil {
		g.CurrentLevel = *patch.CurrentLevel
	}
	if patch.TargetCareer != nil {
		g.TargetCareer = *patch.TargetCareer
	}
	s.skillGaps[id] = g
	return g, true
}

// Resource operations

func (s *MemStore) AllResources() []domain.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Resource{}
	for _, id := range sortedKeys(s.resources) {
		out = append(out, s.resources[id])
	}
	return out
}

func (s *MemStore) ResourcesBySkill(skillID int) []domain.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Resource{}
	for _, id := range sortedKeys(s.resources) {
		if r := s.resources[id]; r.SkillID == skillID {
			out = append(out, r)
		}
	}
	return out
}

func (s *MemStore) CreateResource(in domain.InsertResource) domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := domain.Resource{
		ID:          s.nextResourceID,
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		Link:        in.Link,
		SkillID:     in.SkillID,
		CreatedAt:   s.now(),
	}
	s.nextResourceID++
	s.resources[r.ID] = r
	return r
}

// Market trend operations

func (s *MemStore) MarketTrends() []domain.MarketTrend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.MarketTrend{}
	for _, id := range sortedKeys(s.marketTrends) {
		out = append(out, s.marketTrends[id])
	}
	return out
}

func (s *MemStore) MarketTrendsByCareer(careerTitle string) []domain.MarketTrend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.MarketTrend{}
	for _, id := range sortedKeys(s.marketTrends) {
		if t := s.marketTrends[id]; t.CareerTitle == careerTitle {
			out = append(out, t)
		}
	}
	return out
}

func (s *MemStore) CreateMarketTrend(in domain.InsertMarketTrend) domain.MarketTrend {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := domain.MarketTrend{
		ID:          s.nextMarketTrendID,
		CareerTitle: in.CareerTitle,
		Month:       in.Month,
		Year:        in.Year,
		JobCount:    in.JobCount,
		CreatedAt:   s.now(),
	}
	s.nextMarketTrendID++
	s.marketTrends[t.ID] = t
	return t
}

// helpers

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Entities holding slices are cloned on the way in and out so callers
// never alias store state.
func cloneUser(u domain.User) domain.User {
	u.Skills = cloneStrings(u.Skills)
	u.Interests = cloneStrings(u.Interests)
	u.AcademicBackground = cloneBackground(u.AcademicBackground)
	return u
}

func cloneCareerMatch(m domain.CareerMatch) domain.CareerMatch {
	m.RequiredSkills = cloneStrings(m.RequiredSkills)
	return m
}

func cloneBackground(in *domain.AcademicBackground) *domain.AcademicBackground {
	if in == nil {
		return nil
	}
	return &domain.AcademicBackground{
		Courses:      cloneStrings(in.Courses),
		Projects:     cloneStrings(in.Projects),
		Achievements: cloneStrings(in.Achievements),
	}
}
