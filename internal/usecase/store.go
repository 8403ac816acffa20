package usecase

import "career-compass/internal/domain"

// Store is the persistence contract the use cases and HTTP handlers
// consume. repository.MemStore implements it. Lookups report a miss
// with a false second return, never an error.
type Store interface {
	GetUser(id int) (domain.User, bool)
	GetUserByUsername(username string) (domain.User, bool)
	CreateUser(in domain.InsertUser) domain.User
	UpdateUser(id int, patch domain.UserPatch) (domain.User, bool)

	GetAssessment(id int) (domain.Assessment, bool)
	AssessmentsByUser(userID int) []domain.Assessment
	CreateAssessment(in domain.InsertAssessment) domain.Assessment
	UpdateAssessment(id int, patch domain.AssessmentPatch) (domain.Assessment, bool)

	CareerMatchesByUser(userID int) []domain.CareerMatch
	CreateCareerMatch(in domain.InsertCareerMatch) domain.CareerMatch

	SkillGapsByUser(userID int) []domain.SkillGap
	CreateSkillGap(in domain.InsertSkillGap) domain.SkillGap
	UpdateSkillGap(id int, patch domain.SkillGapPatch) (domain.SkillGap, bool)

	AllResources() []domain.Resource
	ResourcesBySkill(skillID int) []domain.Resource
	CreateResource(in domain.InsertResource) domain.Resource

	MarketTrends() []domain.MarketTrend
	MarketTrendsByCareer(careerTitle string) []domain.MarketTrend
	CreateMarketTrend(in domain.InsertMarketTrend) domain.MarketTrend
}
