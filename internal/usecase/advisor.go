package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain"
	"career-compass/pkg/ai"

	"github.com/google/uuid"
)

// CareerAdvisor is the gateway contract to the external generation
// service. ai.Client implements it; tests inject a fake.
type CareerAdvisor interface {
	RecommendCareers(ctx context.Context, skills, interests []string, background domain.AcademicBackground) (*ai.CareerRecommendation, error)
	AnalyzeSkillGap(ctx context.Context, currentSkills []string, targetCareer string) (*ai.SkillGapReport, error)
}

// RecommendationReport is a gateway reply tagged with a report id and
// generation time so clients can cache and reference it.
type RecommendationReport struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	ai.CareerRecommendation
}

type SkillGapAnalysis struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	ai.SkillGapReport
}

// Advisor runs AI-derived analyses. It never touches the store: a
// failed call leaves all persisted data exactly as it was, and a
// successful one commits nothing either.
type Advisor struct {
	gateway CareerAdvisor
	now     func() time.Time
}

func NewAdvisor(gateway CareerAdvisor) *Advisor {
	return &Advisor{gateway: gateway, now: time.Now}
}

func (a *Advisor) RecommendCareers(ctx context.Context, skills, interests []string, background domain.AcademicBackground) (*RecommendationReport, error) {
	rec, err := a.gateway.RecommendCareers(ctx, skills, interests, background)
	if err != nil {
		return nil, err
	}
	return &RecommendationReport{
		ID:                   uuid.New(),
		GeneratedAt:          a.now(),
		CareerRecommendation: *rec,
	}, nil
}

func (a *Advisor) AnalyzeSkillGap(ctx context.Context, currentSkills []string, targetCareer string) (*SkillGapAnalysis, error) {
	report, err := a.gateway.AnalyzeSkillGap(ctx, currentSkills, targetCareer)
	if err != nil {
		return nil, err
	}
	return &SkillGapAnalysis{
		ID:             uuid.New(),
		GeneratedAt:    a.now(),
		SkillGapReport: *report,
	}, nil
}
