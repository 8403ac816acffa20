package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/domain"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletionAPI struct {
	content string
	err     error
	calls   int
}

func (f *fakeCompletionAPI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func newTestClient(api *fakeCompletionAPI) *Client {
	return NewClientWithAPI(api, openai.GPT4o, 5*time.Second)
}

var background = domain.AcademicBackground{
	Courses:      []string{"Database Systems"},
	Projects:     []string{"Analytics dashboard"},
	Achievements: []string{"Dean's list"},
}

func TestRecommendCareersSortsMatchesDescending(t *testing.T) {
	api := &fakeCompletionAPI{content: `{
		"skills": [{"name": "Python", "level": 70, "recommendations": ["practice"]}],
		"topCareerMatches": [
			{"title": "UX Designer", "matchPercentage": 40, "description": "d", "requiredSkills": ["Figma"], "salaryRange": "N2M - N4M", "demandStatus": "Stable"},
			{"title": "Data Scientist", "matchPercentage": 95, "description": "d", "requiredSkills": ["Python"], "salaryRange": "N5M - N9M", "demandStatus": "High demand"},
			{"title": "Data Analyst", "matchPercentage": 72, "description": "d", "requiredSkills": ["SQL"], "salaryRange": "N3M - N6M", "demandStatus": "Growing"}
		]
	}`}

	rec, err := newTestClient(api).RecommendCareers(context.Background(), []string{"Python"}, []string{"ML"}, background)
	require.NoError(t, err)

	got := make([]int, len(rec.TopCareerMatches))
	for i, m := range rec.TopCareerMatches {
		got[i] = m.MatchPercentage
	}
	assert.Equal(t, []int{95, 72, 40}, got)
	assert.Equal(t, "Data Scientist", rec.TopCareerMatches[0].Title)
	require.Len(t, rec.Skills, 1)
	assert.Equal(t, 70, rec.Skills[0].Level)
}

func TestRecommendCareersExtractsJSONFromNoisyReply(t *testing.T) {
	// code fences around otherwise valid JSON must not break parsing
	api := &fakeCompletionAPI{content: "```json\n{\"skills\": [], \"topCareerMatches\": [{\"title\": \"Data Scientist\", \"matchPercentage\": 88}]}\n```"}

	rec, err := newTestClient(api).RecommendCareers(context.Background(), []string{"Python"}, []string{"ML"}, background)
	require.NoError(t, err)
	require.Len(t, rec.TopCareerMatches, 1)
	assert.Equal(t, 88, rec.TopCareerMatches[0].MatchPercentage)
}

func TestRecommendCareersNonJSONReplyFails(t *testing.T) {
	api := &fakeCompletionAPI{content: "I am sorry, I cannot help with that."}

	rec, err := newTestClient(api).RecommendCareers(context.Background(), []string{"Python"}, []string{"ML"}, background)
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRecommendCareersTransportErrorFails(t *testing.T) {
	api := &fakeCompletionAPI{err: errors.New("connection refused")}

	_, err := newTestClient(api).RecommendCareers(context.Background(), []string{"Python"}, []string{"ML"}, background)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeSkillGapSortsByImportanceStably(t *testing.T) {
	api := &fakeCompletionAPI{content: `{
		"targetCareer": "Data Scientist",
		"missingSkills": [
			{"skill": "Excel", "importanceLevel": "Low", "recommendedResources": ["r"]},
			{"skill": "Statistics", "importanceLevel": "High", "recommendedResources": ["r"]},
			{"skill": "SQL", "importanceLevel": "Medium", "recommendedResources": ["r"]},
			{"skill": "Machine Learning", "importanceLevel": "High", "recommendedResources": ["r"]}
		],
		"timeEstimate": "6-9 months",
		"additionalAdvice": "build a portfolio"
	}`}

	report, err := newTestClient(api).AnalyzeSkillGap(context.Background(), []string{"Python"}, "Data Scientist")
	require.NoError(t, err)

	levels := make([]string, len(report.MissingSkills))
	names := make([]string, len(report.MissingSkills))
	for i, s := range report.MissingSkills {
		levels[i] = s.ImportanceLevel
		names[i] = s.Skill
	}
	assert.Equal(t, []string{"High", "High", "Medium", "Low"}, levels)
	// stable: Statistics appeared before Machine Learning in the reply
	assert.Equal(t, []string{"Statistics", "Machine Learning", "SQL", "Excel"}, names)
	assert.Equal(t, "Data Scientist", report.TargetCareer)
	assert.Equal(t, "6-9 months", report.TimeEstimate)
}

func TestAnalyzeSkillGapUnknownImportanceSinksLast(t *testing.T) {
	api := &fakeCompletionAPI{content: `{
		"targetCareer": "Data Scientist",
		"missingSkills": [
			{"skill": "Vibes", "importanceLevel": "Critical", "recommendedResources": []},
			{"skill": "SQL", "importanceLevel": "Low", "recommendedResources": []}
		],
		"timeEstimate": "3 months",
		"additionalAdvice": ""
	}`}

	report, err := newTestClient(api).AnalyzeSkillGap(context.Background(), []string{"Python"}, "Data Scientist")
	require.NoError(t, err)
	require.Len(t, report.MissingSkills, 2)
	assert.Equal(t, "SQL", report.MissingSkills[0].Skill)
	assert.Equal(t, "Vibes", report.MissingSkills[1].Skill)
}

func TestAnalyzeSkillGapNonJSONReplyFails(t *testing.T) {
	api := &fakeCompletionAPI{content: "not json at all"}

	_, err := newTestClient(api).AnalyzeSkillGap(context.Background(), []string{"Python"}, "Data Scientist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCompleteEmptyChoicesFails(t *testing.T) {
	// a 200 with no choices is still an upstream failure
	c := NewClientWithAPI(&emptyChoicesAPI{}, openai.GPT4o, time.Second)
	_, err := c.RecommendCareers(context.Background(), []string{"Python"}, []string{"ML"}, background)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

type emptyChoicesAPI struct{}

func (e *emptyChoicesAPI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}
