package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"career-compass/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable is the single failure category for the recommendation
// service: transport errors, non-2xx replies, and unparseable output all
// collapse into it. Callers get no recommendation on failure, never a
// stale or partial one.
var ErrUnavailable = errors.New("recommendation service unavailable")

// completionAPI is the slice of the OpenAI client the gateway needs.
// *openai.Client satisfies it; tests inject a fake.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client turns a student's profile into structured prompts for the
// OpenAI chat-completions API and normalizes the replies. It keeps no
// state between calls: no retries, no caching, no store side effects.
type Client struct {
	api     completionAPI
	model   string
	timeout time.Duration
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{api: openai.NewClient(apiKey), model: model, timeout: timeout}
}

// NewClientWithAPI wires an explicit completion backend. Used by tests.
func NewClientWithAPI(api completionAPI, model string, timeout time.Duration) *Client {
	return &Client{api: api, model: model, timeout: timeout}
}

type SkillAssessment struct {
	Name            string   `json:"name"`
	Level           int      `json:"level"`
	Recommendations []string `json:"recommendations"`
}

type CareerSuggestion struct {
	Title           string   `json:"title"`
	MatchPercentage int      `json:"matchPercentage"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"requiredSkills"`
	SalaryRange     string   `json:"salaryRange"`
	DemandStatus    string   `json:"demandStatus"`
}

type CareerRecommendation struct {
	Skills           []SkillAssessment  `json:"skills"`
	TopCareerMatches []CareerSuggestion `json:"topCareerMatches"`
}

type MissingSkill struct {
	Skill                string   `json:"skill"`
	ImportanceLevel      string   `json:"importanceLevel"`
	RecommendedResources []string `json:"recommendedResources"`
}

type SkillGapReport struct {
	TargetCareer     string         `json:"targetCareer"`
	MissingSkills    []MissingSkill `json:"missingSkills"`
	TimeEstimate     string         `json:"timeEstimate"`
	AdditionalAdvice string         `json:"additionalAdvice"`
}

// RecommendCareers asks the model for career matches based on skills,
// interests and academic background. The model's own ordering is not
// trusted: topCareerMatches is re-sorted best match first before the
// result is returned.
func (c *Client) RecommendCareers(ctx context.Context, skills, interests []string, background domain.AcademicBackground) (*CareerRecommendation, error) {
	prompt := fmt.Sprintf(`I need career recommendations based on the following information about a student from Adeleke University:

Skills: %s
Interests: %s
Academic Background:
  - Courses: %s
  - Projects: %s
  - Achievements: %s

Based on this information, please provide:
1. A skill assessment with skill levels (as percentages) and specific recommendations to improve each skill
2. Top career matches with match percentages, descriptions, required skills, salary ranges (in Naira), and demand status

Return your analysis in the following JSON format:
{
  "skills": [
    {"name": "skill name", "level": percentage (0-100), "recommendations": ["recommendation 1", "recommendation 2"]}
  ],
  "topCareerMatches": [
    {"title": "career title", "matchPercentage": percentage (0-100), "description": "brief job description", "requiredSkills": ["skill 1", "skill 2"], "salaryRange": "N X.XM - N Y.YM", "demandStatus": "High demand/Growing/Stable/Declining"}
  ]
}`,
		strings.Join(skills, ", "),
		strings.Join(interests, ", "),
		strings.Join(background.Courses, ", "),
		strings.Join(background.Projects, ", "),
		strings.Join(background.Achievements, ", "))

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var rec CareerRecommendation
	if err := decodeReply(raw, &rec); err != nil {
		return nil, err
	}

	sort.SliceStable(rec.TopCareerMatches, func(i, j int) bool {
		return rec.TopCareerMatches[i].MatchPercentage > rec.TopCareerMatches[j].MatchPercentage
	})
	return &rec, nil
}

// importanceRank orders High before Medium before Low. Anything the
// model invents outside that scale sinks to the bottom.
func importanceRank(level string) int {
	switch level {
	case "High":
		return 0
	case "Medium":
		return 1
	case "Low":
		return 2
	}
	return 3
}

// AnalyzeSkillGap asks the model what skills separate the student from
// a target career. missingSkills comes back sorted High > Medium > Low,
// preserving the model's relative order within each level.
func (c *Client) AnalyzeSkillGap(ctx context.Context, currentSkills []string, targetCareer string) (*SkillGapReport, error) {
	prompt := fmt.Sprintf(`I need to analyze the skill gap between a student's current skills and their target career:

Current Skills: %s
Target Career: %s

Please provide:
1. The skills the student is missing for this career, each with an importance level of exactly "High", "Medium" or "Low"
2. Recommended learning resources for each missing skill
3. A realistic time estimate to close the gap and any additional advice

Return your analysis in the following JSON format:
{
  "targetCareer": "the target career",
  "missingSkills": [
    {"skill": "skill name", "importanceLevel": "High/Medium/Low", "recommendedResources": ["resource 1", "resource 2"]}
  ],
  "timeEstimate": "e.g. 6-9 months",
  "additionalAdvice": "short practical advice"
}`,
		strings.Join(currentSkills, ", "), targetCareer)

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var report SkillGapReport
	if err := decodeReply(raw, &report); err != nil {
		return nil, err
	}

	sort.SliceStable(report.MissingSkills, func(i, j int) bool {
		return importanceRank(report.MissingSkills[i].ImportanceLevel) < importanceRank(report.MissingSkills[j].ImportanceLevel)
	})
	return &report, nil
}

// complete sends one user message and returns the raw reply text. The
// per-call timeout bounds a hanging upstream; there is no retry budget.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

// decodeReply parses the model output as JSON. The upstream is treated
// as untrusted: if the payload doesn't parse as-is, try the substring
// between the first '{' and the last '}' before giving up.
func decodeReply(raw string, v interface{}) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start >= 0 && end > start {
			if err2 := json.Unmarshal([]byte(raw[start:end+1]), v); err2 == nil {
				return nil
			}
		}
		return fmt.Errorf("%w: non-json reply: %v", ErrUnavailable, err)
	}
	return nil
}
