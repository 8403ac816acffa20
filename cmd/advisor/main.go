package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/usecase"
	"career-compass/pkg/ai"
	infra "career-compass/pkg/infrastructure"
)

// Manual smoke harness for the recommendation gateway: runs both AI
// analyses against the real OpenAI API with a fixture profile and
// prints the normalized replies. Needs OPENAI_API_KEY.
func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.OpenAIKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY is required")
		os.Exit(2)
	}

	advisor := usecase.NewAdvisor(ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.AITimeout))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := advisor.RecommendCareers(ctx,
		[]string{"Python", "SQL", "Statistics"},
		[]string{"Machine Learning", "Data Visualization"},
		domain.AcademicBackground{
			Courses:      []string{"Database Systems", "Linear Algebra"},
			Projects:     []string{"Student results analytics dashboard"},
			Achievements: []string{"Dean's list 2023"},
		})
	if err != nil {
		log.Fatalf("recommend careers: %v", err)
	}
	printJSON("career recommendations", report)

	analysis, err := advisor.AnalyzeSkillGap(ctx, []string{"Python", "SQL"}, "Data Scientist")
	if err != nil {
		log.Fatalf("analyze skill gap: %v", err)
	}
	printJSON("skill gap analysis", analysis)
}

func printJSON(label string, v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Printf("%s:\n%s\n", label, b)
}
