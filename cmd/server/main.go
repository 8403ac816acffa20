package main

import (
	"log"

	httpadapter "career-compass/internal/adapter/http"
	repo "career-compass/internal/adapter/repository"
	"career-compass/internal/usecase"
	"career-compass/pkg/ai"
	infra "career-compass/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.OpenAIKey == "" {
		log.Printf("warning: OPENAI_API_KEY not set, AI routes will fail")
	}

	// lifecycle: init store, seed fixtures, then serve until shutdown
	store := repo.NewMemStore()
	repo.Seed(store)

	gateway := ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.AITimeout)
	auth := usecase.NewAuth(store)
	advisor := usecase.NewAdvisor(gateway)
	sessions := session.New()

	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Use(recover.New())
	app.Use(logger.New())

	h := httpadapter.NewHandler(store, auth, advisor, sessions)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
