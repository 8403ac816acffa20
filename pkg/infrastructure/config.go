package infrastructure

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, sourced from environment
// variables. A local .env file is honored when present.
type Config struct {
	Port        string        `env:"PORT" envDefault:"3000"`
	OpenAIKey   string        `env:"OPENAI_API_KEY"`
	OpenAIModel string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	AITimeout   time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`
}

func LoadConfig() (Config, error) {
	// best-effort: absence of a .env file is the normal case in prod
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
