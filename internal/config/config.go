package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment-sourced settings. The Gemini API key is
// intentionally not required: startup proceeds without it and the gateway
// surfaces the resulting auth failures per request.
type Config struct {
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Port          int    `env:"PORT" envDefault:"8080"`
	StaticDir     string `env:"STATIC_DIR" envDefault:"static"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
