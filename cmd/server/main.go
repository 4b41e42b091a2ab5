// Package main Health Assistant API Server
//
//	@title			Health Assistant API
//	@version		1.0
//	@description	A chat backend that analyzes health questions, medical reports and medical images with Gemini
//
//	@contact.name	API Support
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host		localhost:8080
//	@BasePath	/
package main

import (
	"os"
	"time"

	_ "health-assistant/docs" // This imports the docs package to initialize swagger
	"health-assistant/internal/config"
	"health-assistant/internal/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	// A missing key is a warning, not a startup failure: the server runs,
	// but every AI call will come back as an auth error from Gemini.
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is not set; AI calls will fail until it is provided")
	}

	srv := server.NewServer(cfg, logger)
	logger.Info().Str("addr", srv.Addr).Str("model", cfg.GeminiModel).Msg("starting health assistant server")

	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
