package server

import (
	"fmt"
	"net/http"

	"health-assistant/internal/config"
	"health-assistant/internal/handlers"
	"health-assistant/internal/routes"
	"health-assistant/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewServer wires the Gemini gateway and handlers into an http.Server.
// The API key travels from config into the gateway constructor here; no
// component reads the environment afterwards.
func NewServer(cfg *config.Config, logger zerolog.Logger) *http.Server {
	gemini := services.NewGeminiService(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, logger)

	h := &routes.Handlers{
		Health: handlers.HealthCheckHandler,
		Pages:  handlers.NewPageHandler(cfg.StaticDir),
		Chat:   handlers.NewChatHandler(gemini, logger),
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, h)

	// Add Swagger endpoints
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Port)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: corsMiddleware(router),
	}
}
