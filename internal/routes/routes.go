package routes

import (
	"net/http"

	"health-assistant/internal/handlers"

	"github.com/gorilla/mux"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Health http.HandlerFunc
	Pages  *handlers.PageHandler
	Chat   *handlers.ChatHandler
}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(router *mux.Router, h *Handlers) {
	// Health endpoint
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// UI pages
	router.HandleFunc("/", h.Pages.Home).Methods(http.MethodGet)
	router.HandleFunc("/chat", h.Pages.ChatPage).Methods(http.MethodGet)

	// Chat API
	router.HandleFunc("/api/chat", h.Chat.Chat).Methods(http.MethodPost)
}
