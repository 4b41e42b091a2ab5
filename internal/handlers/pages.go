package handlers

import (
	"net/http"
	"path/filepath"
)

// PageHandler serves the static landing and chat UI pages. The pages are
// plain HTML shipped alongside the binary; rendering is not part of the
// core and carries no request state.
type PageHandler struct {
	staticDir string
}

// NewPageHandler creates a page handler rooted at the given directory.
func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// Home godoc
// @Summary Landing page
// @Description Serves the application landing page
// @Tags general
// @Produce html
// @Success 200 {string} string "HTML"
// @Router / [get]
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

// ChatPage godoc
// @Summary Chat UI page
// @Description Serves the chat user interface
// @Tags general
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /chat [get]
func (h *PageHandler) ChatPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "chatbot.html"))
}
