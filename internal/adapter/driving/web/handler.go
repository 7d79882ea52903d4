// Package web implements the HTML page driving adapter. Pages are embedded
// static HTML backed by the JSON API; assets are served from the embedded
// filesystem.
package web

import (
	"log/slog"
	"net/http"
)

// Handler serves the embedded HTML pages.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Index serves the portfolio homepage.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "pages/index.html")
}

// Dashboard serves the interactive dashboard page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "pages/dashboard.html")
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, name string) {
	page, err := PagesFS.ReadFile(name)
	if err != nil {
		h.logger.Error("failed to read embedded page", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
