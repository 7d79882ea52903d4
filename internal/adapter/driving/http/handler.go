// Package httphandler implements the REST API driving adapter.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kavyapatel/portfolio/internal/application"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	projects     driven.ProjectStore
	skills       driven.SkillStore
	testimonials driven.TestimonialStore
	timeline     driven.TimelineStore
	stats        driven.StatStore
	achievements driven.AchievementStore
	contactSvc   *application.ContactService
	socialFeed   driven.SocialFeed
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	projects driven.ProjectStore,
	skills driven.SkillStore,
	testimonials driven.TestimonialStore,
	timeline driven.TimelineStore,
	stats driven.StatStore,
	achievements driven.AchievementStore,
	contactSvc *application.ContactService,
	socialFeed driven.SocialFeed,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		projects:     projects,
		skills:       skills,
		testimonials: testimonials,
		timeline:     timeline,
		stats:        stats,
		achievements: achievements,
		contactSvc:   contactSvc,
		socialFeed:   socialFeed,
		logger:       logger,
	}
}

// RegisterAPIRoutes registers all REST API routes on the provided mux,
// plus the JSON 404 fallback for unmatched paths.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("GET /api/skills", h.ListSkills)
	mux.HandleFunc("GET /api/testimonials", h.ListTestimonials)
	mux.HandleFunc("GET /api/timeline", h.ListTimeline)
	mux.HandleFunc("GET /api/stats", h.ListStats)
	mux.HandleFunc("GET /api/achievements", h.ListAchievements)
	mux.HandleFunc("GET /api/social", h.SocialFeed)
	mux.HandleFunc("POST /api/contact", h.SubmitContact)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /download/source", h.DownloadSource)

	// Any path not claimed by a more specific pattern gets a JSON 404
	// instead of the default plain-text one.
	mux.HandleFunc("/", h.NotFound)
}

// ListProjects returns all projects, optionally filtered by category and
// featured status, newest first.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter := driven.ProjectFilter{
		Category:     r.URL.Query().Get("category"),
		FeaturedOnly: strings.EqualFold(r.URL.Query().Get("featured"), "true"),
	}

	projects, err := h.projects.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListSkills returns all skills grouped by category. Categories appear in
// first-appearance order, skills in insertion order within each.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skills.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list skills", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	grouped := newGroupedResponse[SkillResponse]()
	for _, s := range skills {
		grouped.add(s.Category, toSkillResponse(s))
	}

	writeJSON(w, http.StatusOK, grouped)
}

// ListTestimonials returns all testimonials, newest first.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonials.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list testimonials", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		resp = append(resp, toTestimonialResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListTimeline returns all timeline entries, most recent start date first.
func (h *Handler) ListTimeline(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timeline.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list timeline", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]TimelineResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toTimelineResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListStats returns all headline metrics.
func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]StatResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, toStatResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListAchievements returns all achievements grouped by category, most recent
// first within each group.
func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievements.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list achievements", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	grouped := newGroupedResponse[AchievementResponse]()
	for _, a := range achievements {
		grouped.add(a.Category, toAchievementResponse(a))
	}

	writeJSON(w, http.StatusOK, grouped)
}

// SocialFeed returns recent social activity posts.
func (h *Handler) SocialFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.socialFeed.RecentPosts(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch social feed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]SocialPostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toSocialPostResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SubmitContact handles contact form submissions. A submission succeeds once
// it is stored; email outcomes only add an informational note.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.contactSvc.Submit(r.Context(), application.SubmitRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.logger.Error("contact submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while sending your message")
		return
	}

	resp := ContactResponse{
		Success: true,
		Message: "Thank you for your message! I'll get back to you soon.",
	}
	if !result.OwnerNotified {
		resp.Note = "Message saved successfully"
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFound is the JSON 404 fallback for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Resource not found")
}
