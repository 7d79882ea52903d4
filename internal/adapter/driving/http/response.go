package httphandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kavyapatel/portfolio/internal/adapter/driving/web"
	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// dateLayout serializes date-only fields (timeline bounds, achievement dates).
const dateLayout = "2006-01-02"

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// groupedResponse is an insertion-ordered string-keyed JSON object. Marshaling
// a Go map would sort categories alphabetically; the grouped endpoints key
// categories by first appearance instead.
type groupedResponse[T any] struct {
	keys   []string
	groups map[string][]T
}

func newGroupedResponse[T any]() *groupedResponse[T] {
	return &groupedResponse[T]{groups: make(map[string][]T)}
}

// add appends item to the group for key, creating the group on first use.
func (g *groupedResponse[T]) add(key string, item T) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], item)
}

func (g *groupedResponse[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		itemsJSON, err := json.Marshal(g.groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(itemsJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ProjectResponse is the JSON representation of a project.
type ProjectResponse struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html"`
	TechStack       []string `json:"tech_stack"`
	GitHubURL       string   `json:"github_url"`
	LiveURL         string   `json:"live_url"`
	ImageURL        string   `json:"image_url"`
	Category        string   `json:"category"`
	Featured        bool     `json:"featured"`
	CreatedAt       *string  `json:"created_at"`
}

func toProjectResponse(p model.Project) ProjectResponse {
	techStack := p.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	return ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DescriptionHTML: web.RenderMarkdown(p.Description),
		TechStack:       techStack,
		GitHubURL:       p.GitHubURL,
		LiveURL:         p.LiveURL,
		ImageURL:        p.ImageURL,
		Category:        p.Category,
		Featured:        p.Featured,
		CreatedAt:       formatTime(p.CreatedAt),
	}
}

// SkillResponse is the JSON representation of a skill within its category group.
type SkillResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Proficiency     int    `json:"proficiency"`
	YearsExperience int    `json:"years_experience"`
}

func toSkillResponse(s model.Skill) SkillResponse {
	return SkillResponse{
		ID:              s.ID,
		Name:            s.Name,
		Proficiency:     s.Proficiency,
		YearsExperience: s.YearsExperience,
	}
}

// TestimonialResponse is the JSON representation of a testimonial.
type TestimonialResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Company   string   `json:"company"`
	Position  string   `json:"position"`
	Content   string   `json:"content"`
	AvatarURL string   `json:"avatar_url"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	CreatedAt *string  `json:"created_at"`
}

func toTestimonialResponse(t model.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Company:   t.Company,
		Position:  t.Position,
		Content:   t.Content,
		AvatarURL: t.AvatarURL,
		Location:  t.Location,
		Latitude:  t.Latitude,
		Longitude: t.Longitude,
		CreatedAt: formatTime(t.CreatedAt),
	}
}

// TimelineResponse is the JSON representation of a timeline entry.
type TimelineResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Category    string  `json:"category"`
	Current     bool    `json:"current"`
}

func toTimelineResponse(e model.TimelineEntry) TimelineResponse {
	resp := TimelineResponse{
		ID:          e.ID,
		Title:       e.Title,
		Company:     e.Company,
		Description: e.Description,
		StartDate:   formatDate(e.StartDate),
		Category:    e.Category,
		Current:     e.Current,
	}
	if e.EndDate != nil {
		resp.EndDate = formatDate(*e.EndDate)
	}
	return resp
}

// StatResponse is the JSON representation of a headline metric.
type StatResponse struct {
	MetricName  string  `json:"metric_name"`
	MetricValue int     `json:"metric_value"`
	MetricLabel string  `json:"metric_label"`
	UpdatedAt   *string `json:"updated_at"`
}

func toStatResponse(s model.Stat) StatResponse {
	return StatResponse{
		MetricName:  s.MetricName,
		MetricValue: s.MetricValue,
		MetricLabel: s.MetricLabel,
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

// AchievementResponse is the JSON representation of an achievement within its
// category group.
type AchievementResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Organization string  `json:"organization"`
	Description  string  `json:"description"`
	DateAchieved *string `json:"date_achieved"`
	Icon         string  `json:"icon"`
	BadgeColor   string  `json:"badge_color"`
}

func toAchievementResponse(a model.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:           a.ID,
		Title:        a.Title,
		Organization: a.Organization,
		Description:  a.Description,
		DateAchieved: formatDate(a.DateAchieved),
		Icon:         a.Icon,
		BadgeColor:   a.BadgeColor,
	}
}

// SocialPostResponse is the JSON representation of a social feed post.
// Engagement counters are platform-dependent and omitted when zero.
type SocialPostResponse struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes,omitempty"`
	Retweets  int    `json:"retweets,omitempty"`
	Stars     int    `json:"stars,omitempty"`
}

func toSocialPostResponse(p model.SocialPost) SocialPostResponse {
	return SocialPostResponse{
		ID:        p.ID,
		Platform:  p.Platform,
		Content:   p.Content,
		Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
		Likes:     p.Likes,
		Retweets:  p.Reposts,
		Stars:     p.Stars,
	}
}

// ContactRequest is the inbound contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a stored submission. Note is set only when the
// owner notification was not delivered.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Note    string `json:"note,omitempty"`
}

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// formatTime renders a timestamp as RFC3339 UTC, or nil for the zero value.
func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// formatDate renders a date-only value, or nil for the zero value.
func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
