// Package seed holds the sample catalog inserted into an empty database at
// startup. The catalog lives in a versioned data file (seed.json) so the
// insert-if-empty logic stays decoupled from the literal content.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

//go:embed seed.json
var catalogJSON []byte

// Catalog is the decoded sample data set.
type Catalog struct {
	Projects     []model.Project
	Skills       []model.Skill
	Testimonials []model.Testimonial
	Timeline     []model.TimelineEntry
	Stats        []model.Stat
	Achievements []model.Achievement
}

// File shapes for seed.json. Dates are YYYY-MM-DD strings.
type catalogFile struct {
	Projects     []projectRecord     `json:"projects"`
	Skills       []skillRecord       `json:"skills"`
	Testimonials []testimonialRecord `json:"testimonials"`
	Timeline     []timelineRecord    `json:"timeline"`
	Stats        []statRecord        `json:"stats"`
	Achievements []achievementRecord `json:"achievements"`
}

type projectRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	GitHubURL   string   `json:"github_url"`
	LiveURL     string   `json:"live_url"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
}

type skillRecord struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Proficiency     int    `json:"proficiency"`
	YearsExperience int    `json:"years_experience"`
}

type testimonialRecord struct {
	Name      string   `json:"name"`
	Company   string   `json:"company"`
	Position  string   `json:"position"`
	Content   string   `json:"content"`
	AvatarURL string   `json:"avatar_url"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type timelineRecord struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Category    string  `json:"category"`
	Current     bool    `json:"current"`
}

type statRecord struct {
	MetricName  string `json:"metric_name"`
	MetricValue int    `json:"metric_value"`
	MetricLabel string `json:"metric_label"`
}

type achievementRecord struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
	DateAchieved string `json:"date_achieved"`
	Icon         string `json:"icon"`
	BadgeColor   string `json:"badge_color"`
}

const dateLayout = "2006-01-02"

// Load decodes the embedded catalog. Timestamps (project/testimonial creation,
// stat update times) are left zero; the store defaults them at insert time.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(catalogJSON, &file); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}

	cat := &Catalog{}

	for _, r := range file.Projects {
		cat.Projects = append(cat.Projects, model.Project{
			Title:       r.Title,
			Description: r.Description,
			TechStack:   r.TechStack,
			GitHubURL:   r.GitHubURL,
			LiveURL:     r.LiveURL,
			ImageURL:    r.ImageURL,
			Category:    r.Category,
			Featured:    r.Featured,
		})
	}

	for _, r := range file.Skills {
		cat.Skills = append(cat.Skills, model.Skill{
			Name:            r.Name,
			Category:        r.Category,
			Proficiency:     r.Proficiency,
			YearsExperience: r.YearsExperience,
		})
	}

	for _, r := range file.Testimonials {
		cat.Testimonials = append(cat.Testimonials, model.Testimonial{
			Name:      r.Name,
			Company:   r.Company,
			Position:  r.Position,
			Content:   r.Content,
			AvatarURL: r.AvatarURL,
			Location:  r.Location,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}

	for _, r := range file.Timeline {
		start, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("timeline entry %q: parse start_date: %w", r.Title, err)
		}

		var end *time.Time
		if r.EndDate != nil {
			parsed, err := time.Parse(dateLayout, *r.EndDate)
			if err != nil {
				return nil, fmt.Errorf("timeline entry %q: parse end_date: %w", r.Title, err)
			}
			end = &parsed
		}

		cat.Timeline = append(cat.Timeline, model.TimelineEntry{
			Title:       r.Title,
			Company:     r.Company,
			Description: r.Description,
			StartDate:   start,
			EndDate:     end,
			Category:    r.Category,
			Current:     r.Current,
		})
	}

	for _, r := range file.Stats {
		cat.Stats = append(cat.Stats, model.Stat{
			MetricName:  r.MetricName,
			MetricValue: r.MetricValue,
			MetricLabel: r.MetricLabel,
		})
	}

	for _, r := range file.Achievements {
		date, err := time.Parse(dateLayout, r.DateAchieved)
		if err != nil {
			return nil, fmt.Errorf("achievement %q: parse date_achieved: %w", r.Title, err)
		}

		cat.Achievements = append(cat.Achievements, model.Achievement{
			Title:        r.Title,
			Category:     r.Category,
			Organization: r.Organization,
			Description:  r.Description,
			DateAchieved: date,
			Icon:         r.Icon,
			BadgeColor:   r.BadgeColor,
		})
	}

	return cat, nil
}
