// Package model defines the domain entities served by the portfolio backend.
package model

import "time"

// Project represents a portfolio project entry.
// TechStack is persisted as a JSON array in a TEXT column and deserialized on read.
type Project struct {
	ID          int64
	Title       string
	Description string
	TechStack   []string
	GitHubURL   string
	LiveURL     string
	ImageURL    string
	Category    string
	Featured    bool
	CreatedAt   time.Time
}
