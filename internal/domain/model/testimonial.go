package model

import "time"

// Testimonial represents a client or colleague testimonial.
// Latitude and Longitude are optional map coordinates for the location.
type Testimonial struct {
	ID        int64
	Name      string
	Company   string
	Position  string
	Content   string
	AvatarURL string
	Location  string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}
