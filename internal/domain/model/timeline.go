package model

import "time"

// TimelineEntry represents one entry on the career/education timeline.
// EndDate is nil for ongoing entries; Current marks the active one.
type TimelineEntry struct {
	ID          int64
	Title       string
	Company     string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Category    string
	Current     bool
}
