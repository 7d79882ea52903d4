package model

import "time"

// Achievement represents a certification, award, or competition result.
// Icon is a FontAwesome class; BadgeColor selects the display theme.
type Achievement struct {
	ID           int64
	Title        string
	Category     string
	Organization string
	Description  string
	DateAchieved time.Time
	Icon         string
	BadgeColor   string
}
