package model

import "time"

// SocialPost is one entry in the social activity feed.
// Likes, Reposts, and Stars are platform-dependent and zero when not applicable.
type SocialPost struct {
	ID        string
	Platform  string
	Content   string
	Timestamp time.Time
	Likes     int
	Reposts   int
	Stars     int
}
