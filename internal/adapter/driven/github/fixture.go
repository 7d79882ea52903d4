package github

import (
	"context"
	"time"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

var _ driven.SocialFeed = (*FixtureFeed)(nil)

// FixtureFeed serves a canned social feed. It is the fallback source when no
// GitHub username is configured.
type FixtureFeed struct{}

// NewFixtureFeed returns the canned feed source.
func NewFixtureFeed() *FixtureFeed {
	return &FixtureFeed{}
}

// RecentPosts returns the canned posts. It never fails.
func (f *FixtureFeed) RecentPosts(_ context.Context) ([]model.SocialPost, error) {
	return []model.SocialPost{
		{
			ID:        "1",
			Platform:  "twitter",
			Content:   "Just shipped a new feature using Three.js! The 3D animations turned out amazing.",
			Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Likes:     42,
			Reposts:   8,
		},
		{
			ID:        "2",
			Platform:  "github",
			Content:   "Pushed latest updates to the portfolio project repository",
			Timestamp: time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
			Stars:     15,
		},
	}, nil
}
