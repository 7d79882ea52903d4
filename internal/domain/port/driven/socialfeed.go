package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// SocialFeed defines the driven port for the social activity feed.
type SocialFeed interface {
	RecentPosts(ctx context.Context) ([]model.SocialPost, error)
}
