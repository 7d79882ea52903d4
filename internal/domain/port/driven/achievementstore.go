package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// AchievementStore defines the driven port for achievement persistence.
// ListAll returns achievements ordered by date achieved descending.
type AchievementStore interface {
	Insert(ctx context.Context, a model.Achievement) (model.Achievement, error)
	ListAll(ctx context.Context) ([]model.Achievement, error)
}
