package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// StatStore defines the driven port for headline metric persistence.
type StatStore interface {
	Insert(ctx context.Context, s model.Stat) (model.Stat, error)
	ListAll(ctx context.Context) ([]model.Stat, error)
}
