package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// TimelineStore defines the driven port for timeline persistence.
// ListAll returns entries ordered by start date descending.
type TimelineStore interface {
	Insert(ctx context.Context, e model.TimelineEntry) (model.TimelineEntry, error)
	ListAll(ctx context.Context) ([]model.TimelineEntry, error)
}
