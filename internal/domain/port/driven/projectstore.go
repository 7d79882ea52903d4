// Package driven defines the driven ports (persistence, mail, feeds)
// implemented by outbound adapters.
package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// ProjectFilter narrows a project listing. Zero value means no filtering.
type ProjectFilter struct {
	// Category, when non-empty, matches projects with that exact category.
	Category string
	// FeaturedOnly, when true, returns only featured projects.
	FeaturedOnly bool
}

// ProjectStore defines the driven port for project persistence.
// List returns projects ordered by creation time descending.
type ProjectStore interface {
	Insert(ctx context.Context, p model.Project) (model.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, error)
}
