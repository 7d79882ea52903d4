package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// SkillStore defines the driven port for skill persistence.
// ListAll returns skills in insertion order; grouping happens in the caller.
type SkillStore interface {
	Insert(ctx context.Context, s model.Skill) (model.Skill, error)
	ListAll(ctx context.Context) ([]model.Skill, error)
}
