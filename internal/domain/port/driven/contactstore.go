package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// ContactStore defines the driven port for contact-submission persistence.
// Submissions are append-only: Insert is the only write and there is no
// public read path.
type ContactStore interface {
	Insert(ctx context.Context, c model.Contact) (model.Contact, error)
}
