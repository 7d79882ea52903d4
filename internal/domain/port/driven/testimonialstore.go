package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// TestimonialStore defines the driven port for testimonial persistence.
// ListAll returns testimonials ordered by creation time descending.
type TestimonialStore interface {
	Insert(ctx context.Context, t model.Testimonial) (model.Testimonial, error)
	ListAll(ctx context.Context) ([]model.Testimonial, error)
}
