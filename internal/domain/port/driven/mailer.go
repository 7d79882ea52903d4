package driven

import (
	"context"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// Mailer defines the driven port for outbound email delivery.
// Send returns the provider-assigned message id on success. Implementations
// may block on network I/O; callers decide whether a failure is fatal.
type Mailer interface {
	Send(ctx context.Context, msg model.OutboundEmail) (string, error)
}
