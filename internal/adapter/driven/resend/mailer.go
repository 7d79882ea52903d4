// Package resend implements the Mailer port using the Resend email API.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Mailer = (*Mailer)(nil)

// Mailer implements the driven.Mailer port using the resend-go SDK.
type Mailer struct {
	client *resend.Client
}

// NewMailer creates a Mailer authenticated with the given API key.
func NewMailer(apiKey string) *Mailer {
	return &Mailer{client: resend.NewClient(apiKey)}
}

// Send delivers a single email and returns the provider-assigned id.
func (m *Mailer) Send(ctx context.Context, msg model.OutboundEmail) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("sending email to %v: %w", msg.To, err)
	}
	return sent.Id, nil
}
