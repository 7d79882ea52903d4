package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// ContactService implements the contact pipeline: validate the payload,
// durably record it, then best-effort notify the owner and auto-reply to the
// sender. Email outcomes never fail the request once the record is stored.
type ContactService struct {
	contacts   driven.ContactStore
	mailer     driven.Mailer // nil when outbound mail is unconfigured
	ownerEmail string
	mailFrom   string
	siteName   string
	logger     *slog.Logger
}

// NewContactService creates a ContactService. A nil mailer puts the pipeline
// into mail-disabled mode: submissions are stored and both dispatches skipped.
func NewContactService(
	contacts driven.ContactStore,
	mailer driven.Mailer,
	ownerEmail string,
	mailFrom string,
	siteName string,
	logger *slog.Logger,
) *ContactService {
	return &ContactService{
		contacts:   contacts,
		mailer:     mailer,
		ownerEmail: ownerEmail,
		mailFrom:   mailFrom,
		siteName:   siteName,
		logger:     logger,
	}
}

// SubmitRequest is the inbound contact-form payload. Subject is optional.
type SubmitRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitResult reports what the pipeline accomplished. OwnerNotified and
// AutoReplied are false on both dispatch failure and mail-disabled mode;
// callers surface that only as an informational note, never as an error.
type SubmitResult struct {
	Contact       model.Contact
	OwnerNotified bool
	AutoReplied   bool
}

// Submit runs the pipeline. It returns *ValidationError for a missing required
// field (no side effects performed) and *PersistenceError when the store
// rejects the submission (no mail attempted). Mail transport errors are logged
// and absorbed.
func (s *ContactService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if req.Email == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if req.Message == "" {
		return nil, &ValidationError{Field: "message"}
	}

	stored, err := s.contacts.Insert(ctx, model.Contact{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    model.ContactStatusNew,
	})
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	result := &SubmitResult{Contact: stored}

	if s.mailer == nil {
		s.logger.Info("mail transport unconfigured, skipping notifications",
			"reference", stored.Reference,
		)
		return result, nil
	}

	if id, err := s.mailer.Send(ctx, ownerNotification(stored, s.mailFrom, s.ownerEmail, s.siteName)); err != nil {
		s.logger.Warn("owner notification failed",
			"reference", stored.Reference,
			"error", err,
		)
	} else {
		result.OwnerNotified = true
		s.logger.Info("owner notification sent",
			"reference", stored.Reference,
			"email_id", id,
		)
	}

	// Validation guarantees a non-empty email; guard anyway so a bad store
	// round-trip can't address mail to nobody.
	if stored.Email != "" {
		if id, err := s.mailer.Send(ctx, autoReply(stored, s.mailFrom, s.siteName)); err != nil {
			s.logger.Warn("auto-reply failed",
				"reference", stored.Reference,
				"error", err,
			)
		} else {
			result.AutoReplied = true
			s.logger.Info("auto-reply sent",
				"reference", stored.Reference,
				"email_id", id,
			)
		}
	}

	return result, nil
}
