package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockContactStore struct {
	inserted []model.Contact
	err      error
}

func (m *mockContactStore) Insert(_ context.Context, c model.Contact) (model.Contact, error) {
	if m.err != nil {
		return model.Contact{}, m.err
	}
	c.ID = int64(len(m.inserted) + 1)
	m.inserted = append(m.inserted, c)
	return c, nil
}

type mockMailer struct {
	sent    []model.OutboundEmail
	errs    []error // consumed per Send call; nil entries succeed
	callIdx int
}

func (m *mockMailer) Send(_ context.Context, msg model.OutboundEmail) (string, error) {
	idx := m.callIdx
	m.callIdx++
	if idx < len(m.errs) && m.errs[idx] != nil {
		return "", m.errs[idx]
	}
	m.sent = append(m.sent, msg)
	return "email-id", nil
}

func newService(store *mockContactStore, mailer *mockMailer) *ContactService {
	var m driven.Mailer
	if mailer != nil {
		m = mailer
	}
	return NewContactService(store, m, "owner@example.com", "Portfolio <noreply@example.com>", "example.dev", slog.Default())
}

// --- Tests ---

func TestSubmit_ValidPayload(t *testing.T) {
	store := &mockContactStore{}
	mailer := &mockMailer{}
	svc := newService(store, mailer)

	result, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "  Sarah Johnson  ",
		Email:   " sarah@example.com ",
		Subject: "Project inquiry",
		Message: "  Hello!  ",
	})

	require.NoError(t, err)
	require.Len(t, store.inserted, 1)

	// Fields are trimmed, status defaults to "new", a reference is assigned.
	stored := store.inserted[0]
	assert.Equal(t, "Sarah Johnson", stored.Name)
	assert.Equal(t, "sarah@example.com", stored.Email)
	assert.Equal(t, "Hello!", stored.Message)
	assert.Equal(t, model.ContactStatusNew, stored.Status)
	assert.NotEmpty(t, stored.Reference)

	assert.True(t, result.OwnerNotified)
	assert.True(t, result.AutoReplied)
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, []string{"owner@example.com"}, mailer.sent[0].To)
	assert.Equal(t, "sarah@example.com", mailer.sent[0].ReplyTo)
	assert.Equal(t, []string{"sarah@example.com"}, mailer.sent[1].To)
}

func TestSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		req   SubmitRequest
		field string
	}{
		{"missing name", SubmitRequest{Email: "a@b.c", Message: "hi"}, "name"},
		{"whitespace name", SubmitRequest{Name: "   ", Email: "a@b.c", Message: "hi"}, "name"},
		{"missing email", SubmitRequest{Name: "a", Message: "hi"}, "email"},
		{"missing message", SubmitRequest{Name: "a", Email: "a@b.c"}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockContactStore{}
			mailer := &mockMailer{}
			svc := newService(store, mailer)

			result, err := svc.Submit(context.Background(), tt.req)

			assert.Nil(t, result)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.field+" is required", verr.Error())

			// Validation failures must perform zero side effects.
			assert.Empty(t, store.inserted)
			assert.Empty(t, mailer.sent)
		})
	}
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	store := &mockContactStore{err: errors.New("disk full")}
	mailer := &mockMailer{}
	svc := newService(store, mailer)

	result, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "a", Email: "a@b.c", Message: "hi",
	})

	assert.Nil(t, result)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)

	// No mail may be attempted when the record was not stored.
	assert.Empty(t, mailer.sent)
}

func TestSubmit_MailUnconfigured(t *testing.T) {
	store := &mockContactStore{}
	svc := newService(store, nil)

	result, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "a", Email: "a@b.c", Message: "hi",
	})

	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.False(t, result.OwnerNotified)
	assert.False(t, result.AutoReplied)
}

// TestSubmit_OwnerNotificationFailure verifies a failed owner notification
// still attempts the auto-reply and still reports overall success.
func TestSubmit_OwnerNotificationFailure(t *testing.T) {
	store := &mockContactStore{}
	mailer := &mockMailer{errs: []error{errors.New("provider down")}}
	svc := newService(store, mailer)

	result, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "a", Email: "a@b.c", Message: "hi",
	})

	require.NoError(t, err)
	assert.False(t, result.OwnerNotified)
	assert.True(t, result.AutoReplied)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"a@b.c"}, mailer.sent[0].To)
}

func TestSubmit_BothDispatchesFail(t *testing.T) {
	store := &mockContactStore{}
	mailer := &mockMailer{errs: []error{errors.New("down"), errors.New("down")}}
	svc := newService(store, mailer)

	result, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "a", Email: "a@b.c", Message: "hi",
	})

	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.False(t, result.OwnerNotified)
	assert.False(t, result.AutoReplied)
}

func TestSubmit_SubjectOptional(t *testing.T) {
	store := &mockContactStore{}
	mailer := &mockMailer{}
	svc := newService(store, mailer)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "a", Email: "a@b.c", Message: "hi",
	})

	require.NoError(t, err)
	assert.Equal(t, "", store.inserted[0].Subject)
	// Fallback subject line is used in the owner notification.
	assert.Equal(t, "New Contact: Message from Portfolio", mailer.sent[0].Subject)
}
