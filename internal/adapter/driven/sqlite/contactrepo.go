package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContactStore = (*ContactRepo)(nil)

// ContactRepo is the SQLite implementation of the ContactStore port interface.
// Contact submissions are append-only; there is deliberately no update or
// delete path here.
type ContactRepo struct {
	db *DB
}

// NewContactRepo creates a new ContactRepo backed by the given DB.
func NewContactRepo(db *DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Insert stores a contact submission and returns it with the assigned id.
// An empty status defaults to "new" and a zero CreatedAt to the current time.
func (r *ContactRepo) Insert(ctx context.Context, c model.Contact) (model.Contact, error) {
	const query = `
		INSERT INTO contacts (reference, name, email, subject, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if c.Status == "" {
		c.Status = model.ContactStatusNew
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		c.Reference, c.Name, c.Email, c.Subject, c.Message, c.Status, c.CreatedAt.UTC(),
	)
	if err != nil {
		return model.Contact{}, fmt.Errorf("insert contact from %q: %w", c.Email, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Contact{}, fmt.Errorf("contact insert id: %w", err)
	}

	c.ID = id
	return c, nil
}

// GetByReference retrieves a single submission by its reference id.
// Returns nil, nil if no submission matches.
func (r *ContactRepo) GetByReference(ctx context.Context, reference string) (*model.Contact, error) {
	const query = `
		SELECT id, reference, name, email, subject, message, status, created_at
		FROM contacts
		WHERE reference = ?
	`

	var c model.Contact
	var createdAt string
	err := r.db.Reader.QueryRowContext(ctx, query, reference).Scan(
		&c.ID, &c.Reference, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact %s: %w", reference, err)
	}

	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &c, nil
}
