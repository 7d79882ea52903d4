package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TestimonialStore = (*TestimonialRepo)(nil)

const insertTestimonialSQL = `
	INSERT INTO testimonials (name, company, position, content, avatar_url, location, latitude, longitude, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// TestimonialRepo is the SQLite implementation of the TestimonialStore port interface.
type TestimonialRepo struct {
	db *DB
}

// NewTestimonialRepo creates a new TestimonialRepo backed by the given DB.
func NewTestimonialRepo(db *DB) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

// testimonialInsertArgs serializes a testimonial into the bind arguments for
// insertTestimonialSQL. Nil coordinates become SQL NULLs.
func testimonialInsertArgs(t model.Testimonial) []any {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var lat, lng any
	if t.Latitude != nil {
		lat = *t.Latitude
	}
	if t.Longitude != nil {
		lng = *t.Longitude
	}

	return []any{
		t.Name, t.Company, t.Position, t.Content, t.AvatarURL,
		t.Location, lat, lng, createdAt.UTC(),
	}
}

// Insert stores a testimonial and returns it with the assigned id.
func (r *TestimonialRepo) Insert(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	args := testimonialInsertArgs(t)

	result, err := r.db.Writer.ExecContext(ctx, insertTestimonialSQL, args...)
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("insert testimonial from %q: %w", t.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("testimonial insert id: %w", err)
	}

	t.ID = id
	if t.CreatedAt.IsZero() {
		t.CreatedAt = args[8].(time.Time)
	}
	return t, nil
}

// ListAll returns all testimonials, newest first.
func (r *TestimonialRepo) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	const query = `
		SELECT id, name, company, position, content, avatar_url, location, latitude, longitude, created_at
		FROM testimonials
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		var createdAt string
		err := rows.Scan(
			&t.ID, &t.Name, &t.Company, &t.Position, &t.Content,
			&t.AvatarURL, &t.Location, &t.Latitude, &t.Longitude, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}

		t.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}

	return testimonials, nil
}
