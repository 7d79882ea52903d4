package sqlite

import (
	"context"
	"fmt"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TimelineStore = (*TimelineRepo)(nil)

const insertTimelineSQL = `
	INSERT INTO timeline_entries (title, company, description, start_date, end_date, category, current)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// TimelineRepo is the SQLite implementation of the TimelineStore port interface.
type TimelineRepo struct {
	db *DB
}

// NewTimelineRepo creates a new TimelineRepo backed by the given DB.
func NewTimelineRepo(db *DB) *TimelineRepo {
	return &TimelineRepo{db: db}
}

// timelineInsertArgs serializes a timeline entry into the bind arguments for
// insertTimelineSQL. Dates are stored as date-only text; a nil end date is NULL.
func timelineInsertArgs(e model.TimelineEntry) []any {
	var endDate any
	if e.EndDate != nil {
		endDate = formatDate(*e.EndDate)
	}

	current := 0
	if e.Current {
		current = 1
	}

	return []any{
		e.Title, e.Company, e.Description, formatDate(e.StartDate),
		endDate, e.Category, current,
	}
}

// Insert stores a timeline entry and returns it with the assigned id.
func (r *TimelineRepo) Insert(ctx context.Context, e model.TimelineEntry) (model.TimelineEntry, error) {
	result, err := r.db.Writer.ExecContext(ctx, insertTimelineSQL, timelineInsertArgs(e)...)
	if err != nil {
		return model.TimelineEntry{}, fmt.Errorf("insert timeline entry %q: %w", e.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.TimelineEntry{}, fmt.Errorf("timeline insert id: %w", err)
	}

	e.ID = id
	return e, nil
}

// ListAll returns all timeline entries, most recent start date first.
func (r *TimelineRepo) ListAll(ctx context.Context) ([]model.TimelineEntry, error) {
	const query = `
		SELECT id, title, company, description, start_date, end_date, category, current
		FROM timeline_entries
		ORDER BY start_date DESC, id ASC
	`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query timeline entries: %w", err)
	}
	defer rows.Close()

	var entries []model.TimelineEntry
	for rows.Next() {
		var e model.TimelineEntry
		var startDate string
		var endDate *string
		var current int
		err := rows.Scan(
			&e.ID, &e.Title, &e.Company, &e.Description,
			&startDate, &endDate, &e.Category, &current,
		)
		if err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}

		e.Current = current != 0

		e.StartDate, err = parseDate(startDate)
		if err != nil {
			return nil, fmt.Errorf("parse start_date: %w", err)
		}

		if endDate != nil {
			parsed, err := parseDate(*endDate)
			if err != nil {
				return nil, fmt.Errorf("parse end_date: %w", err)
			}
			e.EndDate = &parsed
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timeline entries: %w", err)
	}

	return entries, nil
}
