package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.StatStore = (*StatRepo)(nil)

const insertStatSQL = `
	INSERT INTO stats (metric_name, metric_value, metric_label, updated_at)
	VALUES (?, ?, ?, ?)
`

// StatRepo is the SQLite implementation of the StatStore port interface.
type StatRepo struct {
	db *DB
}

// NewStatRepo creates a new StatRepo backed by the given DB.
func NewStatRepo(db *DB) *StatRepo {
	return &StatRepo{db: db}
}

// statInsertArgs serializes a stat into the bind arguments for insertStatSQL.
func statInsertArgs(s model.Stat) []any {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return []any{s.MetricName, s.MetricValue, s.MetricLabel, updatedAt.UTC()}
}

// Insert stores a stat and returns it with the assigned id.
func (r *StatRepo) Insert(ctx context.Context, s model.Stat) (model.Stat, error) {
	args := statInsertArgs(s)

	result, err := r.db.Writer.ExecContext(ctx, insertStatSQL, args...)
	if err != nil {
		return model.Stat{}, fmt.Errorf("insert stat %q: %w", s.MetricName, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Stat{}, fmt.Errorf("stat insert id: %w", err)
	}

	s.ID = id
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = args[3].(time.Time)
	}
	return s, nil
}

// ListAll returns all stats in insertion order.
func (r *StatRepo) ListAll(ctx context.Context) ([]model.Stat, error) {
	const query = `
		SELECT id, metric_name, metric_value, metric_label, updated_at
		FROM stats
		ORDER BY id
	`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats []model.Stat
	for rows.Next() {
		var s model.Stat
		var updatedAt string
		if err := rows.Scan(&s.ID, &s.MetricName, &s.MetricValue, &s.MetricLabel, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}

		s.UpdatedAt, err = parseTime(updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}

		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}

	return stats, nil
}
