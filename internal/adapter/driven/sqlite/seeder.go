package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/kavyapatel/portfolio/internal/seed"
)

// Seeder populates an empty database with the sample catalog. The whole seed
// runs inside one writer transaction, gated on the projects table being empty,
// so a crash mid-seed can never leave a partially populated store that later
// startups would skip.
type Seeder struct {
	db *DB
}

// NewSeeder creates a Seeder backed by the given DB.
func NewSeeder(db *DB) *Seeder {
	return &Seeder{db: db}
}

// SeedIfEmpty inserts the catalog when no Project records exist yet. Returns
// true when the catalog was inserted, false when the store was already seeded.
func (s *Seeder) SeedIfEmpty(ctx context.Context, cat *seed.Catalog) (bool, error) {
	tx, err := s.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return false, fmt.Errorf("count projects: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()

	for _, p := range cat.Projects {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		args, err := projectInsertArgs(p)
		if err != nil {
			return false, err
		}
		if _, err := tx.ExecContext(ctx, insertProjectSQL, args...); err != nil {
			return false, fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}

	for _, sk := range cat.Skills {
		_, err := tx.ExecContext(ctx, insertSkillSQL, sk.Name, sk.Category, sk.Proficiency, sk.YearsExperience)
		if err != nil {
			return false, fmt.Errorf("seed skill %q: %w", sk.Name, err)
		}
	}

	for _, t := range cat.Testimonials {
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if _, err := tx.ExecContext(ctx, insertTestimonialSQL, testimonialInsertArgs(t)...); err != nil {
			return false, fmt.Errorf("seed testimonial from %q: %w", t.Name, err)
		}
	}

	for _, e := range cat.Timeline {
		if _, err := tx.ExecContext(ctx, insertTimelineSQL, timelineInsertArgs(e)...); err != nil {
			return false, fmt.Errorf("seed timeline entry %q: %w", e.Title, err)
		}
	}

	for _, st := range cat.Stats {
		if st.UpdatedAt.IsZero() {
			st.UpdatedAt = now
		}
		if _, err := tx.ExecContext(ctx, insertStatSQL, statInsertArgs(st)...); err != nil {
			return false, fmt.Errorf("seed stat %q: %w", st.MetricName, err)
		}
	}

	for _, a := range cat.Achievements {
		if _, err := tx.ExecContext(ctx, insertAchievementSQL, achievementInsertArgs(a)...); err != nil {
			return false, fmt.Errorf("seed achievement %q: %w", a.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed transaction: %w", err)
	}

	return true, nil
}
