package sqlite

import (
	"context"
	"fmt"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SkillStore = (*SkillRepo)(nil)

const insertSkillSQL = `
	INSERT INTO skills (name, category, proficiency, years_experience)
	VALUES (?, ?, ?, ?)
`

// SkillRepo is the SQLite implementation of the SkillStore port interface.
type SkillRepo struct {
	db *DB
}

// NewSkillRepo creates a new SkillRepo backed by the given DB.
func NewSkillRepo(db *DB) *SkillRepo {
	return &SkillRepo{db: db}
}

// Insert stores a skill and returns it with the assigned id.
func (r *SkillRepo) Insert(ctx context.Context, s model.Skill) (model.Skill, error) {
	result, err := r.db.Writer.ExecContext(ctx, insertSkillSQL,
		s.Name, s.Category, s.Proficiency, s.YearsExperience,
	)
	if err != nil {
		return model.Skill{}, fmt.Errorf("insert skill %q: %w", s.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Skill{}, fmt.Errorf("skill insert id: %w", err)
	}

	s.ID = id
	return s, nil
}

// ListAll returns all skills in insertion order.
func (r *SkillRepo) ListAll(ctx context.Context) ([]model.Skill, error) {
	const query = `
		SELECT id, name, category, proficiency, years_experience
		FROM skills
		ORDER BY id
	`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	var skills []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.YearsExperience); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}

	return skills, nil
}
