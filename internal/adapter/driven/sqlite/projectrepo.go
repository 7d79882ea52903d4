package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ProjectStore = (*ProjectRepo)(nil)

// insertProjectSQL is shared with the seeder so seed inserts stay in lockstep
// with the repo's column set.
const insertProjectSQL = `
	INSERT INTO projects (title, description, tech_stack, github_url, live_url, image_url, category, featured, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// ProjectRepo is the SQLite implementation of the ProjectStore port interface.
type ProjectRepo struct {
	db *DB
}

// NewProjectRepo creates a new ProjectRepo backed by the given DB.
func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// projectInsertArgs serializes a project into the bind arguments for
// insertProjectSQL. The tech stack is stored as a JSON array in the TEXT column.
func projectInsertArgs(p model.Project) ([]any, error) {
	techStack := p.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	techJSON, err := json.Marshal(techStack)
	if err != nil {
		return nil, fmt.Errorf("marshal tech stack: %w", err)
	}

	featured := 0
	if p.Featured {
		featured = 1
	}

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return []any{
		p.Title, p.Description, string(techJSON), p.GitHubURL, p.LiveURL,
		p.ImageURL, p.Category, featured, createdAt.UTC(),
	}, nil
}

// Insert stores a project and returns it with the assigned id. A zero
// CreatedAt defaults to the current time.
func (r *ProjectRepo) Insert(ctx context.Context, p model.Project) (model.Project, error) {
	args, err := projectInsertArgs(p)
	if err != nil {
		return model.Project{}, err
	}

	result, err := r.db.Writer.ExecContext(ctx, insertProjectSQL, args...)
	if err != nil {
		return model.Project{}, fmt.Errorf("insert project %q: %w", p.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Project{}, fmt.Errorf("project insert id: %w", err)
	}

	p.ID = id
	if p.CreatedAt.IsZero() {
		p.CreatedAt = args[8].(time.Time)
	}
	return p, nil
}

// List returns projects matching the filter, newest first. Projects created in
// the same instant (the seed batch) keep their insertion order.
func (r *ProjectRepo) List(ctx context.Context, filter driven.ProjectFilter) ([]model.Project, error) {
	query := `
		SELECT id, title, description, tech_stack, github_url, live_url, image_url, category, featured, created_at
		FROM projects
	`

	var conds []string
	var args []any
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.FeaturedOnly {
		conds = append(conds, "featured = 1")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id ASC"

	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

func scanProject(s scanner) (*model.Project, error) {
	var p model.Project
	var techJSON string
	var featured int
	var createdAt string

	err := s.Scan(
		&p.ID, &p.Title, &p.Description, &techJSON, &p.GitHubURL,
		&p.LiveURL, &p.ImageURL, &p.Category, &featured, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.Featured = featured != 0

	// Empty column means no tech stack, not malformed JSON.
	if techJSON == "" {
		p.TechStack = []string{}
	} else if err := json.Unmarshal([]byte(techJSON), &p.TechStack); err != nil {
		return nil, fmt.Errorf("unmarshal tech stack: %w", err)
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &p, nil
}
