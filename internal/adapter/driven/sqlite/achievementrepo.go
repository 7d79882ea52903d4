package sqlite

import (
	"context"
	"fmt"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AchievementStore = (*AchievementRepo)(nil)

const insertAchievementSQL = `
	INSERT INTO achievements (title, category, organization, description, date_achieved, icon, badge_color)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// AchievementRepo is the SQLite implementation of the AchievementStore port interface.
type AchievementRepo struct {
	db *DB
}

// NewAchievementRepo creates a new AchievementRepo backed by the given DB.
func NewAchievementRepo(db *DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// achievementInsertArgs serializes an achievement into the bind arguments for
// insertAchievementSQL.
func achievementInsertArgs(a model.Achievement) []any {
	return []any{
		a.Title, a.Category, a.Organization, a.Description,
		formatDate(a.DateAchieved), a.Icon, a.BadgeColor,
	}
}

// Insert stores an achievement and returns it with the assigned id.
func (r *AchievementRepo) Insert(ctx context.Context, a model.Achievement) (model.Achievement, error) {
	result, err := r.db.Writer.ExecContext(ctx, insertAchievementSQL, achievementInsertArgs(a)...)
	if err != nil {
		return model.Achievement{}, fmt.Errorf("insert achievement %q: %w", a.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Achievement{}, fmt.Errorf("achievement insert id: %w", err)
	}

	a.ID = id
	return a, nil
}

// ListAll returns all achievements, most recent first.
func (r *AchievementRepo) ListAll(ctx context.Context) ([]model.Achievement, error) {
	const query = `
		SELECT id, title, category, organization, description, date_achieved, icon, badge_color
		FROM achievements
		ORDER BY date_achieved DESC, id ASC
	`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []model.Achievement
	for rows.Next() {
		var a model.Achievement
		var dateAchieved string
		err := rows.Scan(
			&a.ID, &a.Title, &a.Category, &a.Organization,
			&a.Description, &dateAchieved, &a.Icon, &a.BadgeColor,
		)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}

		a.DateAchieved, err = parseDate(dateAchieved)
		if err != nil {
			return nil, fmt.Errorf("parse date_achieved: %w", err)
		}

		achievements = append(achievements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}

	return achievements, nil
}
