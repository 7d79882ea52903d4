package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
	"github.com/kavyapatel/portfolio/internal/seed"
)

func TestSeeder_SeedIfEmpty(t *testing.T) {
	db := setupTestDB(t)
	seeder := NewSeeder(db)
	ctx := context.Background()

	cat, err := seed.Load()
	require.NoError(t, err)

	seeded, err := seeder.SeedIfEmpty(ctx, cat)
	require.NoError(t, err)
	assert.True(t, seeded)

	projects, err := NewProjectRepo(db).List(ctx, driven.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, projects, len(cat.Projects))

	skills, err := NewSkillRepo(db).ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, len(cat.Skills))

	stats, err := NewStatRepo(db).ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, len(cat.Stats))

	achievements, err := NewAchievementRepo(db).ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, achievements, len(cat.Achievements))
}

// TestSeeder_SecondRunIsNoOp verifies re-running startup seeding against an
// already seeded store inserts nothing.
func TestSeeder_SecondRunIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	seeder := NewSeeder(db)
	ctx := context.Background()

	cat, err := seed.Load()
	require.NoError(t, err)

	seeded, err := seeder.SeedIfEmpty(ctx, cat)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = seeder.SeedIfEmpty(ctx, cat)
	require.NoError(t, err)
	assert.False(t, seeded)

	projects, err := NewProjectRepo(db).List(ctx, driven.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, projects, len(cat.Projects))
}

// TestSeeder_TechStackRoundTrip verifies the catalog's serialized technology
// lists come back in their original order after a seed.
func TestSeeder_TechStackRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seeder := NewSeeder(db)
	ctx := context.Background()

	cat, err := seed.Load()
	require.NoError(t, err)

	_, err = seeder.SeedIfEmpty(ctx, cat)
	require.NoError(t, err)

	projects, err := NewProjectRepo(db).List(ctx, driven.ProjectFilter{})
	require.NoError(t, err)

	byTitle := make(map[string][]string, len(projects))
	for _, p := range projects {
		byTitle[p.Title] = p.TechStack
	}
	for _, want := range cat.Projects {
		assert.Equal(t, want.TechStack, byTitle[want.Title], "tech stack mismatch for %s", want.Title)
	}
}

func TestSeeder_SkipsWhenProjectsExist(t *testing.T) {
	db := setupTestDB(t)
	seeder := NewSeeder(db)
	ctx := context.Background()

	repo := NewProjectRepo(db)
	insertTestProject(t, repo, model.Project{Title: "Existing", Description: "d"})

	cat, err := seed.Load()
	require.NoError(t, err)

	seeded, err := seeder.SeedIfEmpty(ctx, cat)
	require.NoError(t, err)
	assert.False(t, seeded)

	skills, err := NewSkillRepo(db).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}
