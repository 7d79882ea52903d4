package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

func insertTestProject(t *testing.T, repo *ProjectRepo, p model.Project) model.Project {
	t.Helper()
	stored, err := repo.Insert(context.Background(), p)
	require.NoError(t, err)
	return stored
}

func TestProjectRepo_InsertAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	stored := insertTestProject(t, repo, model.Project{
		Title:       "Weather Forecast App",
		Description: "Real-time weather application.",
		TechStack:   []string{"Python", "Flask", "Charts.js"},
		Category:    "Full Stack",
		Featured:    true,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	assert.NotZero(t, stored.ID)

	projects, err := repo.List(ctx, driven.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Weather Forecast App", projects[0].Title)
	assert.Equal(t, []string{"Python", "Flask", "Charts.js"}, projects[0].TechStack)
	assert.True(t, projects[0].Featured)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), projects[0].CreatedAt)
}

func TestProjectRepo_ListOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	insertTestProject(t, repo, model.Project{
		Title: "Older", Description: "d", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	insertTestProject(t, repo, model.Project{
		Title: "Newer", Description: "d", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	projects, err := repo.List(ctx, driven.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].Title)
	assert.Equal(t, "Older", projects[1].Title)
}

func TestProjectRepo_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	insertTestProject(t, repo, model.Project{Title: "A", Description: "d", Category: "Frontend", Featured: true})
	insertTestProject(t, repo, model.Project{Title: "B", Description: "d", Category: "Frontend"})
	insertTestProject(t, repo, model.Project{Title: "C", Description: "d", Category: "AI/ML", Featured: true})

	frontend, err := repo.List(ctx, driven.ProjectFilter{Category: "Frontend"})
	require.NoError(t, err)
	assert.Len(t, frontend, 2)

	featured, err := repo.List(ctx, driven.ProjectFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}

	featuredFrontend, err := repo.List(ctx, driven.ProjectFilter{Category: "Frontend", FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featuredFrontend, 1)
	assert.Equal(t, "A", featuredFrontend[0].Title)
}

// TestProjectRepo_TechStackRoundTrip verifies the JSON TEXT column round-trips
// the ordered technology list.
func TestProjectRepo_TechStackRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	techStack := []string{"Solidity", "Web3.js", "React", "Blockchain", "Smart Contracts"}
	insertTestProject(t, repo, model.Project{Title: "CarbonChain", Description: "d", TechStack: techStack})

	projects, err := repo.List(ctx, driven.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, techStack, projects[0].TechStack)
}

func TestProjectRepo_NilTechStackBecomesEmptyList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	insertTestProject(t, repo, model.Project{Title: "Bare", Description: "d"})

	projects, err := repo.List(ctx, driven.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{}, projects[0].TechStack)
}
