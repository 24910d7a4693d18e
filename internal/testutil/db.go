// Package testutil holds helpers shared by tests that need a database, an
// App or a seeded set of boards.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/app"
	"github.com/thenoetrevino/taskcard/internal/database"
	"github.com/thenoetrevino/taskcard/internal/logging"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/seed"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestApp creates an App over a fresh in-memory database. Logging is
// discarded.
func SetupTestApp(t *testing.T, opts ...app.Option) (*app.App, *database.Repository) {
	t.Helper()
	repo := database.NewRepository(SetupTestDB(t))

	opts = append([]app.Option{app.WithLogger(logging.Discard())}, opts...)
	a := app.New(repo, opts...)
	t.Cleanup(func() { _ = a.Close() })
	return a, repo
}

// DemoBoards are the boards created by SeedDemo
type DemoBoards struct {
	// Main has columns Todo, Doing and Done, a BUG-n issue tracker and
	// the "Write docs" task in Todo
	Main *models.Board

	// Ops has columns Backlog and Live and no tasks
	Ops *models.Board

	// Empty has no columns
	Empty *models.Board

	Task *models.Task
}

// DemoDescription is the description of the demo task: two checklist
// items, one checked, and a reference to BUG-7
const DemoDescription = "- [x] outline\n- [ ] draft\n\nFixes BUG-7"

// SeedDemo fills repo with three boards and one task
func SeedDemo(t *testing.T, repo database.DataStore) DemoBoards {
	t.Helper()
	ctx := context.Background()

	_, err := seed.Apply(ctx, repo, &seed.Fixture{Boards: []seed.BoardFixture{
		{
			Name:    "Main board",
			Columns: []string{"Todo", "Doing", "Done"},
			IssueTrackers: []seed.TrackerFixture{
				{Regex: `BUG-(\d+)`, URL: "https://bugs.example.com/" + models.BugIDPlaceholder},
			},
			Tasks: []seed.TaskFixture{{
				Title:       "Write docs",
				Column:      "Todo",
				Description: DemoDescription,
				Color:       "#01e724",
			}},
		},
		{Name: "Ops", Columns: []string{"Backlog", "Live"}},
		{Name: "Empty"},
	}})
	require.NoError(t, err)

	boards, err := repo.ListBoards(ctx)
	require.NoError(t, err)

	var demo DemoBoards
	for _, b := range boards {
		switch b.Name {
		case "Main board":
			demo.Main = b
		case "Ops":
			demo.Ops = b
		case "Empty":
			demo.Empty = b
		}
	}
	require.NotNil(t, demo.Main)

	demo.Task, err = repo.GetTask(ctx, 1)
	require.NoError(t, err)
	return demo
}
