package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/app"
	"github.com/thenoetrevino/taskcard/internal/config"
	"github.com/thenoetrevino/taskcard/internal/database"
)

func TestNewCLI_UsesInjectedApp(t *testing.T) {
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	a := app.New(database.NewRepository(db))

	cfg := config.Default()
	cmd := &cobra.Command{Use: "x"}
	cmd.SetContext(WithConfig(WithApp(context.Background(), a), cfg))

	c, err := NewCLI(cmd)
	require.NoError(t, err)
	assert.Same(t, a, c.App)
	assert.Same(t, cfg, c.Config)

	// an injected app stays usable after Close
	require.NoError(t, c.Close())
	_, err = a.BoardService.ListBoards(context.Background())
	assert.NoError(t, err)
}

func TestNewCLI_OpensConfiguredDatabase(t *testing.T) {
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "taskcard.db")

	cmd := &cobra.Command{Use: "x"}
	cmd.SetContext(WithConfig(context.Background(), cfg))

	c, err := NewCLI(cmd)
	require.NoError(t, err)
	assert.FileExists(t, cfg.DatabasePath)
	assert.NoError(t, c.Close())
}
