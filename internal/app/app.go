// Package app is the application container shared by the CLI, HTTP and
// TUI surfaces.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskcard/internal/config"
	"github.com/thenoetrevino/taskcard/internal/database"
	"github.com/thenoetrevino/taskcard/internal/events"
	"github.com/thenoetrevino/taskcard/internal/lang"
	"github.com/thenoetrevino/taskcard/internal/markup"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/notify"
	boardservice "github.com/thenoetrevino/taskcard/internal/services/board"
	"github.com/thenoetrevino/taskcard/internal/taskview"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// App holds all application services and provides dependency injection
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore
	db   *sql.DB

	logger *slog.Logger

	Strings  lang.Table
	Renderer *markup.Renderer
	Ledger   *markup.Ledger
	Notes    *notify.Store
	Bus      *events.Bus

	// Service layer (business logic)
	BoardService boardservice.Service
}

// New creates a new App around repo
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{
		logger:  slog.Default(),
		strings: lang.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ledger := markup.NewLedger()
	renderOpts := append([]markup.Option{
		markup.WithLedger(ledger),
		markup.WithLogger(cfg.logger),
	}, cfg.renderOpts...)

	return &App{
		repo:         repo,
		logger:       cfg.logger,
		Strings:      cfg.strings,
		Renderer:     markup.NewRenderer(renderOpts...),
		Ledger:       ledger,
		Notes:        notify.NewStore(),
		Bus:          events.NewBus(),
		BoardService: boardservice.NewService(repo, cfg.logger),
	}
}

// Open builds an App from configuration: it opens the database, loads the
// string table and configures the renderer.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	strings := lang.Default()
	if cfg.StringsFile != "" {
		strings, err = lang.Load(cfg.StringsFile)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to load strings: %w", err)
		}
	}

	base := []Option{
		WithStrings(strings),
		WithRenderOptions(
			markup.WithSanitizer(cfg.Render.Sanitize),
			markup.WithHighlightStyle(cfg.Render.HighlightStyle),
			markup.WithUnsafeHTML(cfg.Render.UnsafeHTML),
		),
	}

	a := New(database.NewRepository(db), append(base, opts...)...)
	a.db = db
	return a, nil
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Card loads a task together with its board and the board list and wraps
// them in a task card. The active board is the one owning the task's column.
// Notifications go to the app-wide store.
func (a *App) Card(ctx context.Context, taskID types.TaskID) (*taskview.Card, error) {
	return a.CardWithSink(ctx, taskID, a.Notes)
}

// CardWithSink is Card with notifications sent to notes instead
func (a *App) CardWithSink(ctx context.Context, taskID types.TaskID, notes notify.Sink) (*taskview.Card, error) {
	task, err := a.BoardService.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	boards, err := a.BoardService.ListBoards(ctx)
	if err != nil {
		return nil, err
	}

	var active *models.Board
	for _, b := range boards {
		if b.HasColumn(task.ColumnID) {
			active = b
			break
		}
	}
	if active == nil {
		return nil, fmt.Errorf("task %d: %w", taskID, models.ErrColumnNotFound)
	}

	return taskview.NewCard(task, active, boards, taskview.Deps{
		Renderer: a.Renderer,
		Service:  a.BoardService,
		Notes:    notes,
		Events:   a.Bus,
		Strings:  a.Strings,
		Logger:   a.logger,
	}), nil
}

// Close releases the event bus and the database
func (a *App) Close() error {
	var errs []error
	if err := a.Bus.Close(); err != nil && !errors.Is(err, events.ErrBusClosed) {
		errs = append(errs, err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
