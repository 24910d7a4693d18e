// Package taskview ties a task to the board it is shown on: rendering its
// description, reporting checklist progress and due state, and running the
// column and board actions offered by its context menu.
package taskview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskcard/internal/events"
	"github.com/thenoetrevino/taskcard/internal/lang"
	"github.com/thenoetrevino/taskcard/internal/markup"
	"github.com/thenoetrevino/taskcard/internal/menu"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/notify"
	"github.com/thenoetrevino/taskcard/internal/services/board"
	"github.com/thenoetrevino/taskcard/internal/types"
)

const publishRetries = 3

// Deps are the collaborators shared by every card
type Deps struct {
	Renderer *markup.Renderer
	Service  board.Service
	Notes    notify.Sink
	Events   events.Publisher
	Strings  lang.Table
	Logger   *slog.Logger
}

// HostHooks are the menu actions owned by whatever displays the card
type HostHooks struct {
	View   func()
	Edit   func()
	Remove func()
	Add    func()
}

// Card is one task shown on the active board. A Card is not safe for
// concurrent use; build one per request or per view.
type Card struct {
	task        *models.Task
	activeBoard *models.Board
	boards      []*models.Board
	host        HostHooks
	deps        Deps

	percent float64
}

// NewCard creates a card and computes its initial checklist progress.
// activeBoard must be non-nil.
func NewCard(task *models.Task, activeBoard *models.Board, boards []*models.Board, deps Deps) *Card {
	if deps.Renderer == nil {
		deps.Renderer = markup.NewRenderer()
	}
	if deps.Strings == nil {
		deps.Strings = lang.Default()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	c := &Card{
		task:        task,
		activeBoard: activeBoard,
		boards:      boards,
		deps:        deps,
	}
	c.percent = deps.Renderer.Count(task.ID, task.Description).Fraction()
	return c
}

// SetHostHooks sets the view, edit, remove and add menu actions
func (c *Card) SetHostHooks(h HostHooks) {
	c.host = h
}

// Task returns the card's task as last stored
func (c *Card) Task() *models.Task { return c.task }

// ActiveBoard returns the board the card is shown on
func (c *Card) ActiveBoard() *models.Board { return c.activeBoard }

// Description renders the task description with the active board's issue
// trackers and refreshes the checklist progress.
func (c *Card) Description() markup.Result {
	result := c.deps.Renderer.Render(c.task.ID, c.task.Description, c.activeBoard.IssueTrackers)
	c.percent = result.Completion()
	return result
}

// Menu builds the context menu. Selections made in its controls run the
// card actions with ctx.
func (c *Card) Menu(ctx context.Context) []menu.Entry {
	return menu.Build(menu.Input{
		Task:        c.task,
		ActiveBoard: c.activeBoard,
		Boards:      c.boards,
		Strings:     c.deps.Strings,
		Hooks: menu.Hooks{
			View:   c.host.View,
			Edit:   c.host.Edit,
			Remove: c.host.Remove,
			Add:    c.host.Add,
			ChangeColumn: func(id types.ColumnID) {
				c.report(c.ChangeColumn(ctx, id))
			},
			CopyToBoard: func(id types.BoardID) {
				c.report(c.CopyToBoard(ctx, id))
			},
			MoveToBoard: func(id types.BoardID) {
				c.report(c.MoveToBoard(ctx, id))
			},
		},
	})
}

// ChangeColumn moves the task to another column of the active board.
// A zero id is the select placeholder and does nothing.
func (c *Card) ChangeColumn(ctx context.Context, columnID types.ColumnID) error {
	if columnID == 0 {
		return nil
	}

	updated := c.task.Clone()
	updated.ColumnID = columnID

	outcome, err := c.deps.Service.UpdateTask(ctx, updated)
	if err != nil {
		return fmt.Errorf("failed to change column of task %d: %w", c.task.ID, err)
	}

	if !outcome.Succeeded() {
		notify.Forward(c.deps.Notes, outcome.Alerts)
		return nil
	}

	c.task = updated
	if outcome.Data != nil {
		if outcome.Data.Task != nil {
			c.task = outcome.Data.Task
		}
		if outcome.Data.Board != nil {
			c.activeBoard = outcome.Data.Board
			c.publish(events.EventActiveBoardChanged, c.activeBoard.ID)
		}
	}

	// exactly one success note: the service's, or ours when it sent none
	if len(outcome.Alerts) > 0 {
		notify.Forward(c.deps.Notes, outcome.Alerts[:1])
	} else if c.deps.Notes != nil {
		s := c.deps.Strings
		c.deps.Notes.Add(models.NewNotification(models.NoteSuccess,
			s.Get(lang.Task)+" "+c.task.Title+" "+s.Get(lang.TaskMoved)+" "+c.columnName(c.task.ColumnID)))
	}
	return nil
}

// columnName returns the name of id on the active board, or "" when absent
func (c *Card) columnName(id types.ColumnID) string {
	for _, col := range c.activeBoard.Columns {
		if col.ID == id {
			return col.Name
		}
	}
	return ""
}

// CopyToBoard adds a copy of the task to the first column of another board
func (c *Card) CopyToBoard(ctx context.Context, boardID types.BoardID) error {
	if boardID == 0 {
		return nil
	}

	target, err := c.targetBoard(boardID)
	if err != nil {
		return err
	}

	copied := c.task.Clone()
	copied.ColumnID = target.FirstColumn().ID

	outcome, err := c.deps.Service.AddTask(ctx, copied)
	if err != nil {
		return fmt.Errorf("failed to copy task %d: %w", c.task.ID, err)
	}

	if !outcome.Succeeded() {
		notify.Forward(c.deps.Notes, outcome.Alerts)
		return nil
	}

	c.succeed(copied.Title, lang.TaskCopied, target)
	return nil
}

// MoveToBoard moves the task to the first column of another board
func (c *Card) MoveToBoard(ctx context.Context, boardID types.BoardID) error {
	if boardID == 0 {
		return nil
	}

	target, err := c.targetBoard(boardID)
	if err != nil {
		return err
	}

	moved := c.task.Clone()
	moved.ColumnID = target.FirstColumn().ID

	outcome, err := c.deps.Service.UpdateTask(ctx, moved)
	if err != nil {
		return fmt.Errorf("failed to move task %d: %w", c.task.ID, err)
	}

	if !outcome.Succeeded() {
		notify.Forward(c.deps.Notes, outcome.Alerts)
		return nil
	}

	c.task = moved
	if outcome.Data != nil && outcome.Data.Task != nil {
		c.task = outcome.Data.Task
	}
	c.succeed(moved.Title, lang.TaskMoved, target)
	return nil
}

// targetBoard finds boardID among the known boards. The board must have
// a column to receive the task.
func (c *Card) targetBoard(boardID types.BoardID) (*models.Board, error) {
	for _, b := range c.boards {
		if b == nil || b.ID != boardID {
			continue
		}
		if b.FirstColumn() == nil {
			return nil, fmt.Errorf("board %q: %w", b.Name, models.ErrBoardHasNoColumns)
		}
		return b, nil
	}
	return nil, fmt.Errorf("board %d: %w", boardID, models.ErrBoardNotFound)
}

// succeed sends the single success notification and the boards update
func (c *Card) succeed(title, verbKey string, target *models.Board) {
	s := c.deps.Strings
	text := s.Get(lang.Task) + " " + title + " " + s.Get(verbKey) + " " + target.Name

	if c.deps.Notes != nil {
		c.deps.Notes.Add(models.NewNotification(models.NoteSuccess, text))
	}
	c.publish(events.EventBoardsUpdated, 0)
}

func (c *Card) publish(eventType events.EventType, boardID types.BoardID) {
	if c.deps.Events == nil {
		return
	}
	err := events.PublishWithRetry(c.deps.Events, events.Event{Type: eventType, BoardID: boardID}, publishRetries)
	if err != nil {
		c.deps.Logger.Warn("failed to publish event", "type", eventType, "task_id", c.task.ID, "error", err)
	}
}

// report surfaces errors from menu-triggered actions, which have no caller
// to return them to
func (c *Card) report(err error) {
	if err == nil {
		return
	}
	c.deps.Logger.Error("task action failed", "task_id", c.task.ID, "error", err)
	if c.deps.Notes != nil {
		c.deps.Notes.Add(models.NewNotification(models.NoteError, err.Error()))
	}
}
