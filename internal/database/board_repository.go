package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// BoardRepo handles boards, columns and issue trackers
type BoardRepo struct {
	db *sql.DB
}

// CreateBoard inserts a board with no columns
func (r *BoardRepo) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO boards (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create board %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Board{ID: types.BoardID(id), Name: name}, nil
}

// GetBoard loads a board with its columns and issue trackers, both ordered
func (r *BoardRepo) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadChildren(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoardByColumn loads the board that owns columnID
func (r *BoardRepo) GetBoardByColumn(ctx context.Context, columnID types.ColumnID) (*models.Board, error) {
	var boardID types.BoardID
	err := r.db.QueryRowContext(ctx,
		`SELECT board_id FROM columns WHERE id = ?`, columnID,
	).Scan(&boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrColumnNotFound
	}
	if err != nil {
		return nil, err
	}

	return r.GetBoard(ctx, boardID)
}

// ListBoards returns every board ordered by id, children included
func (r *BoardRepo) ListBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM boards ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		board := &models.Board{}
		if err := rows.Scan(&board.ID, &board.Name); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Close before issuing the child queries; the pool has a single connection
	rows.Close()

	for _, board := range boards {
		if err := r.loadChildren(ctx, board); err != nil {
			return nil, err
		}
	}

	return boards, nil
}

// CreateColumn appends a column to a board
func (r *BoardRepo) CreateColumn(ctx context.Context, boardID types.BoardID, name string, position int) (*models.Column, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (board_id, name, position) VALUES (?, ?, ?)`,
		boardID, name, position,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create column %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Column{ID: types.ColumnID(id), BoardID: boardID, Name: name, Position: position}, nil
}

// CreateIssueTracker adds a tracker to a board. Trackers apply in insertion order.
func (r *BoardRepo) CreateIssueTracker(ctx context.Context, boardID types.BoardID, regex, url string) (*models.IssueTracker, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO issue_trackers (board_id, regex, url) VALUES (?, ?, ?)`,
		boardID, regex, url,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue tracker: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.IssueTracker{ID: types.TrackerID(id), BoardID: boardID, Regex: regex, URL: url}, nil
}

func (r *BoardRepo) loadChildren(ctx context.Context, board *models.Board) error {
	columns, err := r.columnsForBoard(ctx, board.ID)
	if err != nil {
		return fmt.Errorf("failed to load columns for board %d: %w", board.ID, err)
	}
	trackers, err := r.trackersForBoard(ctx, board.ID)
	if err != nil {
		return fmt.Errorf("failed to load issue trackers for board %d: %w", board.ID, err)
	}

	board.Columns = columns
	board.IssueTrackers = trackers
	return nil
}

func (r *BoardRepo) columnsForBoard(ctx context.Context, boardID types.BoardID) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name, position
		 FROM columns
		 WHERE board_id = ?
		 ORDER BY position, id`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := []*models.Column{}
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.BoardID, &col.Name, &col.Position); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

func (r *BoardRepo) trackersForBoard(ctx context.Context, boardID types.BoardID) ([]*models.IssueTracker, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, regex, url
		 FROM issue_trackers
		 WHERE board_id = ?
		 ORDER BY id`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trackers := []*models.IssueTracker{}
	for rows.Next() {
		tracker := &models.IssueTracker{}
		if err := rows.Scan(&tracker.ID, &tracker.BoardID, &tracker.Regex, &tracker.URL); err != nil {
			return nil, err
		}
		trackers = append(trackers, tracker)
	}

	return trackers, rows.Err()
}
