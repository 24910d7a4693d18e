package models

import "github.com/thenoetrevino/taskcard/internal/types"

// Column represents a board column (e.g., "Todo", "In Progress", "Done").
// A column belongs to exactly one board.
type Column struct {
	ID       types.ColumnID `json:"id" yaml:"id"`
	BoardID  types.BoardID  `json:"board_id" yaml:"board_id"`
	Name     string         `json:"name" yaml:"name"`
	Position int            `json:"position" yaml:"position"`
}
