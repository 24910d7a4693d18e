package models

import "github.com/thenoetrevino/taskcard/internal/types"

// Board is the top-level container for columns. Names are unique, which is
// what the context menu relies on to exclude the active board.
type Board struct {
	ID            types.BoardID   `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Columns       []*Column       `json:"columns" yaml:"columns"`
	IssueTrackers []*IssueTracker `json:"issue_trackers" yaml:"issue_trackers"`
}

// FirstColumn returns the board's first column, or nil for an empty board
func (b *Board) FirstColumn() *Column {
	if b == nil || len(b.Columns) == 0 {
		return nil
	}
	return b.Columns[0]
}

// HasColumn reports whether id is one of the board's columns
func (b *Board) HasColumn(id types.ColumnID) bool {
	if b == nil {
		return false
	}
	for _, col := range b.Columns {
		if col.ID == id {
			return true
		}
	}
	return false
}

// IssueTracker pairs a bug-reference pattern with a URL template.
// Regex carries one capturing group holding the bug identifier, and URL
// contains the BugIDPlaceholder to be replaced by it.
type IssueTracker struct {
	ID      types.TrackerID `json:"id" yaml:"id"`
	BoardID types.BoardID   `json:"board_id" yaml:"board_id"`
	Regex   string          `json:"regex" yaml:"regex"`
	URL     string          `json:"url" yaml:"url"`
}
