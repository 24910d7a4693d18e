package models

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/taskcard/internal/types"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	errs := []error{ErrBoardNotFound, ErrTaskNotFound, ErrColumnNotFound, ErrBoardHasNoColumns}

	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

// ============================================================================
// Board Tests
// ============================================================================

func TestBoard_FirstColumn(t *testing.T) {
	var nilBoard *Board
	if nilBoard.FirstColumn() != nil {
		t.Error("nil board should have no first column")
	}

	empty := &Board{Name: "Empty"}
	if empty.FirstColumn() != nil {
		t.Error("empty board should have no first column")
	}

	b := &Board{Columns: []*Column{{ID: 4, Name: "Todo"}, {ID: 2, Name: "Done"}}}
	if got := b.FirstColumn(); got == nil || got.ID != 4 {
		t.Errorf("expected column 4, got %+v", got)
	}
}

func TestBoard_HasColumn(t *testing.T) {
	b := &Board{Columns: []*Column{{ID: 1}, {ID: 3}}}

	tests := []struct {
		id   types.ColumnID
		want bool
	}{
		{1, true},
		{3, true},
		{2, false},
		{0, false},
	}

	for _, tt := range tests {
		if got := b.HasColumn(tt.id); got != tt.want {
			t.Errorf("HasColumn(%d) = %v, want %v", tt.id, got, tt.want)
		}
	}

	var nilBoard *Board
	if nilBoard.HasColumn(1) {
		t.Error("nil board should have no columns")
	}
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTask_Clone(t *testing.T) {
	orig := &Task{ID: 1, Title: "a", ColumnID: 2}
	c := orig.Clone()
	c.ColumnID = 9
	c.Title = "b"

	if orig.ColumnID != 2 || orig.Title != "a" {
		t.Errorf("clone mutated original: %+v", orig)
	}
	if c.ID != 1 {
		t.Errorf("expected clone to keep ID, got %d", c.ID)
	}
}

// ============================================================================
// Outcome Tests
// ============================================================================

func TestFailure(t *testing.T) {
	o := Failure("nope")

	if o.Succeeded() {
		t.Error("failure should not succeed")
	}
	if len(o.Alerts) != 1 || o.Alerts[0].Type != NoteError || o.Alerts[0].Text != "nope" {
		t.Errorf("unexpected alerts: %+v", o.Alerts)
	}
	if o.Data != nil {
		t.Error("failure should carry no data")
	}
}

func TestOutcome_Succeeded(t *testing.T) {
	o := Outcome{Status: StatusSuccess, Data: &OutcomeData{Task: &Task{ID: 1}}}
	if !o.Succeeded() {
		t.Error("expected success")
	}
}
