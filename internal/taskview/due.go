package taskview

import (
	"math"
	"strings"
	"time"
)

const nearlyDueDays = 3

// dueLayouts are tried in order. Date-only forms are read in the caller's
// location.
var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// DueState flags a task against its due date
type DueState struct {
	Overdue   bool `json:"overdue"`
	NearlyDue bool `json:"nearly_due"`
}

// DueState compares the task's due date with now. The day difference is
// rounded up, so a task due earlier today is already overdue. A task is
// nearly due when it falls due today or within the next two days.
// Empty or unparseable dates produce no flags.
func (c *Card) DueState(now time.Time) DueState {
	return dueState(c.task.DueDate, now)
}

func dueState(dueDate string, now time.Time) DueState {
	due, ok := parseDueDate(dueDate, now.Location())
	if !ok {
		return DueState{}
	}

	days := math.Ceil(now.Sub(due).Hours() / 24)

	return DueState{
		Overdue:   days > 0,
		NearlyDue: days <= 0 && days > -nearlyDueDays,
	}
}

func parseDueDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
