// Package lang holds the localized string table used for menu labels,
// progress titles and notifications.
package lang

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Symbolic keys of the string table
const (
	Task          = "boards_task"
	TaskComplete  = "boards_taskComplete"
	ViewTask      = "boards_viewTask"
	EditTask      = "boards_editTask"
	RemoveTask    = "boards_removeTask"
	AddTask       = "boards_addTask"
	MoveTask      = "boards_moveTask"
	SelectColumn  = "boards_selectColumn"
	CopyTaskTo    = "boards_copyTaskTo"
	MoveTaskTo    = "boards_moveTaskTo"
	SelectBoard   = "boards_selectBoard"
	CopyMoveHelp  = "boards_copyMoveHelp"
	TaskCopied    = "boards_taskCopied"
	TaskMoved     = "boards_taskMoved"
	NoDescription = "boards_noDescription"
	TaskOverdue   = "boards_taskOverdue"
	TaskNearlyDue = "boards_taskNearlyDue"
)

// Table maps symbolic keys to display text
type Table map[string]string

// Default returns the built-in English table
func Default() Table {
	return Table{
		Task:          "Task",
		TaskComplete:  "Complete",
		ViewTask:      "View Task",
		EditTask:      "Edit Task",
		RemoveTask:    "Remove Task",
		AddTask:       "Add Task",
		MoveTask:      "Move to Column",
		SelectColumn:  "Select Column",
		CopyTaskTo:    "Copy To Board",
		MoveTaskTo:    "Move To Board",
		SelectBoard:   "Select Board",
		CopyMoveHelp:  "The task will be placed in the first column of the selected board.",
		TaskCopied:    "copied to",
		TaskMoved:     "moved to",
		NoDescription: "No description",
		TaskOverdue:   "Overdue",
		TaskNearlyDue: "Due soon",
	}
}

// Get returns the text for key. Missing keys come back as the key itself
// so a gap in a translation is visible rather than blank.
func (t Table) Get(key string) string {
	if v, ok := t[key]; ok {
		return v
	}
	return key
}

// Merge returns a copy of t with every entry of other applied on top
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Load reads a YAML string table from path and merges it over the defaults.
// An empty path returns the defaults.
func Load(path string) (Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strings file: %w", err)
	}

	var overrides Table
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse strings file: %w", err)
	}

	return Default().Merge(overrides), nil
}
