// Package seed loads boards, columns, issue trackers and tasks from a YAML
// fixture into the database.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskcard/internal/database"
	"github.com/thenoetrevino/taskcard/internal/models"
)

// Fixture is the root of a seed file
type Fixture struct {
	Boards []BoardFixture `yaml:"boards"`
}

// BoardFixture describes one board. Columns are created in order.
type BoardFixture struct {
	Name          string           `yaml:"name"`
	Columns       []string         `yaml:"columns"`
	IssueTrackers []TrackerFixture `yaml:"issue_trackers"`
	Tasks         []TaskFixture    `yaml:"tasks"`
}

// TrackerFixture describes an issue tracker
type TrackerFixture struct {
	Regex string `yaml:"regex"`
	URL   string `yaml:"url"`
}

// TaskFixture describes a task. Column names a column of the same board;
// empty means the first one.
type TaskFixture struct {
	Title       string `yaml:"title"`
	Column      string `yaml:"column"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
	DueDate     string `yaml:"due_date"`
}

// Summary counts what Apply created
type Summary struct {
	Boards   int `json:"boards"`
	Columns  int `json:"columns"`
	Trackers int `json:"trackers"`
	Tasks    int `json:"tasks"`
}

// Parse reads a fixture from r
func Parse(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &f, nil
}

// LoadFile parses the fixture at path
func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Apply creates everything in f. It stops at the first failure; rows
// created before it are kept.
func Apply(ctx context.Context, repo database.DataStore, f *Fixture) (Summary, error) {
	var sum Summary

	for _, bf := range f.Boards {
		board, err := repo.CreateBoard(ctx, bf.Name)
		if err != nil {
			return sum, err
		}
		sum.Boards++

		columns := make(map[string]*models.Column, len(bf.Columns))
		var first *models.Column
		for i, name := range bf.Columns {
			col, err := repo.CreateColumn(ctx, board.ID, name, i)
			if err != nil {
				return sum, err
			}
			columns[name] = col
			if first == nil {
				first = col
			}
			sum.Columns++
		}

		for _, tf := range bf.IssueTrackers {
			if _, err := repo.CreateIssueTracker(ctx, board.ID, tf.Regex, tf.URL); err != nil {
				return sum, err
			}
			sum.Trackers++
		}

		for i, tf := range bf.Tasks {
			col := first
			if tf.Column != "" {
				col = columns[tf.Column]
			}
			if col == nil {
				return sum, fmt.Errorf("task %q on board %q: %w", tf.Title, bf.Name, models.ErrColumnNotFound)
			}

			_, err := repo.CreateTask(ctx, &models.Task{
				Title:       tf.Title,
				Description: tf.Description,
				Color:       tf.Color,
				ColumnID:    col.ID,
				Position:    i,
				DueDate:     tf.DueDate,
			})
			if err != nil {
				return sum, err
			}
			sum.Tasks++
		}

		slog.Debug("seeded board", "board", bf.Name, "columns", len(bf.Columns), "tasks", len(bf.Tasks))
	}

	return sum, nil
}
