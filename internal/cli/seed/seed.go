package seed

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/seed"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Load boards and tasks from a YAML fixture",
		Long: `Load boards, columns, issue trackers and tasks from a YAML fixture.

Example:
  boards:
    - name: Main
      columns: [Todo, Doing, Done]
      issue_trackers:
        - regex: 'BUG-(\d+)'
          url: https://bugs.example.com/%BUGID%
      tasks:
        - title: Write docs
          column: Todo
          description: "- [ ] outline"`,
		Args: cobra.ExactArgs(1),
		RunE: runSeed,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	fixture, err := seed.LoadFile(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "INVALID_FIXTURE", err)
	}

	cliInstance, err := cli.NewCLI(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	summary, err := seed.Apply(cmd.Context(), cliInstance.App.Repo(), fixture)
	if err != nil {
		code := cli.ExitError
		if errors.Is(err, models.ErrColumnNotFound) {
			code = cli.ExitDataErr
		}
		return formatter.Fail(code, "SEED_FAILED", err)
	}

	return formatter.Success(summary, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Seeded %d boards, %d columns, %d issue trackers and %d tasks\n",
			summary.Boards, summary.Columns, summary.Trackers, summary.Tasks)
		return err
	})
}
