package task

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/notify"
	"github.com/thenoetrevino/taskcard/internal/taskview"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Render and act on task cards",
	}

	cmd.AddCommand(RenderCmd())
	cmd.AddCommand(ProgressCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MenuCmd())
	cmd.AddCommand(ColumnCmd())
	cmd.AddCommand(CopyCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// taskCommand builds a subcommand taking a task ID as positional argument
// or --id flag, plus the output flags
func taskCommand(use, short string, extraArgs int, run func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.RangeArgs(extraArgs, extraArgs+1),
		RunE:  run,
	}
	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

// session is an open CLI together with the card a command works on
type session struct {
	cli  *cli.CLI
	card *taskview.Card
}

func (s *session) close() {
	if err := s.cli.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}

// openCard opens the CLI and loads the card of taskArgs. Failures are
// reported through formatter and returned with their exit code.
func openCard(cmd *cobra.Command, taskArgs []string, formatter *cli.OutputFormatter, notes notify.Sink) (*session, error) {
	taskID, err := cli.TaskID(cmd, taskArgs)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_TASK_ID", err.Error(),
			"Usage: taskcard task "+cmd.Name()+" <id> or --id=<id>"); fmtErr != nil {
			slog.Error("error formatting error message", "error", fmtErr)
		}
		return nil, cli.Exit(cli.ExitUsage, err)
	}

	cliInstance, err := cli.NewCLI(cmd)
	if err != nil {
		return nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	card, err := cliInstance.App.CardWithSink(cmd.Context(), taskID, notes)
	if err != nil {
		_ = cliInstance.Close()
		code, name := cli.LookupExitCode(err)
		return nil, formatter.Fail(code, name, err)
	}

	return &session{cli: cliInstance, card: card}, nil
}
