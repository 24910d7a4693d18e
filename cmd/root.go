package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	seedcmd "github.com/thenoetrevino/taskcard/internal/cli/seed"
	"github.com/thenoetrevino/taskcard/internal/cli/serve"
	"github.com/thenoetrevino/taskcard/internal/cli/styles"
	"github.com/thenoetrevino/taskcard/internal/cli/task"
	"github.com/thenoetrevino/taskcard/internal/config"
	"github.com/thenoetrevino/taskcard/internal/logging"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "taskcard",
	Short: "Taskcard - kanban task cards from the terminal",
	Long: `Taskcard renders kanban task descriptions with checklists and issue links,
and moves or copies tasks between columns and boards.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		var (
			cfg *config.Config
			err error
		)
		if path != "" {
			cfg, err = config.LoadFile(path)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return cli.Exit(cli.ExitError, fmt.Errorf("failed to load config: %w", err))
		}

		logCloser, err = logging.Init(cfg.LogPath, cfg.LogLevel)
		if err != nil {
			return cli.Exit(cli.ExitError, err)
		}
		slog.Debug("config loaded", "path", cfg.Path())

		styles.Init(cfg.ColorScheme)
		cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/taskcard/config.yaml)")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(seedcmd.SeedCmd())
	rootCmd.AddCommand(serve.ServeCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
