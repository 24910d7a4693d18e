package serve

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/httpapi"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve task cards over HTTP",
		Long: `Serve rendered descriptions, progress, context menus and card actions
over HTTP until interrupted.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (defaults to server.addr from the config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cliInstance, err := cli.NewCLI(cmd)
	if err != nil {
		return cli.Exit(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cliInstance.Config.Server.Addr
	}

	server := httpapi.NewServer(cliInstance.App, slog.Default())
	if err := server.Start(ctx, addr); err != nil {
		return cli.Exit(cli.ExitError, err)
	}
	return nil
}
