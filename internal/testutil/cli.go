package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/app"
	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/config"
)

// ExecuteCLICommand runs cmd with args against a. It returns what the
// command wrote to stdout and stderr.
func ExecuteCLICommand(t *testing.T, a *app.App, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	ctx := cli.WithConfig(cli.WithApp(context.Background(), a), config.Default())

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
