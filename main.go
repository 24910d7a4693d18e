package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/taskcard/cmd"
	"github.com/thenoetrevino/taskcard/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var coded *cli.CodedError
		if !errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
