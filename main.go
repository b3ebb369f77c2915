package main

import (
	"os"

	"github.com/thenoetrevino/taskflow/cmd"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
