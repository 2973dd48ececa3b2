// Package main is the entry point for the pm CLI.
package main

import (
	"os"

	"github.com/thoreinstein/pm/cmd/pm/commands"
	"github.com/thoreinstein/pm/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
