// Package main is the entry point for the claudecfg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/claudecfg/cmd/claudecfg/commands"
	"github.com/thoreinstein/claudecfg/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "\nSuggestion: %s\n", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(errors.ExitUser)
	}
}
