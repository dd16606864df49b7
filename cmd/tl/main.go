// Package main implements the tl CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tl",
	Short:        "tasklist - a todo list with filters and sorting",
	SilenceUsage: true,
}

var (
	rootStateDir string
	rootLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootStateDir, "state-dir", "", "State directory (default $TASKLIST_STATE_DIR or ~/.local/state/tasklist)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")

	cobra.OnFinalize(closeApp)
}
