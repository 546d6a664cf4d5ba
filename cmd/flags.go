// File: cmd/flags.go
package cmd

import (
	"fmt"
	"time"

	"github.com/edespino/pyinstall/internal/config"
)

// Shared command flags. Values only take effect when the flag is set
// explicitly; otherwise the PYINSTALL_* environment decides.
var (
	formatFlag   string // Output format for reports (yaml/json)
	terminalFlag string
	pacingFlag   time.Duration
	shellFlag    string
	logLevelFlag string
	logDevFlag   bool
)

// validateFormat checks if the provided format is either "json" or "yaml"
func validateFormat(format string) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format: %s. Valid options are 'json' or 'yaml'", format)
	}
	return nil
}

// initSharedFlags registers flags every subcommand inherits.
func initSharedFlags() {
	defaults := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&formatFlag, "format", "yaml", "Output format: yaml or json")
	flags.StringVar(&terminalFlag, "terminal", defaults.Terminal, "Where commands are sent: pty or stdout")
	flags.DurationVar(&pacingFlag, "pacing", defaults.Pacing, "Pause after each typed command")
	flags.StringVar(&shellFlag, "shell", "", "Shell to start in the terminal (default $SHELL)")
	flags.StringVar(&logLevelFlag, "log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	flags.BoolVar(&logDevFlag, "log-dev", defaults.LogDev, "Human readable console logs")
}
