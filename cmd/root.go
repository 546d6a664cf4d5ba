// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File: root.go
// Package: cmd
//
// Description:
// This file contains the entry point and base configuration for the `pyinstall`
// CLI. It defines the root command (`rootCmd`) that owns the subcommands
// `install` and `plan`, loads PYINSTALL_* configuration from the environment,
// applies flag overrides on top of it and builds the logger every subcommand
// shares.
//
// Usage:
// - Install Python on the current machine:
//   `pyinstall install`
// - Show what would be typed without opening a terminal:
//   `pyinstall plan --format json`

package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/edespino/pyinstall/internal/config"
	"github.com/edespino/pyinstall/internal/logging"
	"github.com/spf13/cobra"
)

// settings and logger hold environment-only values until loadSettings
// replaces them with the flag-adjusted ones.
var (
	settings = config.LoadOrDefault()
	logger   = logging.NewDefault()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pyinstall",
	Short: "Install a Python runtime through the system package manager",
	Long: `pyinstall installs Python 3 on macOS or Linux. It picks the package
manager for the platform (Homebrew, dnf or apt-get), opens your shell in a
terminal and types the install commands for you, one at a time. Once the
commands are typed the shell is yours, so you can answer sudo prompts.

Examples:
  - Install on this machine:
    pyinstall install

  - Install with the Linux command set:
    pyinstall install linux

  - Print the commands instead of typing them:
    pyinstall install --terminal stdout

  - Show the install plan:
    pyinstall plan --format json`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This function is called by main.main() to start the application.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the environment, lets explicitly set flags win and
// rebuilds the shared logger.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("pacing") {
		cfg.Pacing = pacingFlag
	}
	if flags.Changed("terminal") {
		cfg.Terminal = terminalFlag
	}
	if flags.Changed("shell") {
		cfg.Shell = shellFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("log-dev") {
		cfg.LogDev = logDevFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDev,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return err
	}

	settings = cfg
	logger = l
	return nil
}

func init() {
	initSharedFlags()
}
