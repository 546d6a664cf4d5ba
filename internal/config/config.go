// Package config loads pyinstall settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Terminal kinds.
const (
	TerminalPTY    = "pty"
	TerminalStdout = "stdout"
)

// DefaultPacing is the pause between two commands typed into a terminal.
// It is an empirically tuned heuristic: terminals have been seen to drop
// characters when text arrives before the previous line is echoed, and no
// readiness signal is observable, so a fixed delay is used instead.
const DefaultPacing = 500 * time.Millisecond

// ErrUnknownTerminal is returned for a terminal kind other than pty or stdout.
var ErrUnknownTerminal = errors.New("unknown terminal kind")

// Config holds all pyinstall configuration. Variable names are spelled out
// in full so envconfig never falls back to generic names like SHELL.
type Config struct {
	Pacing   time.Duration `envconfig:"PYINSTALL_PACING" default:"500ms"`
	Terminal string        `envconfig:"PYINSTALL_TERMINAL" default:"pty"`
	Shell    string        `envconfig:"PYINSTALL_SHELL"`
	LogLevel string        `envconfig:"PYINSTALL_LOG_LEVEL" default:"warn"`
	LogDev   bool          `envconfig:"PYINSTALL_LOG_DEV" default:"true"`
}

// Load loads configuration from PYINSTALL_* environment variables. Values
// are parsed but not validated, so callers can apply overrides first and
// call Validate afterwards.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads and validates configuration from the environment, or
// returns the default when either step fails.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil || cfg.Validate() != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Pacing:   DefaultPacing,
		Terminal: TerminalPTY,
		LogLevel: "warn",
		LogDev:   true,
	}
}

// Validate checks values that envconfig cannot check on its own.
func (c *Config) Validate() error {
	if c.Pacing < 0 {
		return fmt.Errorf("config: pacing must not be negative, got %s", c.Pacing)
	}
	return ValidateTerminal(c.Terminal)
}

// ValidateTerminal reports whether kind names a supported terminal.
func ValidateTerminal(kind string) error {
	switch kind {
	case TerminalPTY, TerminalStdout:
		return nil
	}
	return fmt.Errorf("config: %w: %q. Valid options are 'pty' or 'stdout'", ErrUnknownTerminal, kind)
}
