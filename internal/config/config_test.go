package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads. t.Setenv restores them after
// the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PYINSTALL_PACING", "PYINSTALL_TERMINAL", "PYINSTALL_SHELL",
		"PYINSTALL_LOG_LEVEL", "PYINSTALL_LOG_DEV",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 500*time.Millisecond, cfg.Pacing)
	assert.Equal(t, TerminalPTY, cfg.Terminal)
	assert.Empty(t, cfg.Shell)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogDev)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearEnv(t)
	envVars := map[string]string{
		"PYINSTALL_PACING":    "750ms",
		"PYINSTALL_TERMINAL":  "stdout",
		"PYINSTALL_SHELL":     "/bin/zsh",
		"PYINSTALL_LOG_LEVEL": "debug",
		"PYINSTALL_LOG_DEV":   "false",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Pacing)
	assert.Equal(t, TerminalStdout, cfg.Terminal)
	assert.Equal(t, "/bin/zsh", cfg.Shell)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogDev)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		loadError bool
	}{
		{name: "unparsable pacing", key: "PYINSTALL_PACING", value: "soon", loadError: true},
		{name: "negative pacing", key: "PYINSTALL_PACING", value: "-1s"},
		{name: "unknown terminal", key: "PYINSTALL_TERMINAL", value: "vt100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			if tt.loadError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Error(t, cfg.Validate())
			}

			assert.Equal(t, Default(), LoadOrDefault())
		})
	}
}

func TestLoadOrDefaultKeepsValidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PYINSTALL_PACING", "1s")

	assert.Equal(t, time.Second, LoadOrDefault().Pacing)
}

func TestValidateTerminal(t *testing.T) {
	assert.NoError(t, ValidateTerminal(TerminalPTY))
	assert.NoError(t, ValidateTerminal(TerminalStdout))

	err := ValidateTerminal("xterm")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTerminal))
	assert.Contains(t, err.Error(), "xterm")
}

func TestLoadWithoutEnvironment(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadIgnoresGenericNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMINAL", "alacritty")
	t.Setenv("SHELL", "/bin/zsh")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TerminalPTY, cfg.Terminal)
	assert.Empty(t, cfg.Shell)
}
