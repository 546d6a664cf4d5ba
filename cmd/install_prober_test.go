// File: cmd/install_prober_test.go
package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/edespino/pyinstall/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathProberLookup(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		expected ProbeResult
	}{
		{
			name:     "found",
			path:     "/usr/bin/dnf",
			expected: ProbeResult{Name: "dnf", Available: true, Path: "/usr/bin/dnf"},
		},
		{
			name:     "not found",
			err:      errors.New(`exec: "dnf": executable file not found in $PATH`),
			expected: ProbeResult{Name: "dnf"},
		},
		{
			name:     "permission denied",
			err:      os.ErrPermission,
			expected: ProbeResult{Name: "dnf"},
		},
		{
			name:     "blank path",
			path:     "   ",
			expected: ProbeResult{Name: "dnf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := NewPathProber(logging.NewNop())
			prober.lookPath = func(string) (string, error) { return tt.path, tt.err }

			assert.Equal(t, tt.expected, prober.Probe("dnf"))
		})
	}
}

// TestPathProberSearchPath drives the real exec.LookPath against a PATH
// holding a single fake executable.
func TestPathProberSearchPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not meaningful on windows")
	}

	binDir := t.TempDir()
	fake := filepath.Join(binDir, "dnf")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0755))
	t.Setenv("PATH", binDir)

	prober := NewPathProber(nil)

	found := prober.Probe("dnf")
	assert.True(t, found.Available)
	assert.Equal(t, fake, found.Path)

	missing := prober.Probe("apt-get")
	assert.False(t, missing.Available)
	assert.Empty(t, missing.Path)
}
