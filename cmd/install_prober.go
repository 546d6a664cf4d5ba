// File: cmd/install_prober.go
package cmd

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/edespino/pyinstall/internal/logging"
	"go.uber.org/zap"
)

// ProbeResult reports whether an executable was found on the search path.
// It describes a single lookup and is never cached.
type ProbeResult struct {
	Name      string `json:"name" yaml:"name"`
	Available bool   `json:"available" yaml:"available"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Prober checks for the presence of a package manager.
type Prober interface {
	Probe(name string) ProbeResult
}

var errBlankPath = errors.New("lookup returned a blank path")

// PathProber resolves executables against PATH. Lookup failures are logged
// at debug level and reported as unavailable; they are never returned.
type PathProber struct {
	logger   *logging.Logger
	lookPath func(string) (string, error)
}

// NewPathProber returns a prober backed by exec.LookPath.
func NewPathProber(logger *logging.Logger) *PathProber {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PathProber{logger: logger, lookPath: exec.LookPath}
}

func (p *PathProber) Probe(name string) ProbeResult {
	path, err := p.lookPath(name)
	if err == nil && strings.TrimSpace(path) == "" {
		err = errBlankPath
	}
	if err != nil {
		p.logger.Debug("package manager not found", zap.String("name", name), zap.Error(err))
		return ProbeResult{Name: name}
	}

	p.logger.Debug("resolved package manager", zap.String("name", name), zap.String("path", path))
	return ProbeResult{Name: name, Available: true, Path: path}
}
