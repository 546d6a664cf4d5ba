// File: cmd/command.go
package cmd

import (
	"context"
	"fmt"
	"os/exec"
)

// Commander runs a short, non-interactive system command and returns its
// standard output. Interactive work goes through a Session instead.
type Commander interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execCommander runs commands with os/exec.
type execCommander struct{}

func (execCommander) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	output, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return output, nil
}

var cmdExecutor Commander = execCommander{}

// SetCommander replaces the commander used for platform queries and returns
// a function that restores the previous one.
func SetCommander(c Commander) (restore func()) {
	prev := cmdExecutor
	cmdExecutor = c
	return func() { cmdExecutor = prev }
}
