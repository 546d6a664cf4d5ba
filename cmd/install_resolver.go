// File: cmd/install_resolver.go
package cmd

import (
	"fmt"
	"strings"
)

// Install command lines. Each one must be valid for a POSIX shell.
const (
	brewInstallCmd = "brew install python3"
	dnfInstallCmd  = "sudo dnf install python3"
	aptUpdateCmd   = "sudo apt-get update"
	aptInstallCmd  = "sudo apt-get install python3 python3-venv python3-pip"
)

// dnfName is the only package manager probed for. Without it, apt is assumed.
const dnfName = "dnf"

// CommandSequence is an ordered, read-only list of shell commands. Commands
// must run front to back.
type CommandSequence struct {
	commands []string
}

func newCommandSequence(commands ...string) CommandSequence {
	return CommandSequence{commands: append([]string(nil), commands...)}
}

// Len returns the number of commands.
func (s CommandSequence) Len() int { return len(s.commands) }

// At returns the i-th command.
func (s CommandSequence) At(i int) string { return s.commands[i] }

// Commands returns a copy of the commands in order.
func (s CommandSequence) Commands() []string {
	return append([]string(nil), s.commands...)
}

func (s CommandSequence) String() string {
	return strings.Join(s.commands, "; ")
}

// ResolveCommands returns the commands that install Python on the given OS.
// The prober is consulted for Linux only; macOS always uses Homebrew.
func ResolveCommands(class OSClass, prober Prober) (CommandSequence, error) {
	seq, _, err := resolvePlan(class, prober)
	return seq, err
}

// resolvePlan is ResolveCommands that also hands back the probe it made, if any.
func resolvePlan(class OSClass, prober Prober) (CommandSequence, *ProbeResult, error) {
	switch class {
	case MacOS:
		return newCommandSequence(brewInstallCmd), nil, nil
	case Linux:
		result := prober.Probe(dnfName)
		if result.Available {
			return newCommandSequence(dnfInstallCmd), &result, nil
		}
		return newCommandSequence(aptUpdateCmd, aptInstallCmd), &result, nil
	}
	return CommandSequence{}, nil, fmt.Errorf("resolve: %w: %s", ErrUnsupportedOS, class)
}
