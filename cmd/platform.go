// File: cmd/platform.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// OSClass identifies the operating systems pyinstall knows how to install
// Python on.
type OSClass int

const (
	MacOS OSClass = iota + 1
	Linux
)

// ErrUnsupportedOS is returned for any operating system other than macOS or Linux.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// osRelease is the file read for the Linux distribution name.
var osRelease = "/etc/os-release"

func (o OSClass) String() string {
	switch o {
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	}
	return fmt.Sprintf("OSClass(%d)", int(o))
}

// ParseOSClass maps a user supplied name to an OSClass.
func ParseOSClass(name string) (OSClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mac", "macos", "osx", "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOS, name)
}

// detectOSClass classifies a runtime.GOOS value.
func detectOSClass(goos string) (OSClass, error) {
	switch goos {
	case "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
}

// currentOSClass classifies the machine pyinstall is running on.
func currentOSClass() (OSClass, error) {
	return detectOSClass(runtime.GOOS)
}

// getOSVersion returns a human readable version for the host identified by
// goos. On macOS it asks sw_vers; elsewhere it reads PRETTY_NAME from os-release.
func getOSVersion(ctx context.Context, goos string) (string, error) {
	if goos == "darwin" {
		output, err := cmdExecutor.Execute(ctx, "sw_vers", "-productVersion")
		if err != nil {
			return "", fmt.Errorf("sw_vers: failed to retrieve version: %w", err)
		}
		return "macOS " + strings.TrimSpace(string(output)), nil
	}

	output, err := os.ReadFile(osRelease)
	if err != nil {
		return "", fmt.Errorf("os-release: failed to read file: %w", err)
	}
	for _, line := range strings.Split(string(output), "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(strings.SplitN(line, "=", 2)[1], `"'`), nil
		}
	}
	return "unknown", nil
}

// getKernelVersion returns the kernel release reported by uname -r.
func getKernelVersion(ctx context.Context) (string, error) {
	output, err := cmdExecutor.Execute(ctx, "uname", "-r")
	if err != nil {
		return "", fmt.Errorf("kernel: failed to retrieve version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
