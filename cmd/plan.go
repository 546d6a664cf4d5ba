// File: cmd/plan.go
// Package: cmd
//
// Description:
// This file implements the `plan` command. It reports what `install` would
// do on this machine without opening a terminal: the detected platform, the
// package manager probe and the exact command lines, in YAML or JSON.
//
// Note:
// - Platform facts (OS version, kernel) are gathered concurrently. Failures
//   are listed as warnings and do not fail the command.
// - The target OS defaults to the host OS and may be overridden with an
//   argument (`mac` or `linux`).

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// InstallPlan is the report printed by the plan command.
type InstallPlan struct {
	// Target is the OS the commands were resolved for.
	Target string `json:"target" yaml:"target"`

	HostOS       string `json:"host_os" yaml:"host_os"`
	Architecture string `json:"architecture" yaml:"architecture"`
	OSVersion    string `json:"os_version,omitempty" yaml:"os_version,omitempty"`
	Kernel       string `json:"kernel,omitempty" yaml:"kernel,omitempty"`

	// PackageManager is the probe result. Omitted for macOS, where nothing
	// is probed.
	PackageManager *ProbeResult `json:"package_manager,omitempty" yaml:"package_manager,omitempty"`

	Commands []string `json:"commands" yaml:"commands"`
	Pacing   string   `json:"pacing" yaml:"pacing"`
	Terminal string   `json:"terminal" yaml:"terminal"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

var planCmd = &cobra.Command{
	Use:   "plan [mac|linux]",
	Short: "Show the commands install would type",
	Long: `Resolve the install commands for this machine, or for the named OS, and
print them together with the platform details they were chosen from.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunPlan(cmd, args)
	},
}

// RunPlan builds and prints an InstallPlan in the format chosen by --format.
func RunPlan(cmd *cobra.Command, args []string) error {
	if err := validateFormat(formatFlag); err != nil {
		return err
	}

	var (
		class OSClass
		err   error
	)
	if len(args) == 1 {
		class, err = ParseOSClass(args[0])
	} else {
		class, err = currentOSClass()
	}
	if err != nil {
		return err
	}

	plan, err := buildPlan(cmd, class)
	if err != nil {
		return err
	}

	var output []byte
	if formatFlag == "json" {
		output, err = json.MarshalIndent(plan, "", "  ")
	} else {
		output, err = yaml.Marshal(plan)
	}
	if err != nil {
		return fmt.Errorf("output: failed to generate: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

func buildPlan(cmd *cobra.Command, class OSClass) (InstallPlan, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	plan := InstallPlan{
		Target:       class.String(),
		HostOS:       runtime.GOOS,
		Architecture: runtime.GOARCH,
		Pacing:       settings.Pacing.String(),
		Terminal:     settings.Terminal,
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	warn := func(err error) {
		mu.Lock()
		plan.Warnings = append(plan.Warnings, err.Error())
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if version, err := getOSVersion(ctx, runtime.GOOS); err == nil {
			mu.Lock()
			plan.OSVersion = version
			mu.Unlock()
		} else {
			warn(err)
		}
	}()
	go func() {
		defer wg.Done()
		if kernel, err := getKernelVersion(ctx); err == nil {
			mu.Lock()
			plan.Kernel = kernel
			mu.Unlock()
		} else {
			warn(err)
		}
	}()

	seq, probe, err := resolvePlan(class, newProber(logger.Named("probe")))
	wg.Wait()
	if err != nil {
		return plan, err
	}

	plan.PackageManager = probe
	plan.Commands = seq.Commands()
	return plan, nil
}

func init() {
	rootCmd.AddCommand(planCmd)
}
