// File: cmd/install.go
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/edespino/pyinstall/internal/config"
	"github.com/edespino/pyinstall/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Installer runs one install: acquire a session, resolve the commands for
// the target OS, then dispatch them. Nothing is retried and nothing is
// verified afterwards.
type Installer struct {
	Provider   SessionProvider
	Prober     Prober
	Dispatcher *Dispatcher
	Logger     *logging.Logger
}

// Install performs the install for class. The acquired session is returned
// even when a later step fails so the caller can release it.
func (in *Installer) Install(ctx context.Context, class OSClass) (Session, error) {
	base := in.Logger
	if base == nil {
		base = logging.NewNop()
	}
	log := base.With(zap.String("invocation", uuid.NewString()), zap.Stringer("os", class))

	session, err := in.Provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("install: failed to acquire terminal: %w", err)
	}

	commands, err := ResolveCommands(class, in.Prober)
	if err != nil {
		return session, fmt.Errorf("install: %w", err)
	}
	dispatcher := in.Dispatcher
	if dispatcher == nil {
		dispatcher = NewDispatcher(config.DefaultPacing, base)
	}
	log.Info("dispatching install commands",
		zap.Strings("commands", commands.Commands()),
		zap.Duration("pacing", dispatcher.Pacing))

	if err := dispatcher.Dispatch(ctx, session, commands); err != nil {
		return session, fmt.Errorf("install: %w", err)
	}
	return session, nil
}

// Hooks replaced by tests.
var (
	newSessionProvider = defaultSessionProvider
	newProber          = func(l *logging.Logger) Prober { return NewPathProber(l) }
	dispatchClock      Clock = realClock{}
)

func defaultSessionProvider(cfg *config.Config, out io.Writer, l *logging.Logger) (SessionProvider, error) {
	switch cfg.Terminal {
	case config.TerminalPTY:
		provider := NewPTYProvider(cfg.Shell, l.Named("terminal"))
		provider.Stdout = out
		return provider, nil
	case config.TerminalStdout:
		return WriterProvider{Out: out}, nil
	}
	return nil, config.ValidateTerminal(cfg.Terminal)
}

func newInstaller(cmd *cobra.Command) (*Installer, error) {
	provider, err := newSessionProvider(settings, cmd.OutOrStdout(), logger)
	if err != nil {
		return nil, err
	}
	dispatcher := NewDispatcher(settings.Pacing, logger.Named("dispatch"))
	dispatcher.Clock = dispatchClock

	return &Installer{
		Provider:   provider,
		Prober:     newProber(logger.Named("probe")),
		Dispatcher: dispatcher,
		Logger:     logger,
	}, nil
}

// runInstall is the handler behind every install trigger.
func runInstall(cmd *cobra.Command, class OSClass) error {
	installer, err := newInstaller(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	session, err := installer.Install(ctx, class)
	if closer, ok := session.(io.Closer); ok {
		defer closer.Close()
	}
	if err != nil {
		return err
	}

	if a, ok := session.(attacher); ok {
		return a.Attach(ctx)
	}
	return nil
}

// installActions maps each OS to the handler its trigger runs.
var installActions = map[OSClass]func(cmd *cobra.Command) error{
	MacOS: func(cmd *cobra.Command) error { return runInstall(cmd, MacOS) },
	Linux: func(cmd *cobra.Command) error { return runInstall(cmd, Linux) },
}

// installTriggers names the subcommands bound to installActions.
var installTriggers = []struct {
	use     string
	aliases []string
	short   string
	class   OSClass
}{
	{use: "mac", aliases: []string{"macos", "osx"}, short: "Install Python with Homebrew", class: MacOS},
	{use: "linux", short: "Install Python with dnf, or apt-get when dnf is missing", class: Linux},
}

// installCmd installs for the host OS, or for the OS named by a subcommand.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Python 3 on this machine",
	Long: `Open a shell in a terminal and type the package manager commands that
install Python 3.

  macOS:  brew install python3
  Linux:  sudo dnf install python3 when dnf is on PATH, otherwise
          sudo apt-get update
          sudo apt-get install python3 python3-venv python3-pip

Commands are typed one at a time with a pause after each (--pacing).
pyinstall does not check whether the installation succeeded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class, err := currentOSClass()
		if err != nil {
			return err
		}
		action, ok := installActions[class]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedOS, class)
		}
		return action(cmd)
	},
}

func init() {
	for _, trigger := range installTriggers {
		action := installActions[trigger.class]
		installCmd.AddCommand(&cobra.Command{
			Use:     trigger.use,
			Aliases: trigger.aliases,
			Short:   trigger.short,
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return action(cmd)
			},
		})
	}
	rootCmd.AddCommand(installCmd)
}
