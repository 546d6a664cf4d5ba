// File: cmd/install_terminal.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/edespino/pyinstall/internal/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Session is a live interactive shell that accepts literal command text.
type Session interface {
	SendText(ctx context.Context, text string) error
}

// SessionProvider hands out a fresh Session for one invocation.
type SessionProvider interface {
	Acquire(ctx context.Context) (Session, error)
}

// attacher is implemented by sessions the user can take over once every
// command has been typed.
type attacher interface {
	Attach(ctx context.Context) error
}

// ErrSessionClosed is returned when text is sent to a shell that has exited.
var ErrSessionClosed = errors.New("terminal session is closed")

// outputDrain bounds how long Attach waits for trailing shell output.
const outputDrain = 200 * time.Millisecond

// PTYProvider starts the user's shell in a pseudo-terminal wired to the
// current terminal.
type PTYProvider struct {
	Shell  string
	Stdin  *os.File
	Stdout io.Writer
	Logger *logging.Logger
}

// NewPTYProvider returns a provider bridged to the process's stdin and stdout.
func NewPTYProvider(shell string, logger *logging.Logger) *PTYProvider {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PTYProvider{Shell: shell, Stdin: os.Stdin, Stdout: os.Stdout, Logger: logger}
}

// resolveShell picks the shell to run: explicit, then $SHELL, then bash.
func resolveShell(shell string) string {
	if shell != "" {
		return shell
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env
	}
	return "/bin/bash"
}

func (p *PTYProvider) Acquire(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shell := resolveShell(p.Shell)
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("terminal: failed to start PTY for %s: %w", shell, err)
	}

	if p.Stdin != nil && term.IsTerminal(int(p.Stdin.Fd())) {
		if err := pty.InheritSize(p.Stdin, ptmx); err != nil {
			p.Logger.Debug("could not copy terminal size", zap.Error(err))
		}
	}

	stdout := p.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	session := &ptySession{
		id:         uuid.NewString(),
		shell:      shell,
		cmd:        cmd,
		ptmx:       ptmx,
		stdin:      p.Stdin,
		done:       make(chan struct{}),
		outputDone: make(chan struct{}),
	}
	session.logger = p.Logger.With(zap.String("session", session.id), zap.String("shell", shell))

	go session.copyOutput(stdout)
	go session.monitorProcess()

	session.logger.Debug("started terminal session")
	return session, nil
}

// ptySession is a shell process attached to the master side of a PTY.
type ptySession struct {
	id    string
	shell string

	cmd   *exec.Cmd
	ptmx  *os.File
	stdin *os.File

	done       chan struct{}
	outputDone chan struct{}
	logger     *logging.Logger

	mu     sync.Mutex
	closed bool
}

func (s *ptySession) copyOutput(w io.Writer) {
	defer close(s.outputDone)
	// Read fails with EIO once the shell exits; that is the normal end.
	_, _ = io.Copy(w, s.ptmx)
}

func (s *ptySession) monitorProcess() {
	err := s.cmd.Wait()
	s.logger.Debug("shell exited", zap.Error(err))

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	close(s.done)
}

// SendText types text followed by a newline into the shell.
func (s *ptySession) SendText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if _, err := io.WriteString(s.ptmx, text+"\n"); err != nil {
		return fmt.Errorf("terminal: write to %s: %w", s.id, err)
	}
	return nil
}

// Attach forwards the user's keystrokes to the shell until it exits or ctx
// is cancelled. The stdin reader goroutine is left blocked on exit.
func (s *ptySession) Attach(ctx context.Context) error {
	if s.stdin == nil {
		return s.wait(ctx)
	}

	fd := int(s.stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("terminal: failed to enter raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, state) }()
	}

	go func() { _, _ = io.Copy(s.ptmx, s.stdin) }()
	return s.wait(ctx)
}

func (s *ptySession) wait(ctx context.Context) error {
	select {
	case <-s.done:
	case <-ctx.Done():
		_ = s.Close()
		return ctx.Err()
	}

	select {
	case <-s.outputDone:
	case <-time.After(outputDrain):
	}
	return nil
}

// Close kills the shell if it is still running and releases the PTY.
func (s *ptySession) Close() error {
	s.mu.Lock()
	running := !s.closed
	s.closed = true
	s.mu.Unlock()

	if running && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.ptmx.Close()
}

// WriterProvider prints commands to a writer instead of running them. The
// output is a plain script that can be reviewed or piped into sh.
type WriterProvider struct {
	Out io.Writer
}

func (p WriterProvider) Acquire(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &writerSession{out: p.Out}, nil
}

type writerSession struct {
	out io.Writer
}

func (s *writerSession) SendText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, text)
	return err
}
