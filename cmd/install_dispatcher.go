// File: cmd/install_dispatcher.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/edespino/pyinstall/internal/logging"
	"go.uber.org/zap"
)

// Clock abstracts time so pacing can be observed in tests.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Dispatcher types a command sequence into a terminal session, one command
// at a time, pausing for Pacing after each send. It only guarantees that
// commands are sent in order; it never looks at what the terminal does
// with them.
type Dispatcher struct {
	Clock  Clock
	Pacing time.Duration
	Logger *logging.Logger
}

// NewDispatcher returns a dispatcher using the wall clock.
func NewDispatcher(pacing time.Duration, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{Clock: realClock{}, Pacing: pacing, Logger: logger}
}

// Dispatch sends every command in seq to session in order. The first send
// error stops the sequence; commands already sent stay sent and the rest
// are not attempted. An interrupted pause after the last command is not an
// error since every command has been submitted by then.
func (d *Dispatcher) Dispatch(ctx context.Context, session Session, seq CommandSequence) error {
	log := d.Logger
	if log == nil {
		log = logging.NewNop()
	}
	clock := d.Clock
	if clock == nil {
		clock = realClock{}
	}

	total := seq.Len()
	for i := 0; i < total; i++ {
		command := seq.At(i)
		if err := session.SendText(ctx, command); err != nil {
			log.Error("failed to send command",
				zap.Int("index", i),
				zap.String("command", command),
				zap.Error(err))
			return fmt.Errorf("dispatch: failed to send command %d of %d (%q): %w", i+1, total, command, err)
		}
		log.Debug("sent command",
			zap.Int("index", i),
			zap.String("command", command),
			zap.Time("at", clock.Now()))

		if err := clock.Sleep(ctx, d.Pacing); err != nil {
			if i == total-1 {
				log.Debug("final pause interrupted", zap.Error(err))
				return nil
			}
			return fmt.Errorf("dispatch: interrupted after command %d of %d: %w", i+1, total, err)
		}
	}
	return nil
}
