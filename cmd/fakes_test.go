package cmd

import (
	"context"
	"errors"
	"sync"
	"time"
)

// fakeProber returns a canned result and counts calls.
type fakeProber struct {
	result ProbeResult
	calls  []string
}

func (p *fakeProber) Probe(name string) ProbeResult {
	p.calls = append(p.calls, name)
	r := p.result
	r.Name = name
	return r
}

// fakeClock advances only when Sleep is called.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
	err    error
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

type sentText struct {
	text string
	at   time.Time
}

// fakeSession records every send with the clock time it happened at and
// fails on the send numbered failAt (1-based) when set.
type fakeSession struct {
	clock  Clock
	failAt int
	err    error
	sent   []sentText
	calls  int
}

func (s *fakeSession) SendText(ctx context.Context, text string) error {
	s.calls++
	if s.failAt > 0 && s.calls == s.failAt {
		return s.err
	}
	var at time.Time
	if s.clock != nil {
		at = s.clock.Now()
	}
	s.sent = append(s.sent, sentText{text: text, at: at})
	return nil
}

func (s *fakeSession) texts() []string {
	out := make([]string, 0, len(s.sent))
	for _, st := range s.sent {
		out = append(out, st.text)
	}
	return out
}

// fakeProvider hands out a prepared session.
type fakeProvider struct {
	session  Session
	err      error
	acquired int
}

func (p *fakeProvider) Acquire(ctx context.Context) (Session, error) {
	p.acquired++
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

// fakeCommander answers Execute from a table keyed by command name.
type fakeCommander struct {
	outputs map[string]string
	calls   []string
}

var errCommandNotFound = errors.New("executable file not found in $PATH")

func (c *fakeCommander) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	c.calls = append(c.calls, name)
	out, ok := c.outputs[name]
	if !ok {
		return nil, errCommandNotFound
	}
	return []byte(out), nil
}
