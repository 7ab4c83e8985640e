package kingoftime

import (
	"context"
	"sync"
	"time"
)

// Gate holds the rate-limit cooldown for one credential. Clients sharing a
// Gate hold back new requests while any of them is backing off after a 429.
// A nil *Gate never blocks. Gate is safe for concurrent use.
type Gate struct {
	mu    sync.Mutex
	until time.Time

	nowFunc   func() time.Time
	sleepFunc func(ctx context.Context, d time.Duration) error
}

// NewGate returns an open gate.
func NewGate() *Gate {
	return &Gate{
		nowFunc:   time.Now,
		sleepFunc: sleepContext,
	}
}

// Extend pushes the cooldown to at least now+d. It never shortens it.
func (g *Gate) Extend(d time.Duration) {
	if g == nil || d <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if until := g.nowFunc().Add(d); until.After(g.until) {
		g.until = until
	}
}

// Remaining reports how long the cooldown still lasts.
func (g *Gate) Remaining() time.Duration {
	if g == nil {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.until.IsZero() {
		return 0
	}
	if d := g.until.Sub(g.nowFunc()); d > 0 {
		return d
	}
	return 0
}

// Wait blocks until the cooldown has passed or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	for {
		d := g.Remaining()
		if d <= 0 {
			return nil
		}
		if err := g.sleepFunc(ctx, d); err != nil {
			return err
		}
	}
}

// GateSet hands out one Gate per access token.
type GateSet struct {
	mu    sync.Mutex
	gates map[string]*Gate
}

func NewGateSet() *GateSet {
	return &GateSet{gates: make(map[string]*Gate)}
}

// For returns the gate for token, creating it on first use.
func (s *GateSet) For(token string) *Gate {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.gates[token]
	if !ok {
		g = NewGate()
		s.gates[token] = g
	}
	return g
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
