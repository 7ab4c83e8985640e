package kingoftime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when something sleeps on it.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	waits []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.waits = append(c.waits, d)
	return nil
}

func (c *fakeClock) slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.waits...)
}

func newTestGate(clock *fakeClock) *Gate {
	g := NewGate()
	g.nowFunc = clock.Now
	g.sleepFunc = clock.Sleep
	return g
}

func TestGate_NilNeverBlocks(t *testing.T) {
	var g *Gate
	g.Extend(time.Minute)
	assert.Zero(t, g.Remaining())
	assert.NoError(t, g.Wait(context.Background()))
}

func TestGate_OpenByDefault(t *testing.T) {
	clock := newFakeClock()
	g := newTestGate(clock)

	require.NoError(t, g.Wait(context.Background()))
	assert.Empty(t, clock.slept())
}

func TestGate_WaitSleepsRemainingCooldown(t *testing.T) {
	clock := newFakeClock()
	g := newTestGate(clock)

	g.Extend(4 * time.Second)
	_ = clock.Sleep(context.Background(), time.Second)

	require.NoError(t, g.Wait(context.Background()))
	assert.Equal(t, []time.Duration{time.Second, 3 * time.Second}, clock.slept())
	assert.Zero(t, g.Remaining())
}

func TestGate_ExtendNeverShortens(t *testing.T) {
	clock := newFakeClock()
	g := newTestGate(clock)

	g.Extend(4 * time.Second)
	g.Extend(time.Second)
	assert.Equal(t, 4*time.Second, g.Remaining())

	g.Extend(8 * time.Second)
	assert.Equal(t, 8*time.Second, g.Remaining())
}

func TestGate_IgnoresNonPositiveDurations(t *testing.T) {
	g := newTestGate(newFakeClock())
	g.Extend(0)
	g.Extend(-time.Second)
	assert.Zero(t, g.Remaining())
}

func TestGate_WaitHonorsContext(t *testing.T) {
	g := newTestGate(newFakeClock())
	g.Extend(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Wait(ctx), context.Canceled)
}

func TestGate_ConcurrentWaitersShareCooldown(t *testing.T) {
	clock := newFakeClock()
	g := newTestGate(clock)
	g.Extend(2 * time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Wait(context.Background()))
		}()
	}
	wg.Wait()

	assert.Zero(t, g.Remaining())
}

func TestGateSet_OneGatePerToken(t *testing.T) {
	set := NewGateSet()

	a := set.For("token-a")
	assert.Same(t, a, set.For("token-a"))
	assert.NotSame(t, a, set.For("token-b"))

	var nilSet *GateSet
	assert.Nil(t, nilSet.For("token-a"))
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
