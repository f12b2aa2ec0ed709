package countdown

import (
	"context"
	"testing"
	"time"

	"dsaposter/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var baseTime = time.Date(2026, 10, 19, 17, 59, 57, 0, time.UTC)

func recv(t *testing.T, ch <-chan Update) Update {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		return Update{}
	}
}

func TestRunner_TicksUntilReached(t *testing.T) {
	clock := NewFakeClock(baseTime)
	updates := make(chan Update, 8)
	r := NewForTarget("deadline", config.TimeOfDay{Hour: 18}, clock, WithListener(updates))
	defer r.Stop()

	require.Equal(t, int64(3_000), r.Snapshot().Remaining())
	r.Start(context.Background())

	clock.Advance(time.Second)
	u := recv(t, updates)
	assert.Equal(t, r.ID(), u.ID)
	assert.Equal(t, "deadline", u.Label)
	assert.Equal(t, int64(2_000), u.Countdown.Remaining())

	clock.Advance(2 * time.Second)
	assert.Equal(t, int64(1_000), recv(t, updates).Countdown.Remaining())
	last := recv(t, updates)
	assert.True(t, last.Countdown.Reached())

	// The recurring action ends itself once reached.
	require.Eventually(t, func() bool { return clock.Active() == 0 }, time.Second, 5*time.Millisecond)

	clock.Advance(5 * time.Second)
	assert.Equal(t, int64(0), r.Snapshot().Remaining())
	assert.Len(t, updates, 0)
}

func TestRunner_PassedTargetIsReachedImmediately(t *testing.T) {
	clock := NewFakeClock(time.Date(2026, 10, 19, 19, 0, 0, 0, time.UTC))
	r := NewForTarget("deadline", config.TimeOfDay{Hour: 18}, clock)
	r.Start(context.Background())
	defer r.Stop()

	assert.True(t, r.Snapshot().Reached())
	assert.Equal(t, StateReached, r.Snapshot().State())
	assert.Equal(t, 0, clock.Active(), "nothing is scheduled for a reached countdown")

	select {
	case <-r.Done():
	default:
		t.Fatal("Done should be closed for a reached countdown")
	}
}

func TestRunner_StopCancelsRecurringAction(t *testing.T) {
	clock := NewFakeClock(baseTime)
	r := NewRunner("explainer", 3_600_000, clock)
	r.Start(context.Background())
	require.Equal(t, 1, clock.Active())

	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return r.Snapshot().Remaining() == 3_599_000 }, time.Second, 5*time.Millisecond)

	r.Stop()
	assert.Equal(t, 0, clock.Active())

	clock.Advance(10 * time.Second)
	assert.Equal(t, int64(3_599_000), r.Snapshot().Remaining(), "a stopped runner never ticks again")

	// Idempotent, and Start after Stop does not resurrect it.
	r.Stop()
	r.Start(context.Background())
	assert.Equal(t, 0, clock.Active())
}

func TestRunner_ContextCancellationStops(t *testing.T) {
	clock := NewFakeClock(baseTime)
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner("deadline", 60_000, clock)
	r.Start(ctx)

	cancel()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not finish after cancellation")
	}
	require.Eventually(t, func() bool { return clock.Active() == 0 }, time.Second, 5*time.Millisecond)
	r.Stop()
}

func TestRunner_StopBeforeStart(t *testing.T) {
	r := NewRunner("deadline", 60_000, NewFakeClock(baseTime))
	assert.Nil(t, r.Done())
	r.Stop()
	r.Start(context.Background())
	assert.Equal(t, int64(60_000), r.Snapshot().Remaining())
}

func TestRunner_FullListenerDropsWithoutBlocking(t *testing.T) {
	clock := NewFakeClock(baseTime)
	updates := make(chan Update) // unbuffered and never read
	r := NewRunner("deadline", 10_000, clock, WithListener(updates))
	r.Start(context.Background())
	defer r.Stop()

	clock.Advance(3 * time.Second)
	require.Eventually(t, func() bool { return r.Snapshot().Remaining() == 7_000 }, time.Second, 5*time.Millisecond)
}

func TestRunner_IndependentInstances(t *testing.T) {
	clock := NewFakeClock(baseTime)
	a := NewRunner("a", 5_000, clock)
	b := NewRunner("b", 1_000, clock)
	a.Start(context.Background())
	b.Start(context.Background())
	defer a.Stop()
	defer b.Stop()

	assert.NotEqual(t, a.ID(), b.ID())

	clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		return a.Snapshot().Remaining() == 4_000 && b.Snapshot().Reached()
	}, time.Second, 5*time.Millisecond)
}

func TestRunner_SystemClock(t *testing.T) {
	updates := make(chan Update, 4)
	r := NewRunner("real", 2_000, nil, WithListener(updates), WithInterval(10*time.Millisecond))
	r.Start(context.Background())
	defer r.Stop()

	assert.Equal(t, int64(1_000), recv(t, updates).Countdown.Remaining())
	assert.True(t, recv(t, updates).Countdown.Reached())
}
