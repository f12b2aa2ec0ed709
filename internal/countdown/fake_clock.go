package countdown

import (
	"sync"
	"time"
)

// FakeClock is a manually driven Clock for tests.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*FakeTicker
}

// NewFakeClock returns a FakeClock frozen at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NewTicker registers a ticker fired by Advance.
func (c *FakeClock) NewTicker(d time.Duration) Ticker {
	t := &FakeTicker{
		c:        make(chan time.Time),
		stopped:  make(chan struct{}),
		interval: d,
	}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

// Advance moves the clock forward and fires every live ticker once per
// elapsed interval. Each tick blocks until the ticker's owner receives it
// or stops the ticker.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	tickers := make([]*FakeTicker, len(c.tickers))
	copy(tickers, c.tickers)
	c.mu.Unlock()

	for _, t := range tickers {
		t.fire(d, now)
	}
}

// Active returns how many tickers have not been stopped.
func (c *FakeClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if !t.Stopped() {
			n++
		}
	}
	return n
}

// FakeTicker is the Ticker handed out by FakeClock.
type FakeTicker struct {
	c        chan time.Time
	stopped  chan struct{}
	once     sync.Once
	interval time.Duration
	elapsed  time.Duration
}

func (t *FakeTicker) C() <-chan time.Time { return t.c }

func (t *FakeTicker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

// Stopped reports whether Stop has been called.
func (t *FakeTicker) Stopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}

func (t *FakeTicker) fire(d time.Duration, now time.Time) {
	if t.interval <= 0 {
		return
	}
	t.elapsed += d
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		select {
		case t.c <- now:
		case <-t.stopped:
			return
		}
	}
}
