package countdown

import (
	"context"
	"sync"
	"time"

	"dsaposter/internal/config"
	"dsaposter/internal/logging"

	"github.com/google/uuid"
)

// Update is published to a Runner's listener after every tick.
type Update struct {
	ID        string
	Label     string
	Countdown Countdown
}

// Option configures a Runner.
type Option func(*Runner)

// WithListener makes the runner publish an Update after every tick.
// Sends never block: when ch is full the update is dropped and Snapshot
// remains the source of truth.
func WithListener(ch chan<- Update) Option {
	return func(r *Runner) { r.listener = ch }
}

// WithInterval overrides the wall-clock tick interval (default one second).
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// Runner owns one countdown and the recurring action that ticks it.
type Runner struct {
	id       string
	label    string
	clock    Clock
	interval time.Duration
	listener chan<- Update

	mu      sync.Mutex
	cd      Countdown
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRunner creates a runner for a countdown starting at initialMs.
// Nothing is scheduled until Start.
func NewRunner(label string, initialMs int64, clock Clock, opts ...Option) *Runner {
	if clock == nil {
		clock = SystemClock
	}
	r := &Runner{
		id:       uuid.NewString(),
		label:    label,
		clock:    clock,
		interval: time.Second,
		cd:       New(initialMs),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewForTarget creates a runner counting down to target today, resolved
// against the clock at creation time.
func NewForTarget(label string, target config.TimeOfDay, clock Clock, opts ...Option) *Runner {
	if clock == nil {
		clock = SystemClock
	}
	return NewRunner(label, MillisecondsUntil(target, clock.Now()), clock, opts...)
}

// ID returns the runner's unique id.
func (r *Runner) ID() string { return r.id }

// Label returns the runner's display label.
func (r *Runner) Label() string { return r.label }

// Snapshot returns the current countdown.
func (r *Runner) Snapshot() Countdown {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cd
}

// Start schedules the recurring tick. It is non-blocking and a no-op when
// already started, already stopped, or already reached.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	if r.started || r.stopped {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.done = make(chan struct{})
	if r.cd.Reached() {
		close(r.done)
		r.cancel = func() {}
		r.mu.Unlock()
		logging.Get(logging.CategoryCountdown).Debug("%s: already reached, nothing scheduled", r.label)
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	ticker := r.clock.NewTicker(r.interval)
	r.mu.Unlock()

	logging.Get(logging.CategoryCountdown).Debug("%s: started with %dms remaining", r.label, r.Snapshot().Remaining())
	go r.run(ctx, ticker)
}

// Done is closed once the runner has finished: reached, stopped, or its
// context was cancelled. It is nil before Start.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Stop cancels the recurring tick and waits for it to finish.
// Safe to call more than once and before Start.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	if !r.started {
		r.mu.Unlock()
		return
	}
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	cancel()
	<-done
	logging.Get(logging.CategoryCountdown).Debug("%s: stopped", r.label)
}

func (r *Runner) run(ctx context.Context, ticker Ticker) {
	defer close(r.done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			cd := r.tick()
			r.publish(cd)
			if cd.Reached() {
				logging.Get(logging.CategoryCountdown).Info("%s: reached", r.label)
				logging.Activity(logging.ActivityReached, "runner", r.id, "label", r.label)
				return
			}
		}
	}
}

func (r *Runner) tick() Countdown {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cd = r.cd.Tick()
	return r.cd
}

func (r *Runner) publish(cd Countdown) {
	if r.listener == nil {
		return
	}
	select {
	case r.listener <- Update{ID: r.id, Label: r.label, Countdown: cd}:
	default:
		logging.Get(logging.CategoryCountdown).Debug("%s: listener full, update dropped", r.label)
	}
}
