package config

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"dsaposter/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk and publishes
// each successfully parsed result on Updates.
// It watches the file's directory so editors that replace the file on save
// are still picked up.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	store       *Store
	path        string
	dir         string
	pending     time.Time
	debounceDur time.Duration
	updates     chan *Config
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	stopped     bool
	closeOnce   sync.Once
	onReload    []func(*Config)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithReloadHook runs fn on every reloaded config before it is published.
// Callers use it to reapply overrides that do not live in the file.
func WithReloadHook(fn func(*Config)) WatcherOption {
	return func(w *Watcher) {
		if fn != nil {
			w.onReload = append(w.onReload, fn)
		}
	}
}

// NewWatcher creates a Watcher for the config file at path.
func NewWatcher(path string, store *Store, opts ...WatcherOption) (*Watcher, error) {
	if store == nil {
		store = NewStore(nil)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher:     fw,
		store:       store,
		path:        abs,
		dir:         filepath.Dir(abs),
		debounceDur: 300 * time.Millisecond,
		updates:     make(chan *Config, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Updates delivers reloaded configurations. Only the newest pending
// config is kept if the consumer falls behind. The channel is closed by Stop.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return errors.New("config watcher already stopped")
	}
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logging.Get(logging.CategoryConfig).Info("watching config %s", w.path)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for its loop to exit and closes Updates.
// Safe to call more than once and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.stopped = true
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}

	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			logging.Get(logging.CategoryConfig).Error("error closing config watcher: %v", err)
		}
		close(w.updates)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(50 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryConfig).Error("config watcher error: %v", err)

		case <-debounceTicker.C:
			w.processPending()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	logging.Get(logging.CategoryConfig).Debug("config event %s", event.Op)

	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processPending() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	if !w.store.Exists(w.path) {
		// Mid-rename; the following Create reschedules the reload.
		return
	}
	cfg, err := w.store.Load(w.path)
	if err != nil {
		logging.Get(logging.CategoryConfig).Warn("reload failed, keeping previous config: %v", err)
		return
	}
	for _, fn := range w.onReload {
		fn(cfg)
	}
	logging.Get(logging.CategoryConfig).Info("config reloaded (day %d)", cfg.Poster.Day)

	// Replace any undelivered config with the newer one.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
