package poster

import (
	"sync"

	"dsaposter/internal/logging"

	"github.com/atotto/clipboard"
)

// Copier writes text to the system clipboard, best effort.
type Copier struct {
	write func(string) error
}

// NewCopier returns a Copier backed by the system clipboard.
func NewCopier() *Copier {
	return &Copier{write: clipboard.WriteAll}
}

// NewCopierWith returns a Copier using write, mainly for tests and headless runs.
func NewCopierWith(write func(string) error) *Copier {
	return &Copier{write: write}
}

// Copy attempts one clipboard write and reports success. Failures are
// absorbed: nothing is surfaced to the user and nothing is retried.
func (c *Copier) Copy(text string) bool {
	if c == nil || c.write == nil {
		return false
	}
	if err := c.write(text); err != nil {
		logging.Get(logging.CategoryClipboard).Debug("copy failed: %v", err)
		return false
	}
	logging.Get(logging.CategoryClipboard).Debug("copied %d bytes", len(text))
	return true
}

// Ack is the transient "copied" acknowledgement on the share button.
// Every Mark starts a new generation; Revert only clears the generation it
// was scheduled for, so an older revert cannot cut a newer ack short.
type Ack struct {
	mu     sync.Mutex
	copied bool
	gen    uint64
}

// Mark shows the acknowledgement and returns its generation.
func (a *Ack) Mark() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.copied = true
	return a.gen
}

// Revert hides the acknowledgement if gen is still current.
func (a *Ack) Revert(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen == a.gen {
		a.copied = false
	}
}

// Copied reports whether the acknowledgement is showing.
func (a *Ack) Copied() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.copied
}

// ButtonLabel is the label of the share button.
func (a *Ack) ButtonLabel() string {
	if a.Copied() {
		return LabelCopied
	}
	return LabelShare
}
