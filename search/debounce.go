package search

import (
	"sync"
	"time"
)

// Debouncer runs a function on the trailing edge of a burst of triggers.
// Each Trigger replaces any pending run, so only the newest callback fires
// once the delay has passed without further input. Used to coalesce
// trending-search flushes; also the contract behind the frontend's
// "last keystroke wins" suggestion behavior.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the configured delay, superseding any
// previously scheduled function that has not fired yet.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any pending run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
