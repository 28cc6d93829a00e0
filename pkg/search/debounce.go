package search

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid query edits into one stabilized value. It is a
// two-state machine: idle (no timer) and pending (timer armed). Every input
// while pending restarts the quiet-period clock, so a typing burst faster
// than the quiet period emits exactly once, with the last value typed.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
	gen   uint64
	emit  func(string)
}

// NewDebouncer returns an idle debouncer. emit runs on the timer goroutine
// once per quiet period; receivers serialize against their own state.
func NewDebouncer(quiet time.Duration, emit func(string)) *Debouncer {
	if quiet <= 0 {
		quiet = 250 * time.Millisecond
	}
	return &Debouncer{quiet: quiet, emit: emit}
}

// Input records a new raw value and restarts the quiet period.
func (d *Debouncer) Input(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	// Stop can lose the race with an already-running callback, so each
	// arm gets a generation and stale callbacks check it and bail.
	d.gen++
	gen := d.gen

	d.timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		if d.gen != gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.emit(raw)
	})
}

// Cancel drops any pending emission and returns to idle.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a quiet period is currently running.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
