// Package debounce coalesces bursts of calls into a single invocation
// after a quiet period, for shaping keystroke-driven request traffic.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must stay idle before the pending
// function fires.
const DefaultQuietPeriod = 400 * time.Millisecond

// Debouncer runs at most one pending function; a newer Call supersedes
// the one still waiting. Safe for concurrent use.
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New returns a Debouncer with the given quiet period. A non-positive
// period falls back to DefaultQuietPeriod.
func New(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Call schedules fn to run after the quiet period. If a call is already
// pending it is dropped; only the latest fn fires.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels any pending call. A function already started is not
// interrupted.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
