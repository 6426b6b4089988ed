// Package debounce implements the keystroke-coalescing update policy used
// to sync rapid edits downstream: triggers within the quiet period
// collapse into a single callback invocation.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuietPeriod matches the settings-form sync interval.
const DefaultQuietPeriod = 500 * time.Millisecond

// Debouncer coalesces bursts of Trigger calls into one fn invocation
// after the quiet period. It must be stopped when its owner goes away so
// no pending timer fires against torn-down state.
type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	fn      func()
	timer   *time.Timer
	stopped bool
}

// New creates a debouncer. A non-positive quiet period falls back to
// DefaultQuietPeriod.
func New(quiet time.Duration, fn func()) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet, fn: fn}
}

// Trigger schedules fn after the quiet period, resetting any pending
// timer so only the last burst member fires.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// Flush runs a pending invocation immediately. Used on explicit submit so
// the downstream state is current before a save.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}

// Stop cancels any pending invocation permanently.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}
