// Package debounce coalesces bursts of triggers into one delayed action.
//
// A Debouncer owns at most one pending timer. Every Trigger cancels the
// pending timer and starts a new one, so the action runs once, Delay after
// the last trigger of a burst.
package debounce

import (
	"sync"
	"time"

	"github.com/gogpu/ggchart"
)

// DefaultDelay is the quiet period used when no delay is configured.
const DefaultDelay = 250 * time.Millisecond

// Debouncer delays an action until triggers stop arriving.
//
// The action runs on its own goroutine, never concurrently with itself
// from the same Debouncer's timer.
type Debouncer struct {
	delay  time.Duration
	name   string
	action func()

	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
	triggers uint64
	fires    uint64
	running  sync.Mutex
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithDelay sets the quiet period. Non-positive values keep DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(db *Debouncer) {
		if d > 0 {
			db.delay = d
		}
	}
}

// WithName sets the name used in log records.
func WithName(name string) Option {
	return func(db *Debouncer) {
		db.name = name
	}
}

// New creates a Debouncer for action.
func New(action func(), opts ...Option) *Debouncer {
	d := &Debouncer{
		delay:  DefaultDelay,
		name:   "debounce",
		action: action,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger cancels any pending action and schedules a new one.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	d.triggers++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// fire runs the action if no trigger or stop happened since seq was issued.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.fires++
	d.mu.Unlock()

	d.run()
}

func (d *Debouncer) run() {
	d.running.Lock()
	defer d.running.Unlock()
	defer func() {
		if r := recover(); r != nil {
			ggchart.Logger().Error("debounce: action panicked", "name", d.name, "panic", r)
		}
	}()
	ggchart.Logger().Debug("debounce: firing", "name", d.name)
	d.action()
}

// Stop cancels the pending action and reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.seq++
	return true
}

// Flush runs the pending action immediately on the calling goroutine and
// reports whether one was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.seq++
	d.fires++
	d.mu.Unlock()

	d.run()
	return true
}

// Pending reports whether an action is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stats returns the number of triggers received and actions run.
func (d *Debouncer) Stats() (triggers, fires uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.triggers, d.fires
}
