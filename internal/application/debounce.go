package application

import (
	"sync"
	"time"
)

// debouncer coalesces a burst of triggers into a single committed call.
// Every Trigger cancels the previously armed timer, so only the function
// passed to the last Trigger inside a quiet window runs.
type debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	if d.delay <= 0 {
		d.timer = nil
		fn()
		return
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending trigger without running it.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
