package watcher

import (
	"sort"
	"sync"
	"time"
)

// Debouncer coalesces bursts of file events into one callback after a quiet period
type Debouncer interface {
	Trigger(name string)
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	delay    time.Duration
	callback func(names []string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	stopped bool
}

// NewDebouncer creates a Debouncer that calls callback with the sorted names seen during a burst
func NewDebouncer(delay time.Duration, callback func(names []string)) Debouncer {
	return &debouncer{
		delay:    delay,
		callback: callback,
		pending:  make(map[string]struct{}),
	}
}

// Trigger records a change and restarts the quiet period
func (d *debouncer) Trigger(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[name] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, d.flush)
}

// Stop drops pending changes and ignores further triggers
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	clear(d.pending)
}

func (d *debouncer) flush() {
	d.mu.Lock()

	if d.stopped || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}

	names := make([]string, 0, len(d.pending))
	for name := range d.pending {
		names = append(names, name)
	}

	clear(d.pending)
	d.timer = nil
	d.mu.Unlock()

	sort.Strings(names)
	d.callback(names)
}
