package idle

import (
	"sync"
	"time"
)

// DefaultTimeout is the quiet period after which a gesture is considered over
const DefaultTimeout = 200 * time.Millisecond

// Detector arms a one-shot timer on every sample and fires a callback when
// the quiet period elapses without a new sample. Each Touch cancels and
// re-arms the timer (debounce, not throttle). A generation counter
// invalidates fires from timers that were superseded or stopped, so a late
// fire after Stop or Close never reaches the callback.
type Detector struct {
	mu      sync.Mutex
	timeout time.Duration
	timer   *time.Timer
	gen     uint64
	closed  bool
	onIdle  func()
}

// New creates a detector that invokes onIdle from a timer goroutine after
// the quiet period. A timeout <= 0 falls back to DefaultTimeout.
func New(timeout time.Duration, onIdle func()) *Detector {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Detector{timeout: timeout, onIdle: onIdle}
}

// Touch (re)arms the timer. Call on every sample.
func (d *Detector) Touch() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.timeout, func() { d.fire(gen) })
}

// Stop cancels any pending timer without firing. Used when idle support is
// disabled at runtime.
func (d *Detector) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Close cancels any pending timer permanently. Further Touch calls are
// no-ops, so no fire can reach destroyed state.
func (d *Detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.stopLocked()
}

// SetTimeout changes the quiet period for subsequently armed timers
func (d *Detector) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.timeout = timeout
}

func (d *Detector) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *Detector) fire(gen uint64) {
	d.mu.Lock()
	if d.closed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.onIdle()
}
