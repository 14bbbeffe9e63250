package scroll

import (
	"errors"
	"sync"
	"time"

	"motionify/internal/classifier"
	"motionify/internal/domain"
	"motionify/internal/eventbus"
	"motionify/internal/idle"
)

// ErrNotInitialized is returned when the shared scroll state is accessed
// outside an initialized provider scope.
var ErrNotInitialized = errors.New("scroll: provider not initialized")

// DefaultThreshold is the minimum cumulative reverse movement (pixels)
// required to flip classification to up.
const DefaultThreshold = 8.0

// Options configures a provider scope
type Options struct {
	Threshold   float64
	SupportIdle bool
	IdleTimeout time.Duration
}

// DefaultOptions returns the standard configuration
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		SupportIdle: false,
		IdleTimeout: idle.DefaultTimeout,
	}
}

// Provider owns one scope of shared scroll state. Feed is the high-frequency
// write path and Snapshot the per-frame read path; discrete transitions go
// out on the event bus. Multiple independent providers can coexist.
type Provider struct {
	mu     sync.RWMutex
	cls    *classifier.Classifier
	idle   *idle.Detector
	bus    eventbus.EventBus
	closed bool

	offsetY     float64
	threshold   float64
	supportIdle bool
}

// NewProvider establishes a provider scope. The bus may be shared with other
// providers; events carry no scope identity, so callers that run several
// scopes typically give each its own bus.
func NewProvider(bus eventbus.EventBus, opts Options) *Provider {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	p := &Provider{
		cls:         classifier.New(),
		bus:         bus,
		threshold:   opts.Threshold,
		supportIdle: opts.SupportIdle,
	}
	p.idle = idle.New(opts.IdleTimeout, p.onIdleTimeout)
	return p
}

// Feed consumes one scroll sample. It runs synchronously on the caller's
// goroutine; the only cross-context hand-off is the bus publish, which fires
// on transitions, never per sample.
func (p *Provider) Feed(sample domain.ScrollSample) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrNotInitialized
	}

	res := p.cls.Classify(sample, p.threshold)
	p.offsetY = res.OffsetY
	supportIdle := p.supportIdle
	p.mu.Unlock()

	if supportIdle {
		p.idle.Touch()
	}
	if res.GestureStarted {
		p.bus.Publish(eventbus.ScrollStartedEvent{OffsetY: res.OffsetY})
	}
	if res.Changed {
		p.bus.Publish(eventbus.DirectionChangedEvent{
			Previous: res.Previous,
			Current:  res.Direction,
			OffsetY:  res.OffsetY,
		})
	}
	return nil
}

// Snapshot returns the current scroll state. Cheap enough to call per frame.
func (p *Provider) Snapshot() (domain.ScrollState, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return domain.ScrollState{}, ErrNotInitialized
	}
	return domain.ScrollState{
		OffsetY:     p.offsetY,
		Direction:   p.cls.Direction(),
		IsScrolling: p.cls.IsScrolling(),
		Threshold:   p.threshold,
		SupportIdle: p.supportIdle,
	}, nil
}

// SetThreshold updates the hysteresis threshold. Values <= 0 are ignored
// (defined no-op, prior value retained). Takes effect on the next sample.
func (p *Provider) SetThreshold(value float64) {
	if value <= 0 {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.threshold = value
	p.mu.Unlock()

	p.bus.Publish(eventbus.ThresholdChangedEvent{Threshold: value})
}

// SetSupportIdle toggles idle classification. Disabling cancels any pending
// idle timer without forcing a state change.
func (p *Provider) SetSupportIdle(enabled bool) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	changed := p.supportIdle != enabled
	p.supportIdle = enabled
	p.mu.Unlock()

	if !enabled {
		p.idle.Stop()
	}
	if changed {
		p.bus.Publish(eventbus.IdleSupportChangedEvent{Enabled: enabled})
	}
}

// Close tears down the scope. The idle timer is cancelled so no fire can
// mutate destroyed state; subsequent calls return ErrNotInitialized.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.idle.Close()
	p.bus.Publish(eventbus.ProviderClosedEvent{})
}

// onIdleTimeout runs on the timer goroutine after the quiet period
func (p *Provider) onIdleTimeout() {
	p.mu.Lock()
	if p.closed || !p.supportIdle {
		p.mu.Unlock()
		return
	}
	prev := p.cls.Direction()
	changed := p.cls.ForceIdle()
	offset := p.offsetY
	p.mu.Unlock()

	p.bus.Publish(eventbus.ScrollIdleEvent{OffsetY: offset})
	if changed {
		p.bus.Publish(eventbus.DirectionChangedEvent{
			Previous: prev,
			Current:  domain.DirectionIdle,
			OffsetY:  offset,
		})
	}
}
