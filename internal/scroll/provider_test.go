package scroll

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionify/internal/domain"
	"motionify/internal/eventbus"
)

func sample(offset float64) domain.ScrollSample {
	return domain.ScrollSample{OffsetY: offset, ContentHeight: 2000, ViewportHeight: 400}
}

type eventRecorder struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (r *eventRecorder) record(e eventbus.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t domain.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type() == t {
			n++
		}
	}
	return n
}

func newTestProvider(t *testing.T, opts Options) (*Provider, *eventRecorder) {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	rec := &eventRecorder{}
	for _, et := range []domain.EventType{
		eventbus.EventDirectionChanged,
		eventbus.EventScrollStarted,
		eventbus.EventScrollIdle,
		eventbus.EventThresholdChanged,
		eventbus.EventIdleSupportChanged,
		eventbus.EventProviderClosed,
	} {
		bus.Subscribe(et, rec.record)
	}

	p := NewProvider(bus, opts)
	t.Cleanup(p.Close)
	return p, rec
}

func TestFeedAndSnapshot(t *testing.T) {
	p, _ := newTestProvider(t, DefaultOptions())

	require.NoError(t, p.Feed(sample(0)))
	require.NoError(t, p.Feed(sample(120)))

	st, err := p.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 120.0, st.OffsetY)
	assert.Equal(t, domain.DirectionDown, st.Direction)
	assert.True(t, st.IsScrolling)
	assert.Equal(t, DefaultThreshold, st.Threshold)
}

func TestDirectionChangePublishedOncePerTransition(t *testing.T) {
	p, rec := newTestProvider(t, DefaultOptions())

	// Many samples, one transition: idle -> down
	for _, off := range []float64{0, 40, 80, 120, 160, 200} {
		require.NoError(t, p.Feed(sample(off)))
	}

	require.Eventually(t, func() bool {
		return rec.count(eventbus.EventDirectionChanged) == 1
	}, time.Second, 5*time.Millisecond)

	// Reverse past the threshold: exactly one more
	require.NoError(t, p.Feed(sample(150)))
	require.Eventually(t, func() bool {
		return rec.count(eventbus.EventDirectionChanged) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestScrollStartedPublishedOncePerGesture(t *testing.T) {
	p, rec := newTestProvider(t, DefaultOptions())

	for _, off := range []float64{10, 20, 30} {
		require.NoError(t, p.Feed(sample(off)))
	}
	require.Eventually(t, func() bool {
		return rec.count(eventbus.EventScrollStarted) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSetThresholdRejectsNonPositive(t *testing.T) {
	p, rec := newTestProvider(t, DefaultOptions())

	p.SetThreshold(0)
	p.SetThreshold(-5)

	st, err := p.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, DefaultThreshold, st.Threshold)

	p.SetThreshold(20)
	st, err = p.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 20.0, st.Threshold)

	require.Eventually(t, func() bool {
		return rec.count(eventbus.EventThresholdChanged) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestThresholdChangeTakesEffectOnNextSample(t *testing.T) {
	p, _ := newTestProvider(t, DefaultOptions())

	require.NoError(t, p.Feed(sample(0)))
	require.NoError(t, p.Feed(sample(100)))

	// With the default threshold 8 a 5px reverse holds down;
	// lowering to 3 mid-gesture makes the next 5px reverse flip to up
	p.SetThreshold(3)
	require.NoError(t, p.Feed(sample(95)))

	st, err := p.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, domain.DirectionUp, st.Direction)
}

func TestIdleTimeout(t *testing.T) {
	p, rec := newTestProvider(t, Options{
		Threshold:   8,
		SupportIdle: true,
		IdleTimeout: 40 * time.Millisecond,
	})

	require.NoError(t, p.Feed(sample(0)))
	require.NoError(t, p.Feed(sample(100)))

	st, err := p.Snapshot()
	require.NoError(t, err)
	require.Equal(t, domain.DirectionDown, st.Direction)

	require.Eventually(t, func() bool {
		st, err := p.Snapshot()
		return err == nil && st.Direction == domain.DirectionIdle && !st.IsScrolling
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return rec.count(eventbus.EventScrollIdle) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestIdleDisabledNeverFires(t *testing.T) {
	p, rec := newTestProvider(t, Options{
		Threshold:   8,
		SupportIdle: false,
		IdleTimeout: 30 * time.Millisecond,
	})

	require.NoError(t, p.Feed(sample(0)))
	require.NoError(t, p.Feed(sample(100)))

	time.Sleep(120 * time.Millisecond)
	st, err := p.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, domain.DirectionDown, st.Direction)
	assert.True(t, st.IsScrolling)
	assert.Equal(t, 0, rec.count(eventbus.EventScrollIdle))
}

func TestDisablingIdleCancelsPendingTimerWithoutStateChange(t *testing.T) {
	p, rec := newTestProvider(t, Options{
		Threshold:   8,
		SupportIdle: true,
		IdleTimeout: 50 * time.Millisecond,
	})

	require.NoError(t, p.Feed(sample(0)))
	require.NoError(t, p.Feed(sample(100)))

	p.SetSupportIdle(false)

	time.Sleep(150 * time.Millisecond)
	st, err := p.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, domain.DirectionDown, st.Direction)
	assert.True(t, st.IsScrolling)
	assert.Equal(t, 0, rec.count(eventbus.EventScrollIdle))
}

func TestCloseTearsDownScope(t *testing.T) {
	p, _ := newTestProvider(t, Options{
		Threshold:   8,
		SupportIdle: true,
		IdleTimeout: 30 * time.Millisecond,
	})

	require.NoError(t, p.Feed(sample(0)))
	require.NoError(t, p.Feed(sample(100)))
	p.Close()

	_, err := p.Snapshot()
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, p.Feed(sample(200)), ErrNotInitialized)

	// Pending idle timer must not fire against destroyed state
	time.Sleep(100 * time.Millisecond)
}

func TestMultipleScopesCoexist(t *testing.T) {
	p1, _ := newTestProvider(t, Options{Threshold: 8})
	p2, _ := newTestProvider(t, Options{Threshold: 100})

	require.NoError(t, p1.Feed(sample(0)))
	require.NoError(t, p1.Feed(sample(500)))
	require.NoError(t, p1.Feed(sample(480)))

	require.NoError(t, p2.Feed(sample(0)))
	require.NoError(t, p2.Feed(sample(500)))
	require.NoError(t, p2.Feed(sample(480)))

	st1, err := p1.Snapshot()
	require.NoError(t, err)
	st2, err := p2.Snapshot()
	require.NoError(t, err)

	// 20px reverse: past p1's threshold, inside p2's hysteresis band
	assert.Equal(t, domain.DirectionUp, st1.Direction)
	assert.Equal(t, domain.DirectionDown, st2.Direction)
}

func TestDefaultOptionsFillIn(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	p := NewProvider(bus, Options{Threshold: -1})
	t.Cleanup(p.Close)

	st, err := p.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, DefaultThreshold, st.Threshold)
	assert.False(t, st.SupportIdle)
	assert.Equal(t, domain.DirectionIdle, st.Direction)
}
