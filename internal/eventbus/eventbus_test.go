package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionify/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	var got atomic.Value
	b.Subscribe(EventDirectionChanged, func(e DomainEvent) {
		got.Store(e)
	})

	b.Publish(DirectionChangedEvent{
		Previous: domain.DirectionIdle,
		Current:  domain.DirectionDown,
		OffsetY:  42,
	})

	require.Eventually(t, func() bool {
		return got.Load() != nil
	}, time.Second, 5*time.Millisecond)

	event, ok := got.Load().(DirectionChangedEvent)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionDown, event.Current)
	assert.Equal(t, 42.0, event.OffsetY)
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	b := New()
	defer b.Close()

	var count atomic.Int32
	b.Subscribe(EventScrollIdle, func(e DomainEvent) {
		count.Add(1)
	})

	b.Publish(DirectionChangedEvent{Current: domain.DirectionUp})
	b.Publish(ScrollIdleEvent{OffsetY: 10})
	b.Publish(ScrollStartedEvent{OffsetY: 0})

	require.Eventually(t, func() bool {
		return count.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var count atomic.Int32
	unsub := b.Subscribe(EventScrollStarted, func(e DomainEvent) {
		count.Add(1)
	})

	b.Publish(ScrollStartedEvent{})
	require.Eventually(t, func() bool {
		return count.Load() == 1
	}, time.Second, 5*time.Millisecond)

	unsub()
	b.Publish(ScrollStartedEvent{})

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestMultipleSubscribersAllNotified(t *testing.T) {
	b := New()
	defer b.Close()

	var a, c atomic.Int32
	b.Subscribe(EventThresholdChanged, func(e DomainEvent) { a.Add(1) })
	b.Subscribe(EventThresholdChanged, func(e DomainEvent) { c.Add(1) })

	b.Publish(ThresholdChangedEvent{Threshold: 12})

	require.Eventually(t, func() bool {
		return a.Load() == 1 && c.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPanickingHandlerDoesNotKillDispatcher(t *testing.T) {
	b := New()
	defer b.Close()

	var count atomic.Int32
	b.Subscribe(EventScrollIdle, func(e DomainEvent) {
		panic("handler bug")
	})
	b.Subscribe(EventScrollIdle, func(e DomainEvent) {
		count.Add(1)
	})

	b.Publish(ScrollIdleEvent{})
	b.Publish(ScrollIdleEvent{})

	require.Eventually(t, func() bool {
		return count.Load() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseDoesNotBlock(t *testing.T) {
	b := New()
	b.Close()

	done := make(chan struct{})
	go func() {
		b.Publish(ScrollStartedEvent{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked after Close")
	}
}
