package ui

import (
	"time"

	"motionify/internal/eventbus"
)

// EventMsg wraps a domain event for the UI. Main subscribes to the bus and
// forwards discrete transitions here; per-sample traffic never goes this way.
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg drives the animation frame loop
type tickMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
