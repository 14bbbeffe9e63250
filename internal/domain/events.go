package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectionChanged   EventType = "DirectionChanged"
	EventScrollStarted      EventType = "ScrollStarted"
	EventScrollIdle         EventType = "ScrollIdle"
	EventThresholdChanged   EventType = "ThresholdChanged"
	EventIdleSupportChanged EventType = "IdleSupportChanged"
	EventProviderClosed     EventType = "ProviderClosed"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectionChangedEvent is emitted when the classified direction changes.
// It fires once per transition, never per sample.
type DirectionChangedEvent struct {
	Previous Direction
	Current  Direction
	OffsetY  float64
}

func (e DirectionChangedEvent) Type() EventType { return EventDirectionChanged }

// ScrollStartedEvent is emitted on the first sample of a new gesture
type ScrollStartedEvent struct {
	OffsetY float64
}

func (e ScrollStartedEvent) Type() EventType { return EventScrollStarted }

// ScrollIdleEvent is emitted when the idle timeout fires with idle support on
type ScrollIdleEvent struct {
	OffsetY float64
}

func (e ScrollIdleEvent) Type() EventType { return EventScrollIdle }

// ThresholdChangedEvent is emitted when a new threshold is accepted
type ThresholdChangedEvent struct {
	Threshold float64
}

func (e ThresholdChangedEvent) Type() EventType { return EventThresholdChanged }

// IdleSupportChangedEvent is emitted when idle support is toggled
type IdleSupportChangedEvent struct {
	Enabled bool
}

func (e IdleSupportChangedEvent) Type() EventType { return EventIdleSupportChanged }

// ProviderClosedEvent is emitted when a provider scope is torn down
type ProviderClosedEvent struct{}

func (e ProviderClosedEvent) Type() EventType { return EventProviderClosed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
