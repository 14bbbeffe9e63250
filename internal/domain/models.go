package domain

// Direction classifies the current scroll gesture
type Direction string

const (
	DirectionIdle Direction = "idle"
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ScrollSample is one scroll-position update from the host scrollable view
type ScrollSample struct {
	OffsetY        float64
	ContentHeight  float64
	ViewportHeight float64
}

// MaxOffset returns the largest valid scroll offset for this sample
func (s ScrollSample) MaxOffset() float64 {
	max := s.ContentHeight - s.ViewportHeight
	if max < 0 {
		return 0
	}
	return max
}

// ClampOffset returns OffsetY clamped to [0, MaxOffset]
func (s ScrollSample) ClampOffset() float64 {
	off := s.OffsetY
	if off < 0 {
		return 0
	}
	if max := s.MaxOffset(); off > max {
		return max
	}
	return off
}

// ScrollState is a snapshot of the shared scroll state at one instant
type ScrollState struct {
	OffsetY     float64
	Direction   Direction
	IsScrolling bool
	Threshold   float64
	SupportIdle bool
}

// TranslateRange is the visible/hidden pair of translation offsets
// used by direction-based bindings
type TranslateRange struct {
	From float64 // visible position
	To   float64 // hidden position
}
