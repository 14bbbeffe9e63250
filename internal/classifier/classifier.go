package classifier

import (
	"motionify/internal/domain"
)

// anchor is the classifier's private accumulation window. gestureStart is
// reset at every reversal so the threshold measures movement since the last
// turning point, not since the gesture began.
type anchor struct {
	previousOffsetY     float64
	gestureStartOffsetY float64
}

// Result describes the outcome of classifying one sample
type Result struct {
	Direction      domain.Direction
	Previous       domain.Direction
	Changed        bool
	GestureStarted bool
	OffsetY        float64
}

// Classifier converts a noisy stream of scroll offsets into a stable
// direction signal with an asymmetric hysteresis band: any downward
// accumulation reports down immediately, while flipping to up requires the
// cumulative reverse movement to exceed the threshold.
type Classifier struct {
	anchor      anchor
	direction   domain.Direction
	isScrolling bool
}

// New creates a classifier in the idle state
func New() *Classifier {
	return &Classifier{direction: domain.DirectionIdle}
}

// Direction returns the current classification
func (c *Classifier) Direction() domain.Direction {
	return c.direction
}

// IsScrolling reports whether a gesture is in progress
func (c *Classifier) IsScrolling() bool {
	return c.isScrolling
}

// Classify consumes one sample and returns the resulting classification.
// threshold is the minimum cumulative reverse movement (pixels) required to
// flip to up; values <= 0 mean any upward movement triggers up.
func (c *Classifier) Classify(sample domain.ScrollSample, threshold float64) Result {
	offset := sample.ClampOffset()
	delta := offset - c.anchor.previousOffsetY

	started := false
	if !c.isScrolling {
		c.anchor.gestureStartOffsetY = offset
		c.isScrolling = true
		started = true
	}

	totalDelta := offset - c.anchor.gestureStartOffsetY

	// A reversal restarts the accumulation window from the turning point,
	// which is the previous offset, so this sample's delta already counts
	// toward the threshold
	if (totalDelta > 0 && delta < 0) || (totalDelta < 0 && delta > 0) || (totalDelta == 0 && delta != 0) {
		c.anchor.gestureStartOffsetY = c.anchor.previousOffsetY
		totalDelta = offset - c.anchor.gestureStartOffsetY
	}

	prev := c.direction
	switch {
	case totalDelta > 0:
		c.direction = domain.DirectionDown
	case totalDelta < -threshold:
		c.direction = domain.DirectionUp
	}
	// Otherwise the direction holds: this is the hysteresis band

	c.anchor.previousOffsetY = offset

	return Result{
		Direction:      c.direction,
		Previous:       prev,
		Changed:        c.direction != prev,
		GestureStarted: started,
		OffsetY:        offset,
	}
}

// Reset clears the gesture state so the next sample starts a fresh gesture.
// The idle detector calls this when the quiet period elapses.
func (c *Classifier) Reset() {
	c.isScrolling = false
	c.anchor.gestureStartOffsetY = c.anchor.previousOffsetY
}

// ForceIdle resets the gesture and reports idle. Used when idle support is
// enabled and the quiet period elapses.
func (c *Classifier) ForceIdle() (changed bool) {
	c.Reset()
	if c.direction != domain.DirectionIdle {
		c.direction = domain.DirectionIdle
		return true
	}
	return false
}
