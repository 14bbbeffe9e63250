package binding

// Easing maps transition progress in [0,1] to eased progress in [0,1]
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 {
	return t
}

// EaseInOutCubic is the default easing for timed transitions
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// EaseOutCubic decelerates toward the end of the transition
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return 1 + u*u*u
}
