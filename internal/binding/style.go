package binding

import (
	"strconv"

	"motionify/internal/domain"
)

// Channel is one of the closed set of style channels a binding can drive
type Channel string

const (
	ChannelOpacity    Channel = "opacity"
	ChannelTranslateX Channel = "translateX"
	ChannelTranslateY Channel = "translateY"
	ChannelScale      Channel = "scale"
	ChannelScaleX     Channel = "scaleX"
	ChannelScaleY     Channel = "scaleY"
	ChannelRotate     Channel = "rotate"
	ChannelRotateX    Channel = "rotateX"
	ChannelRotateY    Channel = "rotateY"
	ChannelRotateZ    Channel = "rotateZ"
	ChannelSkewX      Channel = "skewX"
	ChannelSkewY      Channel = "skewY"
)

// Channels lists every channel in evaluation order
var Channels = []Channel{
	ChannelOpacity,
	ChannelTranslateX,
	ChannelTranslateY,
	ChannelScale,
	ChannelScaleX,
	ChannelScaleY,
	ChannelRotate,
	ChannelRotateX,
	ChannelRotateY,
	ChannelRotateZ,
	ChannelSkewX,
	ChannelSkewY,
}

// IsAngle reports whether the channel's value carries an angle unit
func (c Channel) IsAngle() bool {
	switch c {
	case ChannelRotate, ChannelRotateX, ChannelRotateY, ChannelRotateZ, ChannelSkewX, ChannelSkewY:
		return true
	}
	return false
}

// Value is a style channel value: a number plus an optional unit suffix
type Value struct {
	Num  float64
	Unit string
}

// Number makes a unitless value
func Number(n float64) Value {
	return Value{Num: n}
}

// Degrees makes an angle value in degrees
func Degrees(n float64) Value {
	return Value{Num: n, Unit: "deg"}
}

func (v Value) String() string {
	return strconv.FormatFloat(v.Num, 'f', -1, 64) + v.Unit
}

// Override is one (channel, value) entry in an ordered override list
type Override struct {
	Channel Channel
	Value   Value
}

// Style is the declarative output of a binding, one value per driven channel
type Style map[Channel]Value

// Apply folds an ordered override list into the style; later entries win on
// key collision
func (s Style) Apply(overrides []Override) Style {
	for _, o := range overrides {
		s[o.Channel] = o.Value
	}
	return s
}

// DirectionStyleFunc contributes extra overrides from the current direction.
// Must be pure; it is re-evaluated on every signal change.
type DirectionStyleFunc func(domain.Direction) []Override

// OffsetStyleFunc contributes extra overrides from the raw scroll offset.
// Must be pure; it is re-evaluated on every sample.
type OffsetStyleFunc func(offsetY float64) []Override
