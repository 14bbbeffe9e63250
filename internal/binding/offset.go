package binding

import (
	"motionify/internal/interpolate"
)

// ChannelSpecs assigns an interpolation spec to style channels. Channels
// without a spec are simply absent from the output style.
type ChannelSpecs map[Channel]*interpolate.Spec

// OffsetBinding maps the raw scroll offset into a style through per-channel
// interpolation specs. Stateless: the style is a pure function of the offset.
type OffsetBinding struct {
	specs     ChannelSpecs
	styleFunc OffsetStyleFunc
}

// NewOffsetBinding builds an offset-based binding. styleFunc may be nil.
func NewOffsetBinding(specs ChannelSpecs, styleFunc OffsetStyleFunc) *OffsetBinding {
	copied := make(ChannelSpecs, len(specs))
	for ch, spec := range specs {
		copied[ch] = spec
	}
	return &OffsetBinding{specs: copied, styleFunc: styleFunc}
}

// Style evaluates every configured channel against the offset. Angle
// channels get a degree suffix unless their spec already carries a unit.
// User overrides are merged last and win on collision.
func (b *OffsetBinding) Style(offsetY float64) Style {
	style := make(Style, len(b.specs))
	for _, ch := range Channels {
		spec, ok := b.specs[ch]
		if !ok {
			continue
		}
		v := Value{Num: spec.Interpolate(offsetY), Unit: spec.Unit()}
		if v.Unit == "" && ch.IsAngle() {
			v.Unit = "deg"
		}
		style[ch] = v
	}
	if b.styleFunc != nil {
		style.Apply(b.styleFunc(offsetY))
	}
	return style
}
