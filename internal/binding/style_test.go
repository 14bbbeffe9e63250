package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyLaterEntriesWin(t *testing.T) {
	style := Style{ChannelOpacity: Number(1)}

	style.Apply([]Override{
		{Channel: ChannelOpacity, Value: Number(0.5)},
		{Channel: ChannelScale, Value: Number(0.9)},
		{Channel: ChannelOpacity, Value: Number(0.2)},
	})

	assert.Equal(t, 0.2, style[ChannelOpacity].Num)
	assert.Equal(t, 0.9, style[ChannelScale].Num)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "45deg", Degrees(45).String())
	assert.Equal(t, "-12.5deg", Degrees(-12.5).String())
}

func TestAngleChannels(t *testing.T) {
	assert.True(t, ChannelRotate.IsAngle())
	assert.True(t, ChannelSkewX.IsAngle())
	assert.False(t, ChannelOpacity.IsAngle())
	assert.False(t, ChannelTranslateY.IsAngle())
}

func TestChannelSetIsClosed(t *testing.T) {
	assert.Len(t, Channels, 12)
}
