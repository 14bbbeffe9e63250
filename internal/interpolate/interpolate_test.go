package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsAreExact(t *testing.T) {
	for _, mode := range []Extrapolation{ExtrapolateClamp, ExtrapolateExtend, ExtrapolateIdentity} {
		spec, err := NewSpec([]float64{0, 100}, []float64{0.1, 0.3}, mode)
		require.NoError(t, err)

		assert.Equal(t, 0.1, spec.Interpolate(0), "mode %s", mode)
		assert.Equal(t, 0.3, spec.Interpolate(100), "mode %s", mode)
	}
}

func TestMidpointInterpolation(t *testing.T) {
	spec, err := NewSpec([]float64{0, 100}, []float64{0, 50}, ExtrapolateClamp)
	require.NoError(t, err)

	assert.InDelta(t, 25.0, spec.Interpolate(50), 1e-9)
}

func TestClampBelowRange(t *testing.T) {
	spec, err := NewSpec([]float64{0, 100}, []float64{0, 50}, ExtrapolateClamp)
	require.NoError(t, err)

	assert.Equal(t, 0.0, spec.Interpolate(-10))
}

func TestClampAboveRange(t *testing.T) {
	spec, err := NewSpec([]float64{0, 100}, []float64{0, 50}, ExtrapolateClamp)
	require.NoError(t, err)

	assert.Equal(t, 50.0, spec.Interpolate(150))
}

func TestExtendContinuesLinearly(t *testing.T) {
	spec, err := NewSpec([]float64{0, 100}, []float64{0, 50}, ExtrapolateExtend)
	require.NoError(t, err)

	assert.InDelta(t, 75.0, spec.Interpolate(150), 1e-9)
	assert.InDelta(t, -5.0, spec.Interpolate(-10), 1e-9)
}

func TestIdentityReturnsInputOutsideRange(t *testing.T) {
	spec, err := NewSpec([]float64{0, 100}, []float64{0, 50}, ExtrapolateIdentity)
	require.NoError(t, err)

	assert.Equal(t, 150.0, spec.Interpolate(150))
	assert.Equal(t, -10.0, spec.Interpolate(-10))
	// Inside the range it interpolates normally
	assert.InDelta(t, 25.0, spec.Interpolate(50), 1e-9)
}

func TestPiecewiseBracketing(t *testing.T) {
	spec, err := NewSpec([]float64{0, 100, 200}, []float64{0, 50, 0}, ExtrapolateClamp)
	require.NoError(t, err)

	assert.InDelta(t, 25.0, spec.Interpolate(50), 1e-9)
	assert.Equal(t, 50.0, spec.Interpolate(100))
	assert.InDelta(t, 25.0, spec.Interpolate(150), 1e-9)
	assert.Equal(t, 0.0, spec.Interpolate(200))
}

func TestDecreasingOutputClamps(t *testing.T) {
	// Output falls across the boundary segment; clamp respects the
	// segment's min/max, not its order
	spec, err := NewSpec([]float64{0, 100}, []float64{50, 0}, ExtrapolateClamp)
	require.NoError(t, err)

	assert.Equal(t, 0.0, spec.Interpolate(150))
	assert.Equal(t, 50.0, spec.Interpolate(-10))
}

func TestIdempotence(t *testing.T) {
	spec, err := NewSpec([]float64{0, 100, 300}, []float64{1, 0.5, 0}, ExtrapolateExtend)
	require.NoError(t, err)

	for _, in := range []float64{-50, 0, 42.5, 100, 250, 300, 1000} {
		assert.Equal(t, spec.Interpolate(in), spec.Interpolate(in))
	}
}

func TestAngleSpec(t *testing.T) {
	spec, err := NewAngleSpec([]float64{0, 100}, []string{"0deg", "90deg"}, ExtrapolateClamp)
	require.NoError(t, err)

	assert.Equal(t, "deg", spec.Unit())
	assert.InDelta(t, 45.0, spec.Interpolate(50), 1e-9)
	assert.Equal(t, "45deg", spec.InterpolateString(50))
}

func TestAngleSpecRadians(t *testing.T) {
	spec, err := NewAngleSpec([]float64{0, 1}, []string{"0rad", "3.14rad"}, ExtrapolateClamp)
	require.NoError(t, err)
	assert.Equal(t, "rad", spec.Unit())
}

func TestAngleSpecErrors(t *testing.T) {
	_, err := NewAngleSpec([]float64{0, 100}, []string{"0deg", "1rad"}, ExtrapolateClamp)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewAngleSpec([]float64{0, 100}, []string{"0", "90"}, ExtrapolateClamp)
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewAngleSpec([]float64{0, 100}, []string{"xdeg", "90deg"}, ExtrapolateClamp)
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidation(t *testing.T) {
	var cfgErr *ConfigurationError

	_, err := NewSpec([]float64{0}, []float64{0}, ExtrapolateClamp)
	require.ErrorAs(t, err, &cfgErr, "fewer than 2 breakpoints")

	_, err = NewSpec([]float64{0, 100}, []float64{0, 50, 100}, ExtrapolateClamp)
	require.ErrorAs(t, err, &cfgErr, "mismatched lengths")

	_, err = NewSpec([]float64{0, 100, 100}, []float64{0, 50, 100}, ExtrapolateClamp)
	require.ErrorAs(t, err, &cfgErr, "non-increasing input range")

	_, err = NewSpec([]float64{100, 0}, []float64{0, 50}, ExtrapolateClamp)
	require.ErrorAs(t, err, &cfgErr, "descending input range")

	_, err = NewSpec([]float64{0, 100}, []float64{0, 50}, Extrapolation("bounce"))
	require.ErrorAs(t, err, &cfgErr, "unknown extrapolation")
}
