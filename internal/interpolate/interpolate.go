package interpolate

import (
	"fmt"
	"strconv"
	"strings"
)

// Extrapolation is the policy for inputs outside the defined input range
type Extrapolation string

const (
	// ExtrapolateClamp pins the output to the boundary segment's bounds
	ExtrapolateClamp Extrapolation = "clamp"
	// ExtrapolateExtend continues the boundary segment linearly
	ExtrapolateExtend Extrapolation = "extend"
	// ExtrapolateIdentity returns the input unmodified
	ExtrapolateIdentity Extrapolation = "identity"
)

// ConfigurationError reports an invalid interpolation spec. Bad specs never
// silently degrade.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "interpolate: " + e.Reason
}

// Spec is an immutable piecewise-linear mapping from an input range to an
// output range. Outputs may carry a unit suffix (angle outputs like "45deg"),
// in which case the numeric magnitude is interpolated and the unit
// re-appended by InterpolateString.
type Spec struct {
	inputRange  []float64
	outputRange []float64
	unit        string
	extrapolate Extrapolation
}

// NewSpec validates and builds a numeric interpolation spec. The input range
// must be strictly increasing with at least two breakpoints, and the output
// range must have the same length.
func NewSpec(inputRange, outputRange []float64, extrapolate Extrapolation) (*Spec, error) {
	if err := validate(inputRange, len(outputRange), extrapolate); err != nil {
		return nil, err
	}
	return &Spec{
		inputRange:  append([]float64(nil), inputRange...),
		outputRange: append([]float64(nil), outputRange...),
		extrapolate: extrapolate,
	}, nil
}

// NewAngleSpec builds a spec whose outputs are angle strings such as "0deg"
// or "1.5rad". All outputs must carry the same unit.
func NewAngleSpec(inputRange []float64, outputRange []string, extrapolate Extrapolation) (*Spec, error) {
	if err := validate(inputRange, len(outputRange), extrapolate); err != nil {
		return nil, err
	}
	numbers := make([]float64, len(outputRange))
	unit := ""
	for i, raw := range outputRange {
		n, u, err := parseAngle(raw)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			unit = u
		} else if u != unit {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("mixed angle units %q and %q", unit, u)}
		}
		numbers[i] = n
	}
	return &Spec{
		inputRange:  append([]float64(nil), inputRange...),
		outputRange: numbers,
		unit:        unit,
		extrapolate: extrapolate,
	}, nil
}

// Unit returns the output unit suffix, "" for plain numeric specs
func (s *Spec) Unit() string {
	return s.unit
}

// Interpolate maps input through the spec. Pure: identical input always
// yields identical output.
func (s *Spec) Interpolate(input float64) float64 {
	last := len(s.inputRange) - 1

	if s.extrapolate == ExtrapolateIdentity &&
		(input < s.inputRange[0] || input > s.inputRange[last]) {
		return input
	}

	// Bracketing segment; out-of-range inputs use the boundary segment
	i := 0
	for i < last-1 && input > s.inputRange[i+1] {
		i++
	}

	in0, in1 := s.inputRange[i], s.inputRange[i+1]
	out0, out1 := s.outputRange[i], s.outputRange[i+1]

	// Degenerate zero-width segment is defined behavior, not an error
	progress := 0.0
	if in1 != in0 {
		progress = (input - in0) / (in1 - in0)
	}

	// Exact at breakpoints; the lerp form can drift in the last ulp
	var raw float64
	switch progress {
	case 0:
		raw = out0
	case 1:
		raw = out1
	default:
		raw = out0 + progress*(out1-out0)
	}

	if s.extrapolate == ExtrapolateClamp &&
		(input < s.inputRange[0] || input > s.inputRange[last]) {
		lo, hi := out0, out1
		if lo > hi {
			lo, hi = hi, lo
		}
		if raw < lo {
			raw = lo
		}
		if raw > hi {
			raw = hi
		}
	}
	return raw
}

// InterpolateString maps input through the spec and re-appends the unit
// suffix for angle specs
func (s *Spec) InterpolateString(input float64) string {
	return strconv.FormatFloat(s.Interpolate(input), 'f', -1, 64) + s.unit
}

func validate(inputRange []float64, outputLen int, extrapolate Extrapolation) error {
	if len(inputRange) < 2 {
		return &ConfigurationError{Reason: "input range needs at least 2 breakpoints"}
	}
	if len(inputRange) != outputLen {
		return &ConfigurationError{
			Reason: fmt.Sprintf("input range has %d breakpoints, output range has %d", len(inputRange), outputLen),
		}
	}
	for i := 1; i < len(inputRange); i++ {
		if inputRange[i] <= inputRange[i-1] {
			return &ConfigurationError{
				Reason: fmt.Sprintf("input range not strictly increasing at index %d", i),
			}
		}
	}
	switch extrapolate {
	case ExtrapolateClamp, ExtrapolateExtend, ExtrapolateIdentity:
		return nil
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown extrapolation %q", extrapolate)}
	}
}

func parseAngle(raw string) (float64, string, error) {
	unit := ""
	switch {
	case strings.HasSuffix(raw, "deg"):
		unit = "deg"
	case strings.HasSuffix(raw, "rad"):
		unit = "rad"
	default:
		return 0, "", &ConfigurationError{Reason: fmt.Sprintf("angle %q lacks a deg/rad suffix", raw)}
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(raw, unit), 64)
	if err != nil {
		return 0, "", &ConfigurationError{Reason: fmt.Sprintf("angle %q is not numeric", raw)}
	}
	return n, unit, nil
}
