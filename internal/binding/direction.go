package binding

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"motionify/internal/domain"
)

// Motion selects how a direction binding moves between states
type Motion string

const (
	// MotionTiming runs a fixed-duration eased transition
	MotionTiming Motion = "timing"
	// MotionSpring runs a harmonica spring toward the target position
	MotionSpring Motion = "spring"
)

// Defaults for direction bindings
const (
	DefaultDuration        = 300 * time.Millisecond
	DefaultFPS             = 60
	DefaultSpringFrequency = 7.0
	DefaultSpringDamping   = 0.9
)

// DefaultTranslateRange is the standard visible/hidden translation pair
var DefaultTranslateRange = domain.TranslateRange{From: 0, To: 160}

// DirectionConfig configures one direction-based binding instance.
// Read-only after the binding is created.
type DirectionConfig struct {
	HideOn    domain.Direction // up or down; default down
	Translate domain.TranslateRange
	Duration  time.Duration
	Easing    Easing // nil means EaseInOutCubic
	Motion    Motion // default timing
	FadeScale bool   // animate opacity 1..0 and scale 1..0.9 in lockstep

	// Spring motion parameters, used when Motion == MotionSpring
	FPS             int
	SpringFrequency float64
	SpringDamping   float64

	// StyleFunc contributes extra overrides, merged last
	StyleFunc DirectionStyleFunc
}

// DirectionBinding hides and shows a component in sync with the direction
// signal. States are visible and hidden; the binding transitions to hidden
// while the direction matches HideOn and back to visible otherwise. The
// initial state is visible and the binding toggles indefinitely.
type DirectionBinding struct {
	cfg    DirectionConfig
	spring harmonica.Spring

	hidden  bool // target state
	lastDir domain.Direction
	route   string
	pinned  map[string]struct{}

	progress float64 // timing motion: 0 visible, 1 hidden
	pos, vel float64 // spring motion, in translation units
}

// NewDirectionBinding builds a binding with defaults filled in. HideOn must
// be up or down.
func NewDirectionBinding(cfg DirectionConfig) (*DirectionBinding, error) {
	switch cfg.HideOn {
	case domain.DirectionUp, domain.DirectionDown:
	case "":
		cfg.HideOn = domain.DirectionDown
	default:
		return nil, fmt.Errorf("binding: hideOn must be up or down, got %q", cfg.HideOn)
	}
	if cfg.Translate == (domain.TranslateRange{}) {
		cfg.Translate = DefaultTranslateRange
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Easing == nil {
		cfg.Easing = EaseInOutCubic
	}
	if cfg.Motion == "" {
		cfg.Motion = MotionTiming
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.SpringFrequency <= 0 {
		cfg.SpringFrequency = DefaultSpringFrequency
	}
	if cfg.SpringDamping <= 0 {
		cfg.SpringDamping = DefaultSpringDamping
	}

	return &DirectionBinding{
		cfg:     cfg,
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.SpringFrequency, cfg.SpringDamping),
		pinned:  make(map[string]struct{}),
		pos:     cfg.Translate.From,
		lastDir: domain.DirectionIdle,
	}, nil
}

// Observe updates the target state from a new direction classification
func (b *DirectionBinding) Observe(dir domain.Direction) {
	b.lastDir = dir
	if b.isPinned() {
		b.hidden = false
		return
	}
	b.hidden = dir == b.cfg.HideOn
}

// SetRoute records a route/identity change, which forces an immediate
// transition back to visible regardless of the current direction.
func (b *DirectionBinding) SetRoute(name string) {
	b.route = name
	b.hidden = false
}

// PinVisible adds routes on which the binding stays visible regardless of
// direction
func (b *DirectionBinding) PinVisible(routes ...string) {
	for _, r := range routes {
		b.pinned[r] = struct{}{}
	}
	if b.isPinned() {
		b.hidden = false
	}
}

// Hidden reports the current target state
func (b *DirectionBinding) Hidden() bool {
	return b.hidden
}

// Step advances the animation by dt and returns the style for this frame.
// Call once per frame from the same goroutine that feeds samples.
func (b *DirectionBinding) Step(dt time.Duration) Style {
	target := 0.0
	if b.hidden {
		target = 1.0
	}

	var p float64 // normalized position, 0 visible .. 1 hidden
	switch b.cfg.Motion {
	case MotionSpring:
		springTarget := b.cfg.Translate.From
		if b.hidden {
			springTarget = b.cfg.Translate.To
		}
		b.pos, b.vel = b.spring.Update(b.pos, b.vel, springTarget)
		span := b.cfg.Translate.To - b.cfg.Translate.From
		if span != 0 {
			p = (b.pos - b.cfg.Translate.From) / span
		}
	default:
		step := float64(dt) / float64(b.cfg.Duration)
		if b.progress < target {
			b.progress = math.Min(target, b.progress+step)
		} else if b.progress > target {
			b.progress = math.Max(target, b.progress-step)
		}
		p = b.cfg.Easing(b.progress)
	}

	translate := b.cfg.Translate.From + p*(b.cfg.Translate.To-b.cfg.Translate.From)
	if b.cfg.Motion == MotionSpring {
		translate = b.pos
	}

	style := Style{ChannelTranslateY: Number(translate)}
	if b.cfg.FadeScale {
		style[ChannelOpacity] = Number(1 - p)
		style[ChannelScale] = Number(1 - 0.1*p)
	}
	if b.cfg.StyleFunc != nil {
		style.Apply(b.cfg.StyleFunc(b.lastDir))
	}
	return style
}

// Settled reports whether the animation has reached its target position
func (b *DirectionBinding) Settled() bool {
	switch b.cfg.Motion {
	case MotionSpring:
		target := b.cfg.Translate.From
		if b.hidden {
			target = b.cfg.Translate.To
		}
		return math.Abs(b.pos-target) < 0.05 && math.Abs(b.vel) < 0.05
	default:
		if b.hidden {
			return b.progress >= 1
		}
		return b.progress <= 0
	}
}

func (b *DirectionBinding) isPinned() bool {
	_, ok := b.pinned[b.route]
	return ok
}
