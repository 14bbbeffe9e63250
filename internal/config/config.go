package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"motionify/internal/binding"
	"motionify/internal/domain"
	"motionify/internal/eventbus"
	"motionify/internal/interpolate"
	"motionify/internal/scroll"
)

// Config is the recognized configuration surface
type Config struct {
	Scroll    ScrollSettings    `toml:"scroll"`
	Animation AnimationSettings `toml:"animation"`
}

// ScrollSettings configures the direction classifier and idle detector
type ScrollSettings struct {
	Threshold     float64 `toml:"threshold"`
	SupportIdle   bool    `toml:"support_idle"`
	IdleTimeoutMs int     `toml:"idle_timeout_ms"`
}

// AnimationSettings configures direction-based bindings
type AnimationSettings struct {
	DurationMs    int     `toml:"duration_ms"`
	HideOn        string  `toml:"hide_on"`
	TranslateFrom float64 `toml:"translate_from"`
	TranslateTo   float64 `toml:"translate_to"`
	Extrapolate   string  `toml:"extrapolate"`
	Motion        string  `toml:"motion"`
	FadeScale     bool    `toml:"fade_scale"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "motionify")
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "motionify.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scroll: ScrollSettings{
			Threshold:     scroll.DefaultThreshold,
			SupportIdle:   false,
			IdleTimeoutMs: 200,
		},
		Animation: AnimationSettings{
			DurationMs:    300,
			HideOn:        string(domain.DirectionDown),
			TranslateFrom: 0,
			TranslateTo:   160,
			Extrapolate:   string(interpolate.ExtrapolateClamp),
			Motion:        string(binding.MotionTiming),
			FadeScale:     false,
		},
	}
}

// Validate rejects values the rest of the system would refuse at runtime
func (c *Config) Validate() error {
	switch domain.Direction(c.Animation.HideOn) {
	case domain.DirectionUp, domain.DirectionDown:
	default:
		return fmt.Errorf("config: hide_on must be up or down, got %q", c.Animation.HideOn)
	}
	switch interpolate.Extrapolation(c.Animation.Extrapolate) {
	case interpolate.ExtrapolateClamp, interpolate.ExtrapolateExtend, interpolate.ExtrapolateIdentity:
	default:
		return fmt.Errorf("config: unknown extrapolate %q", c.Animation.Extrapolate)
	}
	switch binding.Motion(c.Animation.Motion) {
	case binding.MotionTiming, binding.MotionSpring:
	default:
		return fmt.Errorf("config: unknown motion %q", c.Animation.Motion)
	}
	if c.Scroll.Threshold <= 0 {
		return fmt.Errorf("config: threshold must be positive, got %g", c.Scroll.Threshold)
	}
	if c.Scroll.IdleTimeoutMs <= 0 {
		return fmt.Errorf("config: idle_timeout_ms must be positive, got %d", c.Scroll.IdleTimeoutMs)
	}
	if c.Animation.DurationMs <= 0 {
		return fmt.Errorf("config: duration_ms must be positive, got %d", c.Animation.DurationMs)
	}
	return nil
}

// ScrollOptions converts the scroll section into provider options
func (c *Config) ScrollOptions() scroll.Options {
	return scroll.Options{
		Threshold:   c.Scroll.Threshold,
		SupportIdle: c.Scroll.SupportIdle,
		IdleTimeout: time.Duration(c.Scroll.IdleTimeoutMs) * time.Millisecond,
	}
}

// DirectionConfig converts the animation section into a binding config
func (c *Config) DirectionConfig() binding.DirectionConfig {
	return binding.DirectionConfig{
		HideOn:    domain.Direction(c.Animation.HideOn),
		Translate: domain.TranslateRange{From: c.Animation.TranslateFrom, To: c.Animation.TranslateTo},
		Duration:  time.Duration(c.Animation.DurationMs) * time.Millisecond,
		Motion:    binding.Motion(c.Animation.Motion),
		FadeScale: c.Animation.FadeScale,
	}
}

// Extrapolation returns the configured extrapolation mode
func (c *Config) Extrapolation() interpolate.Extrapolation {
	return interpolate.Extrapolation(c.Animation.Extrapolate)
}
