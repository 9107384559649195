// Package config provides configuration loading and access for the particle field.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Link finding strategies.
const (
	LinkModeGrid     = "grid"
	LinkModePairwise = "pairwise"
)

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Resizable  bool   `yaml:"resizable"`
	Background string `yaml:"background"` // hex color
}

// FieldConfig holds particle field parameters.
type FieldConfig struct {
	Count            int     `yaml:"count"`
	AttractionRadius float64 `yaml:"attraction_radius"` // Pointer pull applies below this distance
	PullDivisor      float64 `yaml:"pull_divisor"`      // Step toward pointer = delta / this
	ConnectionRadius float64 `yaml:"connection_radius"` // Pairs closer than this are linked
	MinRadius        float64 `yaml:"min_radius"`
	MaxRadius        float64 `yaml:"max_radius"`
	MaxDrift         float64 `yaml:"max_drift"` // Drift axes drawn from [-max, max)
	ParticleColor    string  `yaml:"particle_color"`
	LinkColor        string  `yaml:"link_color"`
	LinkAlpha        float64 `yaml:"link_alpha"`
	LinkWidth        float64 `yaml:"link_width"`
	LinkMode         string  `yaml:"link_mode"` // grid | pairwise
	ReinitOnResize   bool    `yaml:"reinit_on_resize"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Frames per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Background    color.RGBA
	ParticleColor color.RGBA
	LinkColor     color.RGBA // LinkColor with LinkAlpha applied
	ScreenW32     float32
	ScreenH32     float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Set replaces the global configuration, e.g. after a hot reload.
func Set(cfg *Config) {
	global = cfg
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse unmarshals YAML into cfg. Only fields present in data are overwritten.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate rejects values the field cannot run with.
func (c *Config) Validate() error {
	f := c.Field
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if f.Count < 0 {
		errs = append(errs, fmt.Errorf("field.count must be >= 0, got %d", f.Count))
	}
	if f.PullDivisor <= 0 {
		errs = append(errs, fmt.Errorf("field.pull_divisor must be > 0, got %g", f.PullDivisor))
	}
	if f.AttractionRadius < 0 || f.ConnectionRadius < 0 {
		errs = append(errs, errors.New("field radii must be >= 0"))
	}
	if f.MinRadius <= 0 || f.MaxRadius < f.MinRadius {
		errs = append(errs, fmt.Errorf("field radius range [%g, %g) is invalid", f.MinRadius, f.MaxRadius))
	}
	if f.MaxDrift < 0 {
		errs = append(errs, fmt.Errorf("field.max_drift must be >= 0, got %g", f.MaxDrift))
	}
	if f.LinkAlpha < 0 || f.LinkAlpha > 1 {
		errs = append(errs, fmt.Errorf("field.link_alpha must be in [0, 1], got %g", f.LinkAlpha))
	}
	if f.LinkMode != LinkModeGrid && f.LinkMode != LinkModePairwise {
		errs = append(errs, fmt.Errorf("field.link_mode must be %q or %q, got %q", LinkModeGrid, LinkModePairwise, f.LinkMode))
	}
	if c.Telemetry.StatsWindow < 1 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window must be >= 1, got %d", c.Telemetry.StatsWindow))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	bg, err := ParseColor(c.Screen.Background, 1)
	if err != nil {
		return fmt.Errorf("screen.background: %w", err)
	}
	pc, err := ParseColor(c.Field.ParticleColor, 1)
	if err != nil {
		return fmt.Errorf("field.particle_color: %w", err)
	}
	lc, err := ParseColor(c.Field.LinkColor, c.Field.LinkAlpha)
	if err != nil {
		return fmt.Errorf("field.link_color: %w", err)
	}

	c.Derived.Background = bg
	c.Derived.ParticleColor = pc
	c.Derived.LinkColor = lc
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	return nil
}

// ParseColor parses a "#rrggbb" hex string and applies alpha in [0, 1].
func ParseColor(hex string, alpha float64) (color.RGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
