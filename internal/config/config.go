// Package config loads the application configuration from defaults, an
// optional YAML file, and CONSTELLATION_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/GFX1j/constellation/internal/field"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "constellation.yaml"

// Config is the root configuration.
type Config struct {
	Window WindowConfig `koanf:"window" yaml:"window"`
	Field  FieldConfig  `koanf:"field" yaml:"field"`
	Audio  AudioConfig  `koanf:"audio" yaml:"audio"`
	// Seed fixes the simulation RNG; zero means time-seeded.
	Seed int64 `koanf:"seed" yaml:"seed"`
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Width  int    `koanf:"width" yaml:"width"`
	Height int    `koanf:"height" yaml:"height"`
	Title  string `koanf:"title" yaml:"title"`
}

// Range bounds a uniformly sampled per-point attribute.
type Range struct {
	Min float64 `koanf:"min" yaml:"min"`
	Max float64 `koanf:"max" yaml:"max"`
}

// FieldConfig holds the point-field tuning.
type FieldConfig struct {
	Density   float64 `koanf:"density" yaml:"density"`
	Distance  float64 `koanf:"distance" yaml:"distance"`
	Radius    Range   `koanf:"radius" yaml:"radius"`
	Opacity   Range   `koanf:"opacity" yaml:"opacity"`
	Speed     Range   `koanf:"speed" yaml:"speed"`
	Influence float64 `koanf:"influence" yaml:"influence"`
	Force     float64 `koanf:"force" yaml:"force"`
}

// AudioConfig holds the ambient drone settings.
type AudioConfig struct {
	Enabled bool `koanf:"enabled" yaml:"enabled"`
}

// Tuning converts the loaded values into the field package's config.
func (fc FieldConfig) Tuning() field.Config {
	return field.Config{
		Density:         fc.Density,
		MaxDistance:     fc.Distance,
		MinRadius:       fc.Radius.Min,
		MaxRadius:       fc.Radius.Max,
		MinOpacity:      fc.Opacity.Min,
		MaxOpacity:      fc.Opacity.Max,
		MinSpeed:        fc.Speed.Min,
		MaxSpeed:        fc.Speed.Max,
		InfluenceRadius: fc.Influence,
		MouseForce:      fc.Force,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CONSTELLATION_WINDOW_WIDTH →
// window.width, and so on).
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("CONSTELLATION_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CONSTELLATION_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains workable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Field.Density <= 0 {
		return fmt.Errorf("field density must be positive")
	}
	if c.Field.Distance <= 0 {
		return fmt.Errorf("field distance must be positive")
	}
	for _, r := range []struct {
		name string
		Range
	}{
		{"radius", c.Field.Radius},
		{"opacity", c.Field.Opacity},
		{"speed", c.Field.Speed},
	} {
		if r.Min > r.Max {
			return fmt.Errorf("field %s range is inverted: min %v > max %v", r.name, r.Min, r.Max)
		}
	}
	if c.Field.Opacity.Min < 0 || c.Field.Opacity.Max > 1 {
		return fmt.Errorf("field opacity range must stay within [0, 1]")
	}
	if c.Field.Influence < 0 {
		return fmt.Errorf("field influence radius must be non-negative")
	}
	if c.Field.Force < 0 {
		return fmt.Errorf("field force must be non-negative")
	}
	return nil
}
