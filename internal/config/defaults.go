package config

import "github.com/GFX1j/constellation/internal/field"

// DefaultConfig returns the shipped defaults: a 1024×768 window and the
// field package's classic constellation tuning.
func DefaultConfig() *Config {
	fc := field.DefaultConfig()
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Constellation",
		},
		Field: FieldConfig{
			Density:   fc.Density,
			Distance:  fc.MaxDistance,
			Radius:    Range{Min: fc.MinRadius, Max: fc.MaxRadius},
			Opacity:   Range{Min: fc.MinOpacity, Max: fc.MaxOpacity},
			Speed:     Range{Min: fc.MinSpeed, Max: fc.MaxSpeed},
			Influence: fc.InfluenceRadius,
			Force:     fc.MouseForce,
		},
		Audio: AudioConfig{Enabled: false},
	}
}
