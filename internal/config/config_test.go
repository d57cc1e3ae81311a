package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GFX1j/constellation/internal/config"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 8000.0, cfg.Field.Density)
	assert.Equal(t, 150.0, cfg.Field.Distance)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constellation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 640
  height: 480
field:
  density: 4000
  radius:
    min: 1
    max: 3
audio:
  enabled: true
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 4000.0, cfg.Field.Density)
	assert.Equal(t, config.Range{Min: 1, Max: 3}, cfg.Field.Radius)
	assert.True(t, cfg.Audio.Enabled)
	// Untouched keys keep their defaults.
	assert.Equal(t, 150.0, cfg.Field.Distance)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constellation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field:\n  density: 4000\n"), 0644))

	t.Setenv("CONSTELLATION_FIELD_DENSITY", "2000")
	t.Setenv("CONSTELLATION_WINDOW_WIDTH", "320")
	t.Setenv("CONSTELLATION_SEED", "42")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, cfg.Field.Density)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero window", func(c *config.Config) { c.Window.Width = 0 }},
		{"zero density", func(c *config.Config) { c.Field.Density = 0 }},
		{"zero distance", func(c *config.Config) { c.Field.Distance = 0 }},
		{"inverted radius", func(c *config.Config) { c.Field.Radius = config.Range{Min: 3, Max: 1} }},
		{"inverted speed", func(c *config.Config) { c.Field.Speed = config.Range{Min: 1, Max: -1} }},
		{"opacity above one", func(c *config.Config) { c.Field.Opacity.Max = 1.5 }},
		{"negative influence", func(c *config.Config) { c.Field.Influence = -1 }},
		{"negative force", func(c *config.Config) { c.Field.Force = -0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := config.DefaultConfig()
	cfg.Field.Density = 12000
	cfg.Seed = 7
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestTuningMapsAllFields(t *testing.T) {
	fc := config.FieldConfig{
		Density:   1000,
		Distance:  80,
		Radius:    config.Range{Min: 0.5, Max: 2},
		Opacity:   config.Range{Min: 0.1, Max: 0.7},
		Speed:     config.Range{Min: -0.25, Max: 0.25},
		Influence: 100,
		Force:     0.00005,
	}
	tuning := fc.Tuning()

	assert.Equal(t, 1000.0, tuning.Density)
	assert.Equal(t, 80.0, tuning.MaxDistance)
	assert.Equal(t, 0.5, tuning.MinRadius)
	assert.Equal(t, 2.0, tuning.MaxRadius)
	assert.Equal(t, 0.1, tuning.MinOpacity)
	assert.Equal(t, 0.7, tuning.MaxOpacity)
	assert.Equal(t, -0.25, tuning.MinSpeed)
	assert.Equal(t, 0.25, tuning.MaxSpeed)
	assert.Equal(t, 100.0, tuning.InfluenceRadius)
	assert.Equal(t, 0.00005, tuning.MouseForce)
}
