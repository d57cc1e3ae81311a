package ambient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GFX1j/constellation/internal/ambient"
)

func TestSetActivityClampsTarget(t *testing.T) {
	d := ambient.NewDrone(0.25)

	d.SetActivity(0)
	assert.Zero(t, d.TargetGain())

	d.SetActivity(0.125)
	half := d.TargetGain()
	assert.Greater(t, half, 0.0)

	d.SetActivity(0.25)
	full := d.TargetGain()
	assert.Greater(t, full, half, "gain follows activity")

	d.SetActivity(10)
	assert.Equal(t, full, d.TargetGain(), "clamped at full gain")

	d.SetActivity(-1)
	assert.Zero(t, d.TargetGain())
}

func TestZeroRefSpeedStaysSilent(t *testing.T) {
	d := ambient.NewDrone(0)
	d.SetActivity(5)
	assert.Zero(t, d.TargetGain())
}

func TestStreamFillsAndStaysBounded(t *testing.T) {
	d := ambient.NewDrone(0.25)
	d.SetActivity(0.25)

	samples := make([][2]float64, 4096)
	for i := 0; i < 8; i++ {
		n, ok := d.Stream(samples)
		require.True(t, ok)
		require.Equal(t, len(samples), n)
		for _, s := range samples {
			assert.LessOrEqual(t, s[0], 1.0)
			assert.GreaterOrEqual(t, s[0], -1.0)
			assert.Equal(t, s[0], s[1], "drone is mono on both channels")
		}
	}

	assert.NoError(t, d.Err())
}

func TestGainRampsTowardTarget(t *testing.T) {
	d := ambient.NewDrone(0.25)
	d.SetActivity(0.25)

	samples := make([][2]float64, 2048)
	peak := func() float64 {
		d.Stream(samples)
		max := 0.0
		for _, s := range samples {
			if v := s[0]; v > max {
				max = v
			}
			if v := -s[0]; v > max {
				max = v
			}
		}
		return max
	}

	first := peak()
	var later float64
	for i := 0; i < 20; i++ {
		later = peak()
	}
	assert.Greater(t, later, first, "gain ramps up over time")
}
