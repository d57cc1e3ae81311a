// Package ambient generates an optional soft drone whose gain follows
// the point field's activity, played through the beep speaker.
package ambient

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

const (
	// SampleRate is the fixed output rate of the drone.
	SampleRate beep.SampleRate = 44100

	toneHz  = 110.0
	maxGain = 0.15
	// gainSmoothing moves the per-sample gain toward its target slowly
	// enough that activity changes never click.
	gainSmoothing = 0.999
)

// Drone is a beep.Streamer producing a sine tone. SetActivity is called
// once per frame from the update loop; Stream runs on the speaker
// goroutine, so the target gain is the only shared value.
type Drone struct {
	mu     sync.Mutex
	target float64

	// refSpeed is the activity at which the drone reaches full gain.
	refSpeed float64

	// gain and phase are touched only by Stream.
	gain  float64
	phase float64
}

// NewDrone returns a silent drone. refSpeed is the mean point speed
// that maps to full gain; a non-positive value keeps the drone silent.
func NewDrone(refSpeed float64) *Drone {
	return &Drone{refSpeed: refSpeed}
}

// SetActivity updates the target gain from the field's mean point
// speed, clamped to the drone's full-gain ceiling.
func (d *Drone) SetActivity(meanSpeed float64) {
	target := 0.0
	if d.refSpeed > 0 {
		target = meanSpeed / d.refSpeed
		if target < 0 {
			target = 0
		}
		if target > 1 {
			target = 1
		}
		target *= maxGain
	}
	d.mu.Lock()
	d.target = target
	d.mu.Unlock()
}

// TargetGain returns the current target gain.
func (d *Drone) TargetGain() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.target
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	d.mu.Lock()
	target := d.target
	d.mu.Unlock()

	step := 2 * math.Pi * toneHz / float64(SampleRate)
	for i := range samples {
		d.gain = d.gain*gainSmoothing + target*(1-gainSmoothing)
		v := math.Sin(d.phase) * d.gain
		d.phase += step
		if d.phase > 2*math.Pi {
			d.phase -= 2 * math.Pi
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
