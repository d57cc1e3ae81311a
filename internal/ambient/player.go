package ambient

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player owns the speaker and the pause control for a drone.
type Player struct {
	drone *Drone
	ctrl  *beep.Ctrl
}

// Start initializes the speaker and begins playing the drone. The
// caller should treat an error as a degraded mode, not a fatal one.
func Start(drone *Drone) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	ctrl := &beep.Ctrl{Streamer: drone}
	speaker.Play(ctrl)
	return &Player{drone: drone, ctrl: ctrl}, nil
}

// SetPaused pauses or resumes the drone alongside the animation.
func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Close silences the speaker.
func (p *Player) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
