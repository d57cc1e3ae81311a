package anim_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GFX1j/constellation/internal/anim"
)

func pump(loop *anim.Loop, n int) {
	for i := 0; i < n; i++ {
		loop.Tick()
	}
}

func TestAnimatorPauseResume(t *testing.T) {
	loop := &anim.Loop{}
	frames := 0
	a := anim.New(loop, func() { frames++ })

	pump(loop, 5)
	assert.Zero(t, frames, "nothing scheduled before Resume")

	a.Resume()
	assert.True(t, a.Running())
	pump(loop, 5)
	assert.Equal(t, 5, frames)

	a.Pause()
	assert.False(t, a.Running())
	pump(loop, 10)
	assert.Equal(t, 5, frames, "no frames strictly between Pause and Resume")

	a.Resume()
	pump(loop, 3)
	assert.Equal(t, 8, frames)
}

func TestAnimatorIdempotentTransitions(t *testing.T) {
	loop := &anim.Loop{}
	frames := 0
	a := anim.New(loop, func() { frames++ })

	a.Resume()
	a.Resume() // no-op while running
	pump(loop, 4)
	assert.Equal(t, 4, frames, "double Resume schedules once")

	a.Pause()
	a.Pause() // no-op while paused
	pump(loop, 4)
	assert.Equal(t, 4, frames)
}

func TestAnimatorDispose(t *testing.T) {
	loop := &anim.Loop{}
	frames := 0
	a := anim.New(loop, func() { frames++ })

	a.Resume()
	pump(loop, 2)
	a.Dispose()
	a.Dispose() // idempotent

	pump(loop, 5)
	assert.Equal(t, 2, frames)

	a.Resume() // barred after Dispose
	assert.False(t, a.Running())
	pump(loop, 5)
	assert.Equal(t, 2, frames)
}

func TestTickerSchedulerCancel(t *testing.T) {
	var frames atomic.Int64
	ticker := &anim.Ticker{Interval: time.Millisecond}
	cancel := ticker.Schedule(func() { frames.Add(1) })

	deadline := time.After(2 * time.Second)
	for frames.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("ticker produced no frames")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	cancel() // safe to call twice

	after := frames.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, after, frames.Load(), "no frames after cancel returns")
}

func TestTickerCancelIsSynchronous(t *testing.T) {
	ticker := &anim.Ticker{Interval: time.Millisecond}

	// Deliberately unsynchronized: cancel joining the worker goroutine
	// is the only thing that makes the write below safe.
	x := 0
	cancel := ticker.Schedule(func() { x++ })

	time.Sleep(10 * time.Millisecond)
	cancel()

	x = -1
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, -1, x)
}
