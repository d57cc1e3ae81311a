// Package anim paces a frame callback through an explicit scheduler
// with cancellation handles, so pausing and disposal are deterministic
// rather than relying on garbage collection or implicit cleanup.
package anim

import (
	"sync"
	"time"
)

// CancelFunc stops the frames scheduled by a Schedule call. It is safe
// to call more than once.
type CancelFunc func()

// Scheduler invokes a frame callback once per tick until the returned
// handle is canceled.
type Scheduler interface {
	Schedule(frame func()) CancelFunc
}

// Ticker schedules frames on a wall-clock ticker. Used by the headless
// simulate command; the windowed host uses Loop instead.
type Ticker struct {
	Interval time.Duration
}

// Schedule runs frame on a worker goroutine once per interval. The
// returned CancelFunc joins the worker: once it returns, no frame
// callback is running or will run, so the caller may freely touch
// state the callback mutates.
func (t *Ticker) Schedule(frame func()) CancelFunc {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		tk := time.NewTicker(t.Interval)
		defer tk.Stop()
		for {
			select {
			case <-done:
				return
			case <-tk.C:
				frame()
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-exited
	}
}

// Loop is a scheduler pumped by an external frame source. The Ebiten
// host calls Tick once per Update, making the display refresh the
// production frame clock.
type Loop struct {
	mu    sync.Mutex
	frame func()
}

// Schedule registers the frame callback, replacing any previous one.
func (l *Loop) Schedule(frame func()) CancelFunc {
	l.mu.Lock()
	l.frame = frame
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		l.frame = nil
		l.mu.Unlock()
	}
}

// Tick runs the scheduled frame callback, if any.
func (l *Loop) Tick() {
	l.mu.Lock()
	frame := l.frame
	l.mu.Unlock()
	if frame != nil {
		frame()
	}
}

// Animator binds a frame callback to a scheduler and adds the
// pause/resume/dispose lifecycle. After Pause returns, no frame
// callback fires until the next Resume.
type Animator struct {
	mu       sync.Mutex
	sched    Scheduler
	frame    func()
	cancel   CancelFunc
	running  bool
	disposed bool
}

func New(sched Scheduler, frame func()) *Animator {
	return &Animator{sched: sched, frame: frame}
}

// Resume starts frame scheduling. No-op while already running or after
// Dispose.
func (a *Animator) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running || a.disposed {
		return
	}
	a.cancel = a.sched.Schedule(a.frame)
	a.running = true
}

// Pause cancels frame scheduling. No-op while already paused.
func (a *Animator) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

// Dispose cancels scheduling and bars any further Resume. Idempotent.
func (a *Animator) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	a.disposed = true
}

// Running reports whether frames are currently scheduled.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

func (a *Animator) stopLocked() {
	if !a.running {
		return
	}
	a.cancel()
	a.cancel = nil
	a.running = false
}
