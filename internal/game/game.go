// Package game hosts the point field in a resizable Ebiten window,
// feeding it pointer input and the display's frame clock.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/GFX1j/constellation/internal/ambient"
	"github.com/GFX1j/constellation/internal/anim"
	"github.com/GFX1j/constellation/internal/config"
	"github.com/GFX1j/constellation/internal/field"
)

var backgroundColor = color.NRGBA{R: 0x0a, G: 0x0e, B: 0x1a, A: 0xff}

// Game implements ebiten.Game around a field.Field.
type Game struct {
	cfg    *config.Config
	logger *zap.Logger

	field    *field.Field
	loop     *anim.Loop
	animator *anim.Animator

	drone  *ambient.Drone
	player *ambient.Player

	offscreen     *ebiten.Image
	width, height int

	paused      bool
	shotPending bool
	shotBusy    atomic.Bool
}

// New builds the game from the loaded configuration. Audio failures
// degrade to a silent run with a logged warning.
func New(cfg *config.Config, logger *zap.Logger) *Game {
	tuning := cfg.Field.Tuning()

	var f *field.Field
	if cfg.Seed != 0 {
		f = field.NewWithRand(float64(cfg.Window.Width), float64(cfg.Window.Height), tuning, rand.New(rand.NewSource(cfg.Seed)))
	} else {
		f = field.New(float64(cfg.Window.Width), float64(cfg.Window.Height), tuning)
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		field:  f,
		loop:   &anim.Loop{},
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	if cfg.Audio.Enabled {
		refSpeed := math.Max(math.Abs(tuning.MinSpeed), math.Abs(tuning.MaxSpeed))
		g.drone = ambient.NewDrone(refSpeed)
		player, err := ambient.Start(g.drone)
		if err != nil {
			logger.Warn("ambient audio unavailable", zap.Error(err))
			g.drone = nil
		} else {
			g.player = player
		}
	}

	g.animator = anim.New(g.loop, g.frame)
	g.animator.Resume()

	logger.Info("field initialized",
		zap.Int("points", len(f.Points())),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))
	return g
}

// frame advances the simulation by one display refresh.
func (g *Game) frame() {
	g.field.Step()
	if g.drone != nil {
		g.drone.SetActivity(g.field.Activity())
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.shotPending = true
	}

	// Resizes happen here, between frames, never during a Step.
	if w, h := ebiten.WindowSize(); (w != g.width || h != g.height) && w > 0 && h > 0 {
		g.width, g.height = w, h
		g.field.Resize(float64(w), float64(h))
		g.offscreen = nil
		g.logger.Debug("field resized",
			zap.Int("width", w),
			zap.Int("height", h),
			zap.Int("points", len(g.field.Points())))
	}

	g.trackPointer()
	g.loop.Tick()
	return nil
}

// trackPointer feeds the field the first touch if present, otherwise
// the cursor; a cursor outside the window clears the pointer.
func (g *Game) trackPointer() {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		g.field.SetPointer(float64(x), float64(y))
		return
	}
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		g.field.ClearPointer()
		return
	}
	g.field.SetPointer(float64(x), float64(y))
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.offscreen == nil {
		g.offscreen = ebiten.NewImage(g.width, g.height)
	}
	g.offscreen.Fill(backgroundColor)
	g.field.Render(&canvas{dst: g.offscreen})
	screen.DrawImage(g.offscreen, nil)

	if g.shotPending {
		g.shotPending = false
		g.captureScreenshot()
	}

	status := "Playing"
	if g.paused {
		status = "Paused"
	}
	status += fmt.Sprintf(" — Space: pause, S: screenshot, Esc/Q: quit | %d points, %d edges",
		len(g.field.Points()), len(g.field.Edges()))
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.animator.Pause()
	} else {
		g.animator.Resume()
	}
	if g.player != nil {
		g.player.SetPaused(g.paused)
	}
}

// Close releases the frame scheduling and the speaker.
func (g *Game) Close() {
	g.animator.Dispose()
	if g.player != nil {
		g.player.Close()
	}
}

// Run opens the window and drives the game until quit.
func Run(cfg *config.Config, logger *zap.Logger) error {
	g := New(cfg, logger)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
