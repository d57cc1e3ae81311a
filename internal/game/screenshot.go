package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

// beginScreenshot claims the single save slot; at most one dialog is
// open at a time, no matter how fast the key is mashed.
func (g *Game) beginScreenshot() bool {
	return g.shotBusy.CompareAndSwap(false, true)
}

func (g *Game) endScreenshot() {
	g.shotBusy.Store(false)
}

// captureScreenshot copies the offscreen pixels and hands them to a
// goroutine, so the save dialog never blocks the frame loop.
func (g *Game) captureScreenshot() {
	if !g.beginScreenshot() {
		return
	}
	bounds := g.offscreen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 4*w*h)
	g.offscreen.ReadPixels(pix)
	img := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	go func() {
		defer g.endScreenshot()
		g.saveScreenshot(img)
	}()
}

func (g *Game) saveScreenshot(img image.Image) {
	suggested := fmt.Sprintf("constellation-%s.png", time.Now().Format("20060102-150405"))
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.logger.Warn("screenshot dialog failed", zap.Error(err))
		return
	}

	f, err := os.Create(path)
	if err != nil {
		g.logger.Warn("screenshot create failed", zap.Error(err))
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		g.logger.Warn("screenshot encode failed", zap.Error(err))
		return
	}
	g.logger.Info("screenshot saved", zap.String("path", path))
}
