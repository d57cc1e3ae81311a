package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas adapts an ebiten.Image to field.Surface.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col, true)
}

func (c *canvas) FillCircle(x, y, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col, true)
}
