package field

import "image/color"

// Surface is the minimal drawing target for Render. Hosts adapt their
// backend to it (the Ebiten host wraps an ebiten.Image), which keeps
// this package testable without a display.
type Surface interface {
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
}

const edgeStrokeWidth = 0.5

// Render draws the last stepped frame onto s: edges first, then points
// on top, all in white at their respective opacities.
func (f *Field) Render(s Surface) {
	for _, e := range f.edges {
		a := &f.points[e.A]
		b := &f.points[e.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, edgeStrokeWidth, white(e.Opacity))
	}
	for i := range f.points {
		p := &f.points[i]
		s.FillCircle(p.X, p.Y, p.Radius, white(p.Opacity))
	}
}

func white(opacity float64) color.Color {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(clamp(opacity, 0, 1) * 0xff)}
}
