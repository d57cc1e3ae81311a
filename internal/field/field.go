// Package field simulates a constellation: a set of drifting points
// connected by proximity edges, attracted toward a pointer position.
// The package is host-independent; drawing goes through the Surface
// interface and frame pacing is owned by the caller.
//
// Positions wrap at the surface edges. A coordinate that underflows is
// parked at the far boundary for one frame, so positions lie in the
// closed interval [0, width] × [0, height].
package field

import (
	"math"
	"math/rand"
	"time"
)

const (
	// opacityJitter is the half-width of the uniform opacity drift
	// applied each step.
	opacityJitter = 0.01
	// relaxRate pulls velocity back toward its baseline each step, so
	// pointer perturbation decays geometrically instead of snapping off.
	relaxRate = 0.01
	// edgeOpacityScale caps edge opacity at half strength for points
	// that overlap exactly.
	edgeOpacityScale = 0.5
)

// Config is the immutable tuning of a field, fixed at construction.
type Config struct {
	// Density is the surface area per point; a w×h surface gets
	// floor(w*h/Density) points.
	Density float64
	// MaxDistance is the proximity threshold for edges (strict <).
	MaxDistance float64

	MinRadius, MaxRadius   float64
	MinOpacity, MaxOpacity float64
	// MinSpeed and MaxSpeed bound the per-axis baseline velocity.
	MinSpeed, MaxSpeed float64

	// InfluenceRadius is the pointer attraction range; MouseForce
	// scales the added velocity.
	InfluenceRadius float64
	MouseForce      float64
}

// DefaultConfig returns the classic constellation tuning.
func DefaultConfig() Config {
	return Config{
		Density:         8000,
		MaxDistance:     150,
		MinRadius:       0.5,
		MaxRadius:       2,
		MinOpacity:      0.1,
		MaxOpacity:      0.7,
		MinSpeed:        -0.25,
		MaxSpeed:        0.25,
		InfluenceRadius: 100,
		MouseForce:      0.00005,
	}
}

// Field owns the points, the pointer state, and the per-frame edge set.
// It is not safe for concurrent use; the host calls Step, SetPointer,
// Resize and Render from a single frame loop.
type Field struct {
	cfg           Config
	width, height float64
	rng           *rand.Rand

	points             []Point
	edges              []Edge
	pointerX, pointerY float64
}

// New creates a field with a time-seeded RNG and populates it for the
// given surface size. A zero or negative area yields an empty field.
func New(width, height float64, cfg Config) *Field {
	return NewWithRand(width, height, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is New with a caller-supplied RNG for deterministic runs.
func NewWithRand(width, height float64, cfg Config, rng *rand.Rand) *Field {
	f := &Field{cfg: cfg, rng: rng}
	f.Resize(width, height)
	return f
}

// Resize stores the new surface dimensions and fully regenerates the
// point set. Positions are not preserved across resizes.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
	f.populate()
}

func (f *Field) populate() {
	n := 0
	if f.cfg.Density > 0 && f.width > 0 && f.height > 0 {
		n = int(f.width * f.height / f.cfg.Density)
	}
	f.points = make([]Point, n)
	f.edges = f.edges[:0]
	for i := range f.points {
		p := &f.points[i]
		p.X = f.rng.Float64() * f.width
		p.Y = f.rng.Float64() * f.height
		p.Radius = f.uniform(f.cfg.MinRadius, f.cfg.MaxRadius)
		p.Opacity = f.uniform(f.cfg.MinOpacity, f.cfg.MaxOpacity)
		p.VX = f.uniform(f.cfg.MinSpeed, f.cfg.MaxSpeed)
		p.VY = f.uniform(f.cfg.MinSpeed, f.cfg.MaxSpeed)
		p.BaseVX = p.VX
		p.BaseVY = p.VY
	}
}

// SetPointer overwrites the pointer position. Off-surface coordinates
// are valid; they simply fall outside the influence radius.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
}

// ClearPointer resets the pointer to the origin (pointer-leave).
func (f *Field) ClearPointer() {
	f.pointerX, f.pointerY = 0, 0
}

// Pointer returns the current pointer position.
func (f *Field) Pointer() (x, y float64) {
	return f.pointerX, f.pointerY
}

// Step advances the simulation by one frame: move, wrap, drift opacity,
// relax velocity, apply pointer attraction, then rebuild the edge set.
func (f *Field) Step() {
	for i := range f.points {
		p := &f.points[i]

		p.X += p.VX
		p.Y += p.VY

		// Wraparound checks are independent, not mutually exclusive: a
		// point leaving both axes in one step wraps both.
		if p.X < 0 {
			p.X = f.width
		}
		if p.X > f.width {
			p.X = 0
		}
		if p.Y < 0 {
			p.Y = f.height
		}
		if p.Y > f.height {
			p.Y = 0
		}

		p.Opacity = clamp(p.Opacity+f.uniform(-opacityJitter, opacityJitter), f.cfg.MinOpacity, f.cfg.MaxOpacity)

		p.VX += (p.BaseVX - p.VX) * relaxRate
		p.VY += (p.BaseVY - p.VY) * relaxRate

		f.attract(p)
	}
	f.rebuildEdges()
}

// attract adds a pointer-directed velocity bias with linear falloff:
// full strength at the pointer, zero at the influence radius.
func (f *Field) attract(p *Point) {
	dx := f.pointerX - p.X
	dy := f.pointerY - p.Y
	d := math.Hypot(dx, dy)
	if d >= f.cfg.InfluenceRadius {
		return
	}
	force := (f.cfg.InfluenceRadius - d) / f.cfg.InfluenceRadius
	p.VX += force * dx * f.cfg.MouseForce
	p.VY += force * dy * f.cfg.MouseForce
}

// Points returns the live point slice for the current frame. The view
// is valid until the next Step or Resize.
func (f *Field) Points() []Point {
	return f.points
}

// Edges returns the edge set built by the last Step.
func (f *Field) Edges() []Edge {
	return f.edges
}

// Activity returns the mean point speed, used by the ambient drone to
// scale its gain. Zero for an empty field.
func (f *Field) Activity() float64 {
	if len(f.points) == 0 {
		return 0
	}
	var sum float64
	for i := range f.points {
		sum += math.Hypot(f.points[i].VX, f.points[i].VY)
	}
	return sum / float64(len(f.points))
}

// Config returns the field's tuning.
func (f *Field) Config() Config {
	return f.cfg
}

// Size returns the current surface dimensions.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

func (f *Field) uniform(min, max float64) float64 {
	return min + f.rng.Float64()*(max-min)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
