package field

// Point is a single animated dot. BaseVX and BaseVY hold the baseline
// velocity assigned at creation; Step relaxes VX and VY back toward
// them after any pointer perturbation.
type Point struct {
	X, Y           float64
	Radius         float64
	Opacity        float64
	VX, VY         float64
	BaseVX, BaseVY float64
}

// Edge is a transient line between two points currently closer than
// MaxDistance. A and B index into the field's point slice with A < B.
// Edges live for one frame and are rebuilt from scratch on every Step.
type Edge struct {
	A, B    int
	Opacity float64
}
