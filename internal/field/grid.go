package field

import "math"

// cellKey addresses a spatial-hash bucket. Cell size equals
// MaxDistance, so any pair within range sits in the same or an
// adjacent cell.
type cellKey struct {
	cx, cy int
}

// rebuildEdges recomputes the proximity edges for the current frame.
// It buckets points into a grid and compares only neighboring cells,
// which emits exactly the brute-force edge set — unordered pairs with
// strict d < MaxDistance, no self or duplicate pairs — without the
// full O(n²) scan.
func (f *Field) rebuildEdges() {
	f.edges = f.edges[:0]
	if len(f.points) < 2 || f.cfg.MaxDistance <= 0 {
		return
	}

	cell := f.cfg.MaxDistance
	buckets := make(map[cellKey][]int, len(f.points))
	for i := range f.points {
		k := cellKey{
			cx: int(math.Floor(f.points[i].X / cell)),
			cy: int(math.Floor(f.points[i].Y / cell)),
		}
		buckets[k] = append(buckets[k], i)
	}

	for i := range f.points {
		p := &f.points[i]
		kx := int(math.Floor(p.X / cell))
		ky := int(math.Floor(p.Y / cell))
		for cx := kx - 1; cx <= kx+1; cx++ {
			for cy := ky - 1; cy <= ky+1; cy++ {
				for _, j := range buckets[cellKey{cx: cx, cy: cy}] {
					// j > i keeps each unordered pair once.
					if j <= i {
						continue
					}
					q := &f.points[j]
					d := math.Hypot(p.X-q.X, p.Y-q.Y)
					if d < cell {
						f.edges = append(f.edges, Edge{
							A:       i,
							B:       j,
							Opacity: (cell - d) / cell * edgeOpacityScale,
						})
					}
				}
			}
		}
	}
}
