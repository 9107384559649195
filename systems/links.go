package systems

import "github.com/pthm-cable/driftfield/components"

// Link joins two particles by index, with A < B.
type Link struct {
	A, B   int
	DistSq float32
}

// PairwiseLinks appends every pair of pts closer than radius to dst.
// This is the O(n^2) reference the grid search must agree with.
func PairwiseLinks(dst []Link, pts []components.Position, radius float32) []Link {
	radiusSq := radius * radius
	for a := 0; a < len(pts); a++ {
		for b := a + 1; b < len(pts); b++ {
			dst = appendLink(dst, pts, a, b, radiusSq)
		}
	}
	return dst
}

// appendLink appends (a, b) if the points are strictly closer than sqrt(radiusSq).
func appendLink(dst []Link, pts []components.Position, a, b int, radiusSq float32) []Link {
	d := distanceSq(pts[a].X, pts[a].Y, pts[b].X, pts[b].Y)
	if d >= radiusSq {
		return dst
	}
	if a > b {
		a, b = b, a
	}
	return append(dst, Link{A: a, B: b, DistSq: d})
}
