package systems

import (
	"math"
	"math/rand"
)

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// uniform returns a value in [lo, hi). Float32 rounding can land exactly on
// hi for large spans, so the result is pulled back below it.
func uniform(rng *rand.Rand, lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	v := lo + rng.Float32()*(hi-lo)
	if v >= hi {
		v = math.Nextafter32(hi, lo)
	}
	return v
}
