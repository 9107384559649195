package systems

import "math"

// Orbit geometry for the synthetic headless pointer.
const (
	orbitPeriodFrames = 600
	orbitRadiusFrac   = 0.3
)

// OrbitPointer returns a pointer circling the viewport center, one lap per
// orbitPeriodFrames frames. It stands in for a cursor when nothing is on screen.
func OrbitPointer(frame int64, vp Viewport) Pointer {
	angle := 2 * math.Pi * float64(frame%orbitPeriodFrames) / orbitPeriodFrames
	r := orbitRadiusFrac * math.Min(float64(vp.Width), float64(vp.Height))
	cx, cy := float64(vp.Width)/2, float64(vp.Height)/2
	return PointerAt(float32(cx+r*math.Cos(angle)), float32(cy+r*math.Sin(angle)))
}
