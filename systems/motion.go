package systems

import "github.com/pthm-cable/driftfield/components"

// Pointer is the last observed pointer position.
// Present is false until the pointer has entered the viewport.
type Pointer struct {
	X, Y    float32
	Present bool
}

// PointerAt returns a present pointer at (x, y).
func PointerAt(x, y float32) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// Viewport is the drawable extent.
type Viewport struct {
	Width, Height float32
}

// MotionParams tunes pointer attraction.
type MotionParams struct {
	AttractionRadius float32 // Pull applies strictly below this distance
	PullDivisor      float32 // Each frame covers 1/PullDivisor of the remaining distance
}

// Step returns a particle's next position and whether the pointer pulled it.
// Inside the attraction radius the particle closes a fixed fraction of the
// gap; outside it (or with no pointer) it moves by its drift.
func Step(pos components.Position, drift components.Drift, ptr Pointer, p MotionParams) (components.Position, bool) {
	if ptr.Present {
		r := p.AttractionRadius
		if distanceSq(pos.X, pos.Y, ptr.X, ptr.Y) < r*r {
			pos.X += (ptr.X - pos.X) / p.PullDivisor
			pos.Y += (ptr.Y - pos.Y) / p.PullDivisor
			return pos, true
		}
	}
	pos.X += drift.X
	pos.Y += drift.Y
	return pos, false
}
