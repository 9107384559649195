// Package components defines the ECS components of a particle.
package components

// Position represents a particle's current viewport position.
type Position struct {
	X, Y float32
}

// Origin is the position a particle was created at.
type Origin struct {
	X, Y float32
}

// Drift is the fixed per-frame velocity applied outside pointer influence.
type Drift struct {
	X, Y float32
}
