package components

// Body holds the drawn size of a particle.
type Body struct {
	Radius float32
}
