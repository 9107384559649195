package systems

import (
	"image/color"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/driftfield/components"
	"github.com/pthm-cable/driftfield/config"
)

// Surface is the drawing target of a field.
type Surface interface {
	// Clear wipes the region covered by vp.
	Clear(vp Viewport)
	FillCircle(x, y, radius float32, c color.RGBA)
	Line(x1, y1, x2, y2 float32, c color.RGBA, width float32)
}

// Params holds everything a field needs to seed, move and draw particles.
type Params struct {
	Count            int
	Motion           MotionParams
	ConnectionRadius float32
	MinRadius        float32
	MaxRadius        float32
	MaxDrift         float32
	ParticleColor    color.RGBA
	LinkColor        color.RGBA
	LinkWidth        float32
	LinkMode         string
}

// ParamsFromConfig builds field params from a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	f := cfg.Field
	return Params{
		Count: f.Count,
		Motion: MotionParams{
			AttractionRadius: float32(f.AttractionRadius),
			PullDivisor:      float32(f.PullDivisor),
		},
		ConnectionRadius: float32(f.ConnectionRadius),
		MinRadius:        float32(f.MinRadius),
		MaxRadius:        float32(f.MaxRadius),
		MaxDrift:         float32(f.MaxDrift),
		ParticleColor:    cfg.Derived.ParticleColor,
		LinkColor:        cfg.Derived.LinkColor,
		LinkWidth:        float32(f.LinkWidth),
		LinkMode:         f.LinkMode,
	}
}

// Particle is a copy of one particle's state.
type Particle struct {
	Pos    components.Position
	Origin components.Origin
	Drift  components.Drift
	Radius float32
}

// FrameResult summarizes one frame.
type FrameResult struct {
	Particles  int
	Influenced int
	Links      int
}

// Field owns a fixed population of particles stored in an ECS world.
// It is not safe for concurrent use; all calls belong to the frame loop.
type Field struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Origin, components.Drift, components.Body]
	filter *ecs.Filter4[components.Position, components.Origin, components.Drift, components.Body]

	rng      *rand.Rand
	params   Params
	viewport Viewport
	count    int

	grid *SpatialGrid

	// Per-frame scratch, reused across frames
	points   []components.Position
	radii    []float32
	links    []Link
	entities []ecs.Entity
}

// NewField creates a field seeded with params.Count particles inside vp.
func NewField(params Params, vp Viewport, rng *rand.Rand) *Field {
	world := ecs.NewWorld()
	f := &Field{
		world:    world,
		mapper:   ecs.NewMap4[components.Position, components.Origin, components.Drift, components.Body](world),
		filter:   ecs.NewFilter4[components.Position, components.Origin, components.Drift, components.Body](world),
		rng:      rng,
		params:   params,
		viewport: vp,
		grid:     NewSpatialGrid(vp.Width, vp.Height, params.ConnectionRadius),
	}
	f.Init(params.Count)
	return f
}

// Init discards all particles and creates count new ones inside the current viewport.
// Negative counts are treated as zero.
func (f *Field) Init(count int) {
	if count < 0 {
		count = 0
	}
	f.clear()

	p := f.params
	for i := 0; i < count; i++ {
		x := uniform(f.rng, 0, f.viewport.Width)
		y := uniform(f.rng, 0, f.viewport.Height)
		pos := components.Position{X: x, Y: y}
		origin := components.Origin{X: x, Y: y}
		body := components.Body{Radius: uniform(f.rng, p.MinRadius, p.MaxRadius)}
		drift := components.Drift{
			X: uniform(f.rng, -p.MaxDrift, p.MaxDrift),
			Y: uniform(f.rng, -p.MaxDrift, p.MaxDrift),
		}
		f.mapper.NewEntity(&pos, &origin, &drift, &body)
	}
	f.count = count
}

// Restore replaces all particles with the given states.
func (f *Field) Restore(particles []Particle) {
	f.clear()
	for i := range particles {
		p := particles[i]
		body := components.Body{Radius: p.Radius}
		f.mapper.NewEntity(&p.Pos, &p.Origin, &p.Drift, &body)
	}
	f.count = len(particles)
}

// clear removes every particle entity.
func (f *Field) clear() {
	f.entities = f.entities[:0]
	query := f.filter.Query()
	for query.Next() {
		f.entities = append(f.entities, query.Entity())
	}
	for _, e := range f.entities {
		f.world.RemoveEntity(e)
	}
	f.entities = f.entities[:0]
	f.count = 0
}

// Count returns the number of live particles.
func (f *Field) Count() int {
	return f.count
}

// Params returns the current parameters.
func (f *Field) Params() Params {
	return f.params
}

// Viewport returns the extent new particles are seeded in.
func (f *Field) Viewport() Viewport {
	return f.viewport
}

// SetViewport records a new extent. Existing particles are not moved.
func (f *Field) SetViewport(vp Viewport) {
	f.viewport = vp
}

// SetParams swaps tuning parameters. A changed count reinitializes the field;
// every other change applies from the next frame on.
func (f *Field) SetParams(p Params) {
	reinit := p.Count != f.params.Count
	f.params = p
	if reinit {
		f.Init(p.Count)
	}
}

// Advance moves every particle one frame and returns how many were pulled by the pointer.
func (f *Field) Advance(ptr Pointer) int {
	influenced := 0
	query := f.filter.Query()
	for query.Next() {
		pos, _, drift, _ := query.Get()
		next, pulled := Step(*pos, *drift, ptr, f.params.Motion)
		*pos = next
		if pulled {
			influenced++
		}
	}
	return influenced
}

// ResetToOrigin moves every particle back to where it was created.
func (f *Field) ResetToOrigin() {
	query := f.filter.Query()
	for query.Next() {
		pos, origin, _, _ := query.Get()
		pos.X, pos.Y = origin.X, origin.Y
	}
}

// Draw clears the surface, draws every particle and the links between
// particles closer than the connection radius. It returns the link count.
func (f *Field) Draw(s Surface, vp Viewport) int {
	s.Clear(vp)

	f.gather()
	p := f.params
	for i, pos := range f.points {
		s.FillCircle(pos.X, pos.Y, f.radii[i], p.ParticleColor)
	}

	f.links = f.linksInto(f.links[:0])
	for _, l := range f.links {
		a, b := f.points[l.A], f.points[l.B]
		s.Line(a.X, a.Y, b.X, b.Y, p.LinkColor, p.LinkWidth)
	}
	return len(f.links)
}

// Frame runs one animation frame: move, clear, draw particles, draw links.
func (f *Field) Frame(ptr Pointer, vp Viewport, s Surface) FrameResult {
	influenced := f.Advance(ptr)
	links := f.Draw(s, vp)
	return FrameResult{Particles: f.count, Influenced: influenced, Links: links}
}

// Links appends the current particle links to dst using the configured strategy.
// Indices refer to the order returned by Particles.
func (f *Field) Links(dst []Link) []Link {
	f.gather()
	return f.linksInto(dst)
}

// linksInto finds links over the gathered points.
func (f *Field) linksInto(dst []Link) []Link {
	r := f.params.ConnectionRadius
	if r <= 0 || len(f.points) < 2 {
		return dst
	}
	if f.params.LinkMode == config.LinkModePairwise {
		return PairwiseLinks(dst, f.points, r)
	}

	f.grid.Reset(f.viewport.Width, f.viewport.Height, r)
	for i, pos := range f.points {
		f.grid.Insert(i, pos.X, pos.Y)
	}
	return f.grid.LinksInto(dst, f.points, r)
}

// Particles returns a copy of every particle's state in iteration order.
func (f *Field) Particles() []Particle {
	out := make([]Particle, 0, f.count)
	query := f.filter.Query()
	for query.Next() {
		pos, origin, drift, body := query.Get()
		out = append(out, Particle{Pos: *pos, Origin: *origin, Drift: *drift, Radius: body.Radius})
	}
	return out
}

// gather copies positions and radii into the scratch buffers.
func (f *Field) gather() {
	f.points = f.points[:0]
	f.radii = f.radii[:0]
	query := f.filter.Query()
	for query.Next() {
		pos, _, _, body := query.Get()
		f.points = append(f.points, *pos)
		f.radii = append(f.radii, body.Radius)
	}
}
