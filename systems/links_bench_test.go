package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/driftfield/components"
)

func benchPoints(n int) []components.Position {
	rng := rand.New(rand.NewSource(1))
	pts := make([]components.Position, n)
	for i := range pts {
		pts[i] = components.Position{X: rng.Float32() * 1920, Y: rng.Float32() * 1080}
	}
	return pts
}

// Benchmark the O(n^2) reference at the default population
func BenchmarkLinksPairwise80(b *testing.B) {
	pts := benchPoints(80)
	var dst []Link
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		dst = PairwiseLinks(dst[:0], pts, 120)
	}
}

func BenchmarkLinksGrid80(b *testing.B) {
	pts := benchPoints(80)
	g := NewSpatialGrid(1920, 1080, 120)
	var dst []Link
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		g.Reset(1920, 1080, 120)
		for i, p := range pts {
			g.Insert(i, p.X, p.Y)
		}
		dst = g.LinksInto(dst[:0], pts, 120)
	}
}

// Benchmark at a population where the grid pays off
func BenchmarkLinksPairwise2000(b *testing.B) {
	pts := benchPoints(2000)
	var dst []Link
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		dst = PairwiseLinks(dst[:0], pts, 120)
	}
}

func BenchmarkLinksGrid2000(b *testing.B) {
	pts := benchPoints(2000)
	g := NewSpatialGrid(1920, 1080, 120)
	var dst []Link
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		g.Reset(1920, 1080, 120)
		for i, p := range pts {
			g.Insert(i, p.X, p.Y)
		}
		dst = g.LinksInto(dst[:0], pts, 120)
	}
}

func BenchmarkFrame80(b *testing.B) {
	f := NewField(testParams(80), Viewport{Width: 1920, Height: 1080}, rand.New(rand.NewSource(1)))
	r := &recorder{}
	ptr := PointerAt(960, 540)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		f.Frame(ptr, Viewport{Width: 1920, Height: 1080}, r)
	}
}
