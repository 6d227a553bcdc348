package epa

import (
	"sync"

	"github.com/avasse/overlap/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// Small initial capacity - grows dynamically as the polytope expands.
// Each EPA iteration adds at most one vertex, so MaxIterations bounds the
// final size.
const polytopeInitialCapacity = 8

// Polytope is the growable vertex ring EPA expands toward the boundary of
// the Minkowski difference. It is owned exclusively by one EPA invocation.
type Polytope struct {
	vertices []mgl64.Vec2
}

// polytopePool recycles polytope buffers across EPA invocations, the same
// scheme the simplex pool uses on the GJK side.
var polytopePool = sync.Pool{
	New: func() interface{} {
		return &Polytope{
			vertices: make([]mgl64.Vec2, 0, polytopeInitialCapacity),
		}
	},
}

// Reset prepares the polytope for reuse without reallocation.
func (p *Polytope) Reset() {
	p.vertices = p.vertices[:0]
}

// seed initializes the polytope with the terminal GJK simplex points,
// preserving their order.
func (p *Polytope) seed(simplex *gjk.Simplex) {
	p.vertices = append(p.vertices, simplex.Points[:simplex.Count]...)
}

// winding determines the rotational ordering of the seeded triangle from its
// signed area, accumulated as Σ (x[next]-x[cur])*(y[next]+y[cur]).
// A non-negative sum means clockwise. Computed once, before any expansion.
func (p *Polytope) winding() Winding {
	e0 := (p.vertices[1].X() - p.vertices[0].X()) * (p.vertices[1].Y() + p.vertices[0].Y())
	e1 := (p.vertices[2].X() - p.vertices[1].X()) * (p.vertices[2].Y() + p.vertices[1].Y())
	e2 := (p.vertices[0].X() - p.vertices[2].X()) * (p.vertices[0].Y() + p.vertices[2].Y())

	if e0+e1+e2 >= 0 {
		return Clockwise
	}

	return CounterClockwise
}

// insert grows the polytope by splicing point in at index i, keeping the
// ring's winding intact.
func (p *Polytope) insert(i int, point mgl64.Vec2) {
	p.vertices = append(p.vertices, mgl64.Vec2{})
	copy(p.vertices[i+1:], p.vertices[i:])
	p.vertices[i] = point
}
