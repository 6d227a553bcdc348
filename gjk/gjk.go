// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for
// collision detection between convex 2D shapes.
//
// GJK detects whether two convex shapes overlap by testing if their Minkowski
// difference contains the origin. The algorithm builds a simplex incrementally,
// converging toward the origin in typically 3-6 iterations.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance
//     Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"fmt"
	"sync"

	"github.com/avasse/overlap/geom"
	"github.com/avasse/overlap/vec2"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxIterations limits the evolution loop to prevent infinite cycling on
// degenerate touching configurations. Typical convergence: 3-6 iterations.
const MaxIterations = 32

// Simplex is an ordered set of 0-3 points in the Minkowski difference space.
// The simplex evolves during GJK iterations; points are appended newest-last,
// so Points[0] is always the oldest surviving vertex.
// Size progression: 1 point → 2 points (line) → 3 points (triangle).
type Simplex struct {
	Points [3]mgl64.Vec2
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

// push appends a point as the newest simplex vertex.
func (s *Simplex) push(point mgl64.Vec2) {
	s.Points[s.Count] = point
	s.Count++
}

// remove drops the vertex at index i, shifting newer vertices down.
func (s *Simplex) remove(i int) {
	copy(s.Points[i:], s.Points[i+1:s.Count])
	s.Count--
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// MinkowskiSupport computes a support point in the Minkowski difference (A - B).
//
// The Minkowski difference A - B is the set of all vectors (a - b) where
// a ∈ A and b ∈ B; the two shapes intersect iff it contains the origin.
// Only the extreme points in a given direction are needed:
//
//	support(A, direction) - support(B, -direction)
//
// This is the fundamental query that makes GJK work for any convex shape -
// shapes only need to implement Support(), not expose their full geometry.
func MinkowskiSupport(a, b geom.Shape, direction mgl64.Vec2) mgl64.Vec2 {
	supportA := a.Support(direction)
	supportB := b.Support(direction.Mul(-1))

	return supportA.Sub(supportB)
}

// GJK performs the intersection test between two convex shapes.
//
// The simplex evolves by size:
//   - 0 points: search from A's centroid toward B's centroid
//   - 1 point: search the opposite way
//   - 2 points (line): search perpendicular to the line, toward the origin,
//     via the vector triple product
//   - 3 points (triangle): test the regions outside edges ab and ac; drop
//     the vertex opposite the region containing the origin, or terminate if
//     the origin is inside the triangle
//
// After each direction update a new Minkowski support point is appended. If
// it fails to make progress past the origin along the search direction, the
// shapes are proven separated.
//
// Returns true if the shapes intersect. On success the simplex holds exactly
// 3 points enclosing the origin, which EPA uses as its initial polytope.
func GJK(a, b geom.Shape, simplex *Simplex) bool {
	var direction mgl64.Vec2

	for i := 0; i < MaxIterations; i++ {
		switch simplex.Count {
		case 0:
			// Initial direction toward the other shape
			direction = b.Centroid().Sub(a.Centroid())
			if vec2.IsZero(direction) {
				direction = mgl64.Vec2{1, 0} // Fallback if centroids are identical
			}
		case 1:
			// Search the opposite way for the second point
			direction = direction.Mul(-1)
		case 2:
			b := simplex.Points[1]
			c := simplex.Points[0]

			cb := b.Sub(c)
			c0 := c.Mul(-1)

			// Perpendicular to cb, pointing toward the origin
			direction = vec2.TripleProduct(cb, c0, cb)
		case 3:
			a := simplex.Points[2] // Most recent point
			b := simplex.Points[1]
			c := simplex.Points[0]

			a0 := a.Mul(-1)
			ab := b.Sub(a)
			ac := c.Sub(a)

			// Edge perpendiculars, each pointing away from the third vertex
			abPerp := vec2.TripleProduct(ac, ab, ab)
			acPerp := vec2.TripleProduct(ab, ac, ac)

			if abPerp.Dot(a0) > 0 {
				// Origin is outside edge ab: drop c, search along abPerp
				simplex.remove(0)
				direction = abPerp
			} else if acPerp.Dot(a0) > 0 {
				// Origin is outside edge ac: drop b, search along acPerp
				simplex.remove(1)
				direction = acPerp
			} else {
				// Origin is inside both edges, so inside the triangle
				return true
			}
		default:
			// Unreachable with correct transitions: signals a bug in the
			// state machine, not a user error
			panic(fmt.Sprintf("gjk: invalid simplex size %d", simplex.Count))
		}

		// Test whether the new support passes the origin in the search
		// direction. If it cannot, the origin is unreachable and the shapes
		// are separated. This is the key test that proves separation without
		// building the full Minkowski difference.
		newPoint := MinkowskiSupport(a, b, direction)
		simplex.push(newPoint)

		if direction.Dot(newPoint) < 0 || direction == (mgl64.Vec2{}) {
			return false
		}
	}

	// Iteration cap reached (degenerate touching configuration that keeps
	// producing zero-progress supports); report no intersection
	return false
}
