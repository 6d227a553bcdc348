// Package epa implements the Expanding Polytope Algorithm for computing the
// penetration vector of two overlapping convex 2D shapes.
//
// EPA runs after GJK detects a collision. Starting from GJK's terminal
// simplex it expands a polytope toward the boundary of the Minkowski
// difference, converging on the edge closest to the origin. That edge's
// normal and distance form the minimum translation vector (MTV) separating
// the shapes.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation
//     on 3D Game Objects" (2001)
package epa

import (
	"fmt"
	"math"

	"github.com/avasse/overlap/geom"
	"github.com/avasse/overlap/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxIterations limits polytope expansion to guarantee termination.
	// Typical convergence: 3-10 iterations for simple shapes. If the limit
	// is reached, EPA returns its best estimate instead of failing.
	MaxIterations = 32

	// ConvergenceTolerance defines when EPA has converged: when a new
	// support point improves the closest-edge distance by no more than this
	// threshold, the closest edge of the Minkowski difference is found.
	// Lower values = more precision but slower convergence.
	ConvergenceTolerance = 1e-4
)

// EPA computes the minimum translation vector separating two overlapping
// convex shapes.
//
// Algorithm overview:
//  1. Seed the polytope with the terminal GJK simplex (3 points enclosing
//     the origin) and fix the winding from its signed area
//  2. Find the polytope edge closest to the origin
//  3. Get a support point of the Minkowski difference along that edge's
//     outward normal
//  4. If the support point is no further than the edge (within tolerance),
//     the edge lies on the difference's boundary → normal * distance is the
//     penetration vector
//  5. Otherwise insert the support point, splitting the edge, and repeat
//
// Exhausting the iteration cap is not an error: the best estimate from the
// final iteration is returned. Translating shape A by the negated result (or
// B by the result) separates the shapes.
//
// Returns an error only for a precondition violation: the simplex must hold
// exactly 3 points, as produced by a successful GJK run.
func EPA(a, b geom.Shape, simplex *gjk.Simplex) (mgl64.Vec2, error) {
	if simplex.Count != 3 {
		return mgl64.Vec2{}, fmt.Errorf("invalid simplex count: %d (expected 3)", simplex.Count)
	}

	polytope := polytopePool.Get().(*Polytope)
	defer polytopePool.Put(polytope)
	polytope.Reset()
	polytope.seed(simplex)

	// Winding is fixed once; insertions preserve the vertex ordering so all
	// edge normals stay outward
	winding := polytope.winding()

	var penetration mgl64.Vec2
	for i := 0; i < MaxIterations; i++ {
		edge := closestEdge(winding, polytope.vertices)

		support := gjk.MinkowskiSupport(a, b, edge.Normal)
		distance := support.Dot(edge.Normal)

		// Current best estimate of the minimum translation vector
		penetration = edge.Normal.Mul(distance)

		if math.Abs(distance-edge.Distance) <= ConvergenceTolerance {
			return penetration, nil
		}

		polytope.insert(edge.Index, support)
	}

	// The cap was exhausted without convergence (rare, typically curved
	// shapes at awkward angles). The approximate vector is still usable.
	return penetration, nil
}
