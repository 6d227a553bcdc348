package epa

import (
	"math"

	"github.com/avasse/overlap/vec2"
	"github.com/go-gl/mathgl/mgl64"
)

// Winding is the rotational ordering of the polytope's vertices. It is
// computed once from the signed area of the initial simplex and stays fixed
// for the whole expansion, so edge normals are consistently outward.
type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
)

// Edge describes the polytope edge closest to the origin.
//
// Normal is the outward unit normal of the edge, Distance its signed distance
// from the origin, and Index the position at which a new support point must
// be inserted to split this edge.
type Edge struct {
	Distance float64
	Normal   mgl64.Vec2
	Index    int
}

// closestEdge scans every consecutive vertex pair and returns the edge with
// the minimum signed distance from the origin. The outward normal is the edge
// vector rotated 90° according to the fixed winding; the strict minimum keeps
// the first edge encountered.
func closestEdge(winding Winding, vertices []mgl64.Vec2) Edge {
	closest := Edge{Distance: math.MaxFloat64}

	for i := 0; i < len(vertices); i++ {
		j := i + 1
		if j >= len(vertices) {
			j = 0
		}

		edge := vertices[j].Sub(vertices[i])

		var norm mgl64.Vec2
		switch winding {
		case Clockwise:
			norm = mgl64.Vec2{-edge.Y(), edge.X()}
		case CounterClockwise:
			norm = vec2.Perp(edge)
		}
		norm = norm.Normalize()

		if dist := norm.Dot(vertices[i]); dist < closest.Distance {
			closest = Edge{Distance: dist, Normal: norm, Index: j}
		}
	}

	return closest
}
