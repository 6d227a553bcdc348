// Package geom defines the convex shape contract consumed by the collision
// algorithms, and its two concrete variants: Circle and Polygon.
//
// Shapes are immutable value objects: they are constructed once, validated at
// construction, and only read during collision queries. Concurrent queries
// against the same shape instances are safe because nothing is ever written.
package geom

import (
	"fmt"
	"math"

	"github.com/avasse/overlap/vec2"
	"github.com/go-gl/mathgl/mgl64"
)

// Shape is the capability set a convex shape must implement to participate
// in collision queries.
//
// Support is the only primitive GJK and EPA need from a shape: for a given
// direction it returns a boundary point maximizing the projection onto that
// direction. Centroid seeds GJK's initial search direction. Area is the
// signed area of the shape.
type Shape interface {
	// Support returns a point on or in the shape that maximizes the dot
	// product with direction. Tie-breaking must be deterministic for a
	// given shape instance.
	Support(direction mgl64.Vec2) mgl64.Vec2
	Centroid() mgl64.Vec2
	Area() float64
	// Translate returns a copy of the shape shifted by offset.
	Translate(offset mgl64.Vec2) Shape
}

// Circle is a convex shape defined by a center point and a radius.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// NewCircle validates and builds a Circle. The radius must not be negative.
func NewCircle(center mgl64.Vec2, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, fmt.Errorf("invalid circle radius: %v (must be >= 0)", radius)
	}

	return Circle{Center: center, Radius: radius}, nil
}

// Support returns the point on the circle boundary furthest along direction.
// A zero-length direction cannot be normalized; it is resolved
// deterministically to the +X axis.
func (c Circle) Support(direction mgl64.Vec2) mgl64.Vec2 {
	if vec2.IsZero(direction) {
		direction = mgl64.Vec2{1, 0}
	}

	return c.Center.Add(direction.Normalize().Mul(c.Radius))
}

func (c Circle) Centroid() mgl64.Vec2 {
	return c.Center
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Translate(offset mgl64.Vec2) Shape {
	return Circle{Center: c.Center.Add(offset), Radius: c.Radius}
}

// Polygon is a convex shape defined by at least 3 ordered vertices.
// The input winding order is not assumed: the algorithms only rely on the
// winding computed from the signed area.
type Polygon struct {
	vertices []mgl64.Vec2
}

// NewPolygon validates and builds a Polygon from an ordered vertex sequence.
// It rejects fewer than 3 vertices and degenerate zero-area polygons, whose
// centroid is undefined.
//
// The vertices are copied; the caller keeps ownership of the input slice.
func NewPolygon(vertices []mgl64.Vec2) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("invalid polygon: %d vertices (minimum 3)", len(vertices))
	}

	p := Polygon{vertices: append([]mgl64.Vec2(nil), vertices...)}
	if math.Abs(p.Area()) < 1e-12 {
		return Polygon{}, fmt.Errorf("invalid polygon: zero area")
	}

	return p, nil
}

// Vertices returns the polygon's vertex sequence. The returned slice must
// not be modified.
func (p Polygon) Vertices() []mgl64.Vec2 {
	return p.vertices
}

// Support scans all vertices and returns the one with the strictly maximal
// projection onto direction. Ties keep the first-encountered vertex, which
// makes the result deterministic for a given polygon instance.
func (p Polygon) Support(direction mgl64.Vec2) mgl64.Vec2 {
	maxDist := -math.MaxFloat64
	var maxVertex mgl64.Vec2

	for _, v := range p.vertices {
		if dist := v.Dot(direction); dist > maxDist {
			maxDist = dist
			maxVertex = v
		}
	}

	return maxVertex
}

// Area computes the signed area with the shoelace formula. The sign encodes
// the winding: positive for counter-clockwise vertex order, negative for
// clockwise.
func (p Polygon) Area() float64 {
	area := 0.0

	i := len(p.vertices) - 1
	for j := 0; j < len(p.vertices); j++ {
		area += p.vertices[i].X()*p.vertices[j].Y() - p.vertices[j].X()*p.vertices[i].Y()
		i = j
	}

	return 0.5 * area
}

// Centroid computes the polygon centroid, normalized by 6*Area().
// Zero-area polygons are rejected at construction, so the division is safe.
func (p Polygon) Centroid() mgl64.Vec2 {
	cx, cy := 0.0, 0.0

	i := len(p.vertices) - 1
	for j := 0; j < len(p.vertices); j++ {
		c := p.vertices[i].X()*p.vertices[j].Y() - p.vertices[j].X()*p.vertices[i].Y()
		cx += c * (p.vertices[i].X() + p.vertices[j].X())
		cy += c * (p.vertices[i].Y() + p.vertices[j].Y())
		i = j
	}

	scale := 1.0 / (6.0 * p.Area())

	return mgl64.Vec2{cx * scale, cy * scale}
}

func (p Polygon) Translate(offset mgl64.Vec2) Shape {
	translated := make([]mgl64.Vec2, len(p.vertices))
	for i, v := range p.vertices {
		translated[i] = v.Add(offset)
	}

	return Polygon{vertices: translated}
}
