// Package vec2 provides the 2D vector operations that mgl64.Vec2 does not
// carry itself: scalar cross product, the vector triple product specialized
// to 2D, perpendiculars, rotation by angle, interpolation and componentwise
// arithmetic.
//
// mgl64.Vec2 is used as the vector type everywhere in this module; it is an
// immutable value type and every operation here returns a new value.
package vec2

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cross computes the scalar z-component of the 3D cross product of two 2D
// vectors: a.x*b.y - a.y*b.x. Its sign encodes the winding of b relative to a.
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// TripleProduct computes the vector triple product (a × b) × c collapsed to
// 2D. The result is perpendicular to c and, for the GJK line case, points
// from the line toward the origin.
//
// If the product is exactly zero (a and b colinear), the perpendicular of a
// is returned instead so callers always get a usable search direction.
func TripleProduct(a, b, c mgl64.Vec2) mgl64.Vec2 {
	z := Cross(a, b)

	prod := mgl64.Vec2{-c.Y() * z, c.X() * z}
	if prod == (mgl64.Vec2{}) {
		return Perp(a)
	}

	return prod
}

// Perp returns the clockwise perpendicular (v.y, -v.x).
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.Y(), -v.X()}
}

// Rotate rotates v counter-clockwise by angle radians.
func Rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// Lerp linearly interpolates between a and b: a + t*(b-a).
// t=0 yields a, t=1 yields b; t outside [0,1] extrapolates.
func Lerp(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// MulElem multiplies two vectors componentwise.
func MulElem(a, b mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{a.X() * b.X(), a.Y() * b.Y()}
}

// DivElem divides two vectors componentwise. Zero components in b propagate
// Inf/NaN, as with plain float64 division.
func DivElem(a, b mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{a.X() / b.X(), a.Y() / b.Y()}
}

// Angle returns the angle of v in radians, measured from the +X axis.
func Angle(v mgl64.Vec2) float64 {
	return math.Atan2(v.Y(), v.X())
}

// AngleTo returns the unsigned angle in radians between a and b.
// Undefined (NaN) if either vector has zero length.
func AngleTo(a, b mgl64.Vec2) float64 {
	return math.Acos(a.Dot(b) / (a.Len() * b.Len()))
}

// IsZero reports whether v is too short to normalize. Normalizing a vector
// for which IsZero returns true produces Inf/NaN components; every normalize
// in this module is guarded by this check.
func IsZero(v mgl64.Vec2) bool {
	return v.LenSqr() < 1e-16
}
