package vec2

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     mgl64.Vec2
		expected float64
	}{
		{
			name:     "basis_vectors",
			a:        mgl64.Vec2{1, 0},
			b:        mgl64.Vec2{0, 1},
			expected: 1.0,
		},
		{
			name:     "reversed_basis",
			a:        mgl64.Vec2{0, 1},
			b:        mgl64.Vec2{1, 0},
			expected: -1.0,
		},
		{
			name:     "general_case",
			a:        mgl64.Vec2{2, 3},
			b:        mgl64.Vec2{5, 6},
			expected: -3.0,
		},
		{
			name:     "parallel_vectors",
			a:        mgl64.Vec2{2, 4},
			b:        mgl64.Vec2{1, 2},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cross(tt.a, tt.b); got != tt.expected {
				t.Errorf("Cross(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestTripleProduct(t *testing.T) {
	t.Run("general_case", func(t *testing.T) {
		a := mgl64.Vec2{4, 3}
		b := mgl64.Vec2{5, 7}
		c := mgl64.Vec2{4, 6}

		expected := mgl64.Vec2{-78, 52}
		if got := TripleProduct(a, b, c); got != expected {
			t.Errorf("TripleProduct(%v, %v, %v) = %v, want %v", a, b, c, got, expected)
		}
	})

	t.Run("colinear_falls_back_to_perpendicular", func(t *testing.T) {
		a := mgl64.Vec2{1, 2}
		b := mgl64.Vec2{2, 4}

		got := TripleProduct(a, b, a)
		expected := Perp(a)
		if got != expected {
			t.Errorf("expected fallback to Perp(a) = %v, got %v", expected, got)
		}

		// The fallback must still be perpendicular to a
		if dot := got.Dot(a); dot != 0 {
			t.Errorf("fallback is not perpendicular: dot = %v", dot)
		}
	})
}

func TestPerp(t *testing.T) {
	v := mgl64.Vec2{3, 4}
	got := Perp(v)

	if got != (mgl64.Vec2{4, -3}) {
		t.Errorf("Perp(%v) = %v, want (4, -3)", v, got)
	}
	if dot := got.Dot(v); dot != 0 {
		t.Errorf("Perp result not perpendicular: dot = %v", dot)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        mgl64.Vec2
		angle    float64
		expected mgl64.Vec2
	}{
		{
			name:     "quarter_turn",
			v:        mgl64.Vec2{1, 0},
			angle:    math.Pi / 2,
			expected: mgl64.Vec2{0, 1},
		},
		{
			name:     "half_turn",
			v:        mgl64.Vec2{1, 2},
			angle:    math.Pi,
			expected: mgl64.Vec2{-1, -2},
		},
		{
			name:     "zero_angle",
			v:        mgl64.Vec2{3, -4},
			angle:    0,
			expected: mgl64.Vec2{3, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.v, tt.angle)
			if !got.ApproxEqualThreshold(tt.expected, 1e-12) {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.v, tt.angle, got, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := mgl64.Vec2{0, 0}
	b := mgl64.Vec2{2, 4}

	tests := []struct {
		name     string
		t        float64
		expected mgl64.Vec2
	}{
		{name: "start", t: 0.0, expected: a},
		{name: "end", t: 1.0, expected: b},
		{name: "midpoint", t: 0.5, expected: mgl64.Vec2{1, 2}},
		{name: "extrapolation", t: 2.0, expected: mgl64.Vec2{4, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(a, b, tt.t); got != tt.expected {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", a, b, tt.t, got, tt.expected)
			}
		})
	}
}

func TestMulElem(t *testing.T) {
	got := MulElem(mgl64.Vec2{2, 3}, mgl64.Vec2{4, 5})
	if got != (mgl64.Vec2{8, 15}) {
		t.Errorf("MulElem = %v, want (8, 15)", got)
	}
}

func TestDivElem(t *testing.T) {
	got := DivElem(mgl64.Vec2{8, 15}, mgl64.Vec2{4, 5})
	if got != (mgl64.Vec2{2, 3}) {
		t.Errorf("DivElem = %v, want (2, 3)", got)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name     string
		v        mgl64.Vec2
		expected float64
	}{
		{name: "positive_x", v: mgl64.Vec2{1, 0}, expected: 0},
		{name: "positive_y", v: mgl64.Vec2{0, 1}, expected: math.Pi / 2},
		{name: "negative_x", v: mgl64.Vec2{-1, 0}, expected: math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.v); !mgl64.FloatEqualThreshold(got, tt.expected, 1e-12) {
				t.Errorf("Angle(%v) = %v, want %v", tt.v, got, tt.expected)
			}
		})
	}
}

func TestAngleTo(t *testing.T) {
	a := mgl64.Vec2{1, 0}
	b := mgl64.Vec2{0, 2}

	if got := AngleTo(a, b); !mgl64.FloatEqualThreshold(got, math.Pi/2, 1e-12) {
		t.Errorf("AngleTo(%v, %v) = %v, want pi/2", a, b, got)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(mgl64.Vec2{}) {
		t.Error("zero vector should be reported as zero")
	}
	if IsZero(mgl64.Vec2{1e-4, 0}) {
		t.Error("small but normalizable vector should not be reported as zero")
	}
	if !IsZero(mgl64.Vec2{1e-9, 1e-9}) {
		t.Error("vector below the normalization threshold should be reported as zero")
	}
}
