package spvec

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane. Differences of points are vectors;
// edge directions, tangents and normals are all expressed as Vec2.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o, that is,
// the signed area of the parallelogram spanned by them.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns v rotated by 90 degrees counterclockwise (in y-up space).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// Most distance tests in this package compare squared magnitudes to avoid
// the square root.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// CosAngle returns the cosine of the angle between v and o. The result is
// NaN if either vector has zero length.
func (v Vec2) CosAngle(o Vec2) float64 {
	return v.Dot(o) / math.Sqrt(v.Hypot2()*o.Hypot2())
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}
