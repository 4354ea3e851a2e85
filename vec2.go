package dubins

import (
	"fmt"
	"math"
)

// Vec2 is a 2D Cartesian vector.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Coord returns the i-th coordinate of the vector, 1 for x and 2 for y. Other
// values of i are reported to the package logger and yield 0.
func (v Vec2) Coord(i int) float64 {
	switch i {
	case 1:
		return v.X
	case 2:
		return v.Y
	default:
		Permissive.report(&RangeError{Op: "Vec2.Coord", Value: float64(i), Min: 1, Max: 2})
		return 0
	}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Orientation returns the angle in radians, in (-π, π], between ⟨1, 0⟩ and
// the vector. The zero vector (up to [SmallDouble]) has orientation 0.
func (v Vec2) Orientation() float64 {
	if IsZero(v.X) && IsZero(v.Y) {
		return 0
	}
	return Mod2Pi(math.Atan2(v.Y, v.X))
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Normalize returns a vector of magnitude 1.0 with the same angle as o.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Equal reports whether both coordinates of v and o differ by less than
// [SmallDouble].
func (v Vec2) Equal(o Vec2) bool {
	return nearlyEqual(v.X, o.X) && nearlyEqual(v.Y, o.Y)
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

// Div divides the vector by f. A factor within [SmallDouble] of zero is
// reported to the package logger and replaced by ±SmallDouble.
func (v Vec2) Div(f float64) Vec2 {
	if IsZero(f) {
		Permissive.report(&RangeError{Op: "Vec2.Div", Value: f, Min: SmallDouble, Max: math.Inf(1)})
		f = math.Copysign(SmallDouble, f)
	}
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Rotate returns the vector rotated by th radians, anti-clockwise.
func (v Vec2) Rotate(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// SymmetryOx returns the reflection of the vector across the x axis.
func (v Vec2) SymmetryOx() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// SymmetryOy returns the reflection of the vector across the y axis.
func (v Vec2) SymmetryOy() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}
