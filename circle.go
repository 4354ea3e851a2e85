package dubins

import (
	"iter"
	"math"
)

// Circle is a turning circle: the circle around which the configurations
// reachable by turning as sharply as allowed are tangent.
type Circle struct {
	Center Point
	Radius float64
	// Left is true for circles traveled counterclockwise.
	Left bool
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

// PointAt returns the point of the circle at the given polar angle.
func (c Circle) PointAt(angle float64) Point {
	return c.Center.Translate(VecFromAngle(angle).Mul(c.Radius))
}

// Points returns an iterator over n+1 points evenly spread on the circle,
// the first and last being the same.
func (c Circle) Points(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := max(n, 1)
		for i := 0; i <= n; i++ {
			if !yield(c.PointAt(2 * math.Pi * float64(i) / float64(n))) {
				return
			}
		}
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	c.Center = c.Center.Translate(v)
	return c
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}
