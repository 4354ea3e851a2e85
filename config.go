package dubins

import (
	"fmt"
	"math"
)

// OrientedConfig is the configuration of a robot moving in the plane: the
// position of its reference point and the orientation of its main axis. The
// orientation is always kept in (-π, π].
type OrientedConfig struct {
	position    Point
	orientation float64
}

// NewOrientedConfig returns the configuration at p with orientation th.
func NewOrientedConfig(p Point, th float64) OrientedConfig {
	return OrientedConfig{position: p, orientation: Mod2Pi(th)}
}

// OrPt returns the configuration at (x, y) with orientation th.
func OrPt(x, y, th float64) OrientedConfig {
	return NewOrientedConfig(Pt(x, y), th)
}

// Position returns the position of the reference point.
func (q OrientedConfig) Position() Point { return q.position }

// Orientation returns the orientation, in (-π, π].
func (q OrientedConfig) Orientation() float64 { return q.orientation }

// Direction returns the unit vector of the configuration's orientation.
func (q OrientedConfig) Direction() Vec2 { return VecFromAngle(q.orientation) }

func (q OrientedConfig) String() string {
	return fmt.Sprintf("(%g, %g, %g)", q.position.X, q.position.Y, q.orientation)
}

// Coord returns the i-th component of the configuration seen as an algebraic
// vector (x, y, θ). Other values of i are reported to the package logger and
// yield 0.
func (q OrientedConfig) Coord(i int) float64 {
	switch i {
	case 1:
		return q.position.X
	case 2:
		return q.position.Y
	case 3:
		return q.orientation
	default:
		Permissive.report(&RangeError{Op: "OrientedConfig.Coord", Value: float64(i), Min: 1, Max: 3})
		return 0
	}
}

// Frame returns the transform from q's local frame to the world frame.
func (q OrientedConfig) Frame() Affine {
	return Frame(q.position, q.orientation)
}

// Compose returns the configuration o, given in q's local frame, expressed in
// the world frame. It is the inverse of [OrientedConfig.Project]:
// q.Project(q.Compose(o)) equals o.
func (q OrientedConfig) Compose(o OrientedConfig) OrientedConfig {
	return NewOrientedConfig(o.position.Transform(q.Frame()), o.orientation+q.orientation)
}

// ProjectPoint expresses the world point p in q's local frame.
func (q OrientedConfig) ProjectPoint(p Point) Vec2 {
	return Vec2(p.Transform(q.Frame().Invert()))
}

// Project expresses the world configuration o in q's local frame.
func (q OrientedConfig) Project(o OrientedConfig) OrientedConfig {
	return NewOrientedConfig(Point(q.ProjectPoint(o.position)), o.orientation-q.orientation)
}

// Forward returns the configuration reached by moving straight ahead by d,
// which may be negative.
func (q OrientedConfig) Forward(d float64) OrientedConfig {
	return q.Compose(OrPt(d, 0, 0))
}

// UTurn returns the configuration at the same position with the opposite
// orientation.
func (q OrientedConfig) UTurn() OrientedConfig {
	if q.orientation > 0 {
		q.orientation -= math.Pi
	} else {
		q.orientation += math.Pi
	}
	return q
}

// Opposite is an alias of [OrientedConfig.UTurn].
func (q OrientedConfig) Opposite() OrientedConfig {
	return q.UTurn()
}

// Distance returns the euclidean distance between the positions of q and o.
func (q OrientedConfig) Distance(o OrientedConfig) float64 {
	return q.position.Distance(o.position)
}

// IsParallelTo reports whether q and o have the same orientation, modulo 2π.
func (q OrientedConfig) IsParallelTo(o OrientedConfig) bool {
	return IsZero(Mod2Pi(q.orientation - o.orientation))
}

// IsSymmetricTo reports whether q and o are symmetric with respect to the
// line perpendicular to their mean orientation, that is, whether the vector
// joining them is parallel to their mean orientation.
func (q OrientedConfig) IsSymmetricTo(o OrientedConfig) bool {
	mean := VecFromAngle((q.orientation + o.orientation) / 2)
	return IsZero(q.position.Sub(o.position).Cross(mean))
}

// IsAlignedWith reports whether q and o are both parallel and symmetric.
func (q OrientedConfig) IsAlignedWith(o OrientedConfig) bool {
	return q.IsParallelTo(o) && q.IsSymmetricTo(o)
}

// HasInFront reports whether p lies in the front half plane of q.
func (q OrientedConfig) HasInFront(p Point) bool {
	return p.Sub(q.position).Dot(q.Direction()) >= 0
}

func (q OrientedConfig) isFinite() bool {
	return !q.position.IsNaN() && !q.position.IsInf() && !math.IsNaN(q.orientation)
}

// Equal reports whether q and o have the same position and are parallel.
func (q OrientedConfig) Equal(o OrientedConfig) bool {
	return q.position.Equal(o.position) && q.IsParallelTo(o)
}

// CurvConfig is an [OrientedConfig] augmented by the curvature of the
// reference point's trajectory. Positive curvatures turn left.
type CurvConfig struct {
	OrientedConfig
	curvature float64
}

// NewCurvConfig returns q with curvature kappa.
func NewCurvConfig(q OrientedConfig, kappa float64) CurvConfig {
	return CurvConfig{OrientedConfig: q, curvature: kappa}
}

// CurvPt returns the configuration at (x, y) with orientation th and
// curvature kappa.
func CurvPt(x, y, th, kappa float64) CurvConfig {
	return NewCurvConfig(OrPt(x, y, th), kappa)
}

// Curvature returns the instantaneous curvature.
func (q CurvConfig) Curvature() float64 { return q.curvature }

func (q CurvConfig) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.position.X, q.position.Y, q.orientation, q.curvature)
}

// Coord returns the i-th component of the configuration seen as an algebraic
// vector (x, y, θ, κ). Other values of i are reported to the package logger
// and yield 0.
func (q CurvConfig) Coord(i int) float64 {
	switch i {
	case 1, 2, 3:
		return q.OrientedConfig.Coord(i)
	case 4:
		return q.curvature
	default:
		Permissive.report(&RangeError{Op: "CurvConfig.Coord", Value: float64(i), Min: 1, Max: 4})
		return 0
	}
}

// Equal reports whether q and o are equal as oriented configurations and
// have the same curvature, up to [SmallDouble].
func (q CurvConfig) Equal(o CurvConfig) bool {
	return q.OrientedConfig.Equal(o.OrientedConfig) && nearlyEqual(q.curvature, o.curvature)
}
