package dubins

import (
	"fmt"
	"math"
)

// Dubins plans paths of minimal length for a vehicle whose curvature is
// bounded, but may change instantaneously. Turns are circular arcs of
// maximum curvature.
type Dubins struct {
	shape arcTurn
	mode  Mode
}

var _ Planner = (*Dubins)(nil)

// NewDubins returns a planner for the curvature bound maxCurv, which must be
// strictly positive.
func NewDubins(maxCurv float64, opts ...Option) (*Dubins, error) {
	if !(maxCurv > 0) || math.IsInf(maxCurv, 0) {
		return nil, fmt.Errorf("max curvature %g: %w", maxCurv, ErrInvalidBound)
	}
	return &Dubins{
		shape: arcTurn{curv: maxCurv},
		mode:  buildOptions(opts).mode,
	}, nil
}

// MaxCurv returns the curvature bound.
func (d *Dubins) MaxCurv() float64 { return d.shape.curv }

// TurnRadius returns 1/MaxCurv().
func (d *Dubins) TurnRadius() float64 { return d.shape.radius() }

// Circles returns the left and right turning circles of q. With goal set,
// they are the circles from which q can be reached; otherwise those that
// can be reached from q.
func (d *Dubins) Circles(q OrientedConfig, goal bool) (left, right Circle) {
	return turningCircles(d.shape, q, goal)
}

// Connect returns the shortest path from start to goal.
func (d *Dubins) Connect(start, goal OrientedConfig) *DubinsLikePath {
	return connect(d.shape, d.mode, start, goal)
}

// Forward returns the path of type t starting at start whose turns have the
// deflections defl1 and defl3, and whose middle part has either the length
// mid (for straight middle parts) or the deflection mid. The directions of
// the turns are given by t: only the magnitudes of the values are used. A
// negative length is clamped to 0 and reported according to the planner's
// [Mode].
func (d *Dubins) Forward(start OrientedConfig, t Type, defl1, mid, defl3 float64) (*DubinsLikePath, error) {
	return forward(d.shape, d.mode, start, t, defl1, mid, defl3)
}

// arcTurn realizes turns as a single circular arc.
type arcTurn struct {
	curv float64
}

func (arcTurn) kind() Kind { return Discontinuous }
func (t arcTurn) maxCurv() float64 { return t.curv }
func (arcTurn) maxCurvDeriv() float64 { return math.Inf(1) }
func (t arcTurn) radius() float64 { return 1 / t.curv }
func (arcTurn) angle() float64 { return 0 }
func (t arcTurn) turnLength(defl float64) float64 { return math.Abs(defl) / t.curv }

func (t arcTurn) appendTurn(pieces []LinCurvPath, q OrientedConfig, defl float64, mode Mode) []LinCurvPath {
	if IsZero(defl) {
		return pieces
	}
	k := t.curv
	if defl < 0 {
		k = -k
	}
	return append(pieces, newLinCurv(NewCurvConfig(q, k), 0, math.Abs(defl)/t.curv, mode))
}
