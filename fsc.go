package dubins

import (
	"fmt"
	"math"
)

// FSCValues holds the bounds of a continuous-curvature planner and the
// constants derived from them. The zero value is invalid; use
// [ComputeFSCValues].
type FSCValues struct {
	maxCurv      float64
	maxCurvDeriv float64
	limDefl      float64
	radius       float64
	angle        float64
}

// MaxLimDefl is the largest limit deflection of continuous-curvature paths.
// Turns shorter than the limit deflection are made of two clothoids ending
// on the turning circle, which only exist with a bounded sharpness while
// LimDefl/2 + TurnAngle < π, that is for limit deflections below about 4.59.
const MaxLimDefl = 4.5

// ComputeFSCValues derives the turning geometry of continuous-curvature
// paths from the curvature bound maxCurv and the curvature derivative bound
// maxCurvDeriv. Both must be strictly positive.
//
// A turn starting with curvature 0 that increases the curvature as fast as
// possible up to maxCurv, then decreases it back to 0, has deflection
// LimDefl = maxCurv²/maxCurvDeriv. The configurations reachable by such
// turns, and by longer ones with an arc of maximum curvature in the middle,
// lie on a circle of radius TurnRadius, their orientation making the angle
// TurnAngle with the circle's tangent.
//
// When maxCurv²/maxCurvDeriv exceeds [MaxLimDefl], the curvature bound is
// lowered to √(MaxLimDefl·maxCurvDeriv), which MaxCurv then reports. Paths
// planned with the result respect both of the given bounds.
func ComputeFSCValues(maxCurv, maxCurvDeriv float64) (FSCValues, error) {
	if !(maxCurv > 0) || math.IsInf(maxCurv, 0) {
		return FSCValues{}, fmt.Errorf("max curvature %g: %w", maxCurv, ErrInvalidBound)
	}
	if !(maxCurvDeriv > 0) || math.IsInf(maxCurvDeriv, 0) {
		return FSCValues{}, fmt.Errorf("max curvature derivative %g: %w", maxCurvDeriv, ErrInvalidBound)
	}
	if maxCurv*maxCurv/maxCurvDeriv > MaxLimDefl {
		capped := math.Sqrt(MaxLimDefl * maxCurvDeriv)
		Logger().Debug("lowered curvature bound to keep short turns realizable",
			"max_curv", maxCurv, "max_curv_deriv", maxCurvDeriv, "capped", capped)
		maxCurv = capped
	}

	// End of the clothoid going from curvature 0 to maxCurv.
	a := math.Sqrt(maxCurvDeriv / math.Pi)
	end := FresnelIntegral(maxCurv / math.Sqrt(math.Pi*maxCurvDeriv))
	limDefl := maxCurv * maxCurv / maxCurvDeriv
	th := limDefl / 2

	// Center of the arc of maximum curvature that follows it.
	sin, cos := math.Sincos(th)
	xc := end.X/a - sin/maxCurv
	yc := end.Y/a + cos/maxCurv

	return FSCValues{
		maxCurv:      maxCurv,
		maxCurvDeriv: maxCurvDeriv,
		limDefl:      limDefl,
		radius:       math.Hypot(xc, yc),
		angle:        math.Atan2(xc, yc),
	}, nil
}

func (v FSCValues) MaxCurv() float64      { return v.maxCurv }
func (v FSCValues) MaxCurvDeriv() float64 { return v.maxCurvDeriv }
func (v FSCValues) LimDefl() float64      { return v.limDefl }
func (v FSCValues) TurnRadius() float64   { return v.radius }
func (v FSCValues) TurnAngle() float64    { return v.angle }

func (v FSCValues) String() string {
	return fmt.Sprintf("κ=%g σ=%g limDefl=%g R=%g μ=%g",
		v.maxCurv, v.maxCurvDeriv, v.limDefl, v.radius, v.angle)
}

// FSC plans paths for a vehicle whose curvature and curvature derivative
// are both bounded. Turns are made of clothoids and circular arcs, so that
// the curvature is continuous along the whole path.
type FSC struct {
	shape clothoidTurn
	mode  Mode
}

var _ Planner = (*FSC)(nil)

// NewFSC returns a planner for the given bounds, which must be strictly
// positive.
func NewFSC(maxCurv, maxCurvDeriv float64, opts ...Option) (*FSC, error) {
	v, err := ComputeFSCValues(maxCurv, maxCurvDeriv)
	if err != nil {
		return nil, err
	}
	return NewFSCFromValues(v, opts...)
}

// NewFSCFromValues returns a planner using precomputed values, saving their
// computation when many planners share the same bounds.
func NewFSCFromValues(v FSCValues, opts ...Option) (*FSC, error) {
	if !(v.maxCurv > 0) || !(v.maxCurvDeriv > 0) {
		return nil, fmt.Errorf("uninitialized FSC values: %w", ErrInvalidBound)
	}
	return &FSC{
		shape: clothoidTurn{v: v},
		mode:  buildOptions(opts).mode,
	}, nil
}

// Values returns the bounds and derived constants of the planner.
func (f *FSC) Values() FSCValues { return f.shape.v }

// Circles returns the left and right turning circles of q. With goal set,
// they are the circles from which q can be reached; otherwise those that
// can be reached from q.
func (f *FSC) Circles(q OrientedConfig, goal bool) (left, right Circle) {
	return turningCircles(f.shape, q, goal)
}

// Connect returns the shortest continuous-curvature path from start to
// goal.
func (f *FSC) Connect(start, goal OrientedConfig) *DubinsLikePath {
	return connect(f.shape, f.mode, start, goal)
}

// Forward is like [Dubins.Forward], for continuous-curvature paths.
func (f *FSC) Forward(start OrientedConfig, t Type, defl1, mid, defl3 float64) (*DubinsLikePath, error) {
	return forward(f.shape, f.mode, start, t, defl1, mid, defl3)
}

// clothoidTurn realizes turns with clothoids and arcs.
//
// A turn of zero deflection is the chord of the turning circle joining the
// configurations it connects. A turn whose deflection doesn't exceed limDefl
// is made of two symmetric clothoids, whose sharpness is chosen so that
// they end on the turning circle. Longer turns are made of a clothoid up to
// the maximum curvature, an arc of maximum curvature, and a clothoid back to
// zero curvature.
type clothoidTurn struct {
	v FSCValues
}

func (clothoidTurn) kind() Kind {
	return Continuous
}

func (t clothoidTurn) maxCurv() float64      { return t.v.maxCurv }
func (t clothoidTurn) maxCurvDeriv() float64 { return t.v.maxCurvDeriv }
func (t clothoidTurn) radius() float64       { return t.v.radius }
func (t clothoidTurn) angle() float64        { return t.v.angle }

// shortSharpness returns the sharpness of the two clothoids realizing a
// short turn of deflection defl > 0.
func (t clothoidTurn) shortSharpness(defl float64) float64 {
	f := FresnelIntegral(math.Sqrt(defl / math.Pi))
	sin, cos := math.Sincos(defl / 2)
	num := f.X*cos + f.Y*sin
	den := t.v.radius * math.Sin(defl/2+t.v.angle)
	return math.Pi * num * num / (den * den)
}

// chord is the length of a turn of zero deflection.
func (t clothoidTurn) chord() float64 {
	return 2 * t.v.radius * math.Sin(t.v.angle)
}

func (t clothoidTurn) turnLength(defl float64) float64 {
	defl = math.Abs(defl)
	switch {
	case IsZero(defl):
		return t.chord()
	case defl <= t.v.limDefl:
		return 2 * math.Sqrt(defl/t.shortSharpness(defl))
	default:
		return 2*t.v.maxCurv/t.v.maxCurvDeriv + (defl-t.v.limDefl)/t.v.maxCurv
	}
}

func (t clothoidTurn) appendTurn(pieces []LinCurvPath, q OrientedConfig, defl float64, mode Mode) []LinCurvPath {
	start := NewCurvConfig(q, 0)
	sign := 1.0
	if defl < 0 {
		sign = -1
	}
	abs := math.Abs(defl)
	switch {
	case IsZero(defl):
		return append(pieces, newLinCurv(start, 0, t.chord(), mode))
	case abs <= t.v.limDefl:
		sigma := t.shortSharpness(abs)
		l := math.Sqrt(abs / sigma)
		in := newLinCurv(start, sign*sigma, l, mode)
		out := newLinCurv(in.end, -sign*sigma, l, mode)
		return append(pieces, in, out)
	default:
		l := t.v.maxCurv / t.v.maxCurvDeriv
		in := newLinCurv(start, sign*t.v.maxCurvDeriv, l, mode)
		arc := newLinCurv(in.end, 0, (abs-t.v.limDefl)/t.v.maxCurv, mode)
		out := newLinCurv(arc.end, -sign*t.v.maxCurvDeriv, l, mode)
		return append(pieces, in, arc, out)
	}
}
