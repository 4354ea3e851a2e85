package dubins

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Type is the combinatorial type of a Dubins-like path. The first and last
// letters give the direction of the first and last turns, the middle letter
// tells whether the middle part is a straight segment or a turn.
type Type uint8

// The six path types, in evaluation order.
const (
	LSL Type = iota
	LSR
	RSL
	RSR
	LRL
	RLR

	numTypes = 6
)

var typeNames = [numTypes]string{"lsl", "lsr", "rsl", "rsr", "lrl", "rlr"}

func (t Type) String() string {
	if t < numTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsCSC reports whether the middle part of t is a straight segment.
func (t Type) IsCSC() bool { return t <= RSR }

var turnSigns = [numTypes][3]int{
	LSL: {1, 0, 1},
	LSR: {1, 0, -1},
	RSL: {-1, 0, 1},
	RSR: {-1, 0, -1},
	LRL: {1, -1, 1},
	RLR: {-1, 1, -1},
}

// TurnSign returns the direction of the given part (1, 2 or 3) of paths of
// type t: 1 for a left turn, -1 for a right turn and 0 for a straight
// segment. Invalid parts or types yield 0.
func TurnSign(part int, t Type) int {
	if part < 1 || part > 3 || t >= numTypes {
		Permissive.report(&RangeError{Op: "TurnSign", Value: float64(part), Min: 1, Max: 3})
		return 0
	}
	return turnSigns[t][part-1]
}

// Kind tells how a Dubins-like path realizes its turns.
type Kind uint8

const (
	// Discontinuous paths turn along circular arcs of maximum curvature.
	// Their curvature jumps at the boundaries between parts.
	Discontinuous Kind = iota
	// Continuous paths blend their turns with clothoid pieces, so that the
	// curvature is continuous and its derivative bounded.
	Continuous
)

func (k Kind) String() string {
	switch k {
	case Discontinuous:
		return "discontinuous"
	case Continuous:
		return "continuous"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// turnShape is what distinguishes the variants of Dubins-like paths: the
// geometry of their turning circles, and the pieces a turn is made of.
type turnShape interface {
	kind() Kind
	maxCurv() float64
	maxCurvDeriv() float64
	// radius and angle describe the turning circles. A configuration
	// reachable by a turn is at distance radius from the circle's center,
	// and its orientation makes the angle angle with the circle's tangent.
	radius() float64
	angle() float64
	// turnLength returns the length of a turn of deflection defl.
	turnLength(defl float64) float64
	// appendTurn appends the pieces of a turn of deflection defl starting
	// at q.
	appendTurn(pieces []LinCurvPath, q OrientedConfig, defl float64, mode Mode) []LinCurvPath
}

// Planner computes Dubins-like paths between two configurations.
type Planner interface {
	Connect(start, goal OrientedConfig) *DubinsLikePath
}

// DubinsLikePath is a three-part path connecting two configurations: a
// turn, a straight segment or a turn, and a final turn. Each part is made of
// up to three [LinCurvPath] pieces.
//
// A DubinsLikePath is immutable once returned by a planner, and is safe for
// concurrent use.
type DubinsLikePath struct {
	typ        Type
	shape      turnShape
	start      OrientedConfig
	parts      [3]float64
	pieces     []LinCurvPath
	length     float64
	deflection float64
	mode       Mode
}

var _ Compound = (*DubinsLikePath)(nil)

// Type returns the combinatorial type of the path.
func (p *DubinsLikePath) Type() Type { return p.typ }

// Kind returns the kind of turns the path is made of.
func (p *DubinsLikePath) Kind() Kind { return p.shape.kind() }

// MaxCurv returns the maximum curvature bound the path was planned with.
func (p *DubinsLikePath) MaxCurv() float64 { return p.shape.maxCurv() }

// MaxCurvDeriv returns the bound on the derivative of the curvature. It is
// +Inf for discontinuous paths.
func (p *DubinsLikePath) MaxCurvDeriv() float64 { return p.shape.maxCurvDeriv() }

// TurnRadius returns the radius of the turning circles.
func (p *DubinsLikePath) TurnRadius() float64 { return p.shape.radius() }

// TurnAngle returns the angle between the tangent of the turning circles
// and the orientation of the configurations reachable by a turn. It is 0
// for discontinuous paths.
func (p *DubinsLikePath) TurnAngle() float64 { return p.shape.angle() }

// Parts returns the signed deflections of the three parts. For paths whose
// middle part is straight, the middle value is the segment's length.
func (p *DubinsLikePath) Parts() [3]float64 { return p.parts }

// Start implements [Path].
func (p *DubinsLikePath) Start() CurvConfig {
	if len(p.pieces) == 0 {
		return NewCurvConfig(p.start, 0)
	}
	return p.pieces[0].start
}

// End implements [Path].
func (p *DubinsLikePath) End() CurvConfig {
	if len(p.pieces) == 0 {
		return NewCurvConfig(p.start, 0)
	}
	return p.pieces[len(p.pieces)-1].end
}

// Length implements [Path].
func (p *DubinsLikePath) Length() float64 { return p.length }

// Deflection implements [Path].
func (p *DubinsLikePath) Deflection() float64 { return p.deflection }

// At implements [Path].
func (p *DubinsLikePath) At(s float64) (CurvConfig, error) {
	s, err := p.mode.clamp("DubinsLikePath.At", s, 0, p.length)
	return compoundAt(p, s), err
}

// NumPieces implements [Compound].
func (p *DubinsLikePath) NumPieces() int { return len(p.pieces) }

// Piece implements [Compound].
func (p *DubinsLikePath) Piece(i int) (LinCurvPath, error) {
	if len(p.pieces) == 0 {
		return newLinCurv(NewCurvConfig(p.start, 0), 0, 0, p.mode),
			p.mode.report(&RangeError{Op: "DubinsLikePath.Piece", Value: float64(i), Min: 1, Max: 0})
	}
	i, err := p.mode.clampIndex("DubinsLikePath.Piece", i, 1, len(p.pieces))
	return p.pieces[i-1], err
}

// Clone returns a deep copy of p.
func (p *DubinsLikePath) Clone() *DubinsLikePath {
	q := *p
	q.pieces = append([]LinCurvPath(nil), p.pieces...)
	return &q
}

func (p *DubinsLikePath) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v %v path, max curvature %g: ", p.shape.kind(), p.typ, p.shape.maxCurv())
	describeCompound(&sb, p)
	return sb.String()
}

// buildPath materializes the path of type t starting at start, whose parts
// have the given signed deflections (or length, for a straight middle part).
func buildPath(shape turnShape, mode Mode, start OrientedConfig, t Type, parts [3]float64) *DubinsLikePath {
	p := &DubinsLikePath{
		typ:    t,
		shape:  shape,
		start:  start,
		parts:  parts,
		pieces: make([]LinCurvPath, 0, 9),
		mode:   mode,
	}
	end := func() OrientedConfig {
		if len(p.pieces) == 0 {
			return start
		}
		return p.pieces[len(p.pieces)-1].end.OrientedConfig
	}
	p.pieces = shape.appendTurn(p.pieces, start, parts[0], mode)
	if t.IsCSC() {
		p.pieces = append(p.pieces, newLinCurv(NewCurvConfig(end(), 0), 0, parts[1], mode))
	} else {
		p.pieces = shape.appendTurn(p.pieces, end(), parts[1], mode)
	}
	p.pieces = shape.appendTurn(p.pieces, end(), parts[2], mode)
	if len(p.pieces) == 0 {
		p.pieces = append(p.pieces, newLinCurv(NewCurvConfig(start, 0), 0, 0, mode))
	}
	for _, piece := range p.pieces {
		p.length += piece.length
		p.deflection += piece.deflection
	}
	return p
}

// forward builds the path of type t from explicit part values. The
// direction of each turn is given by t; only the magnitudes of defl1, mid
// and defl3 are used, except that a negative straight length is reported.
func forward(shape turnShape, mode Mode, start OrientedConfig, t Type, defl1, mid, defl3 float64) (*DubinsLikePath, error) {
	if t >= numTypes {
		return nil, fmt.Errorf("dubins: invalid path type %v", t)
	}
	var err error
	if t.IsCSC() {
		mid, err = mode.clamp("Forward", mid, 0, math.Inf(1))
	} else {
		mid = float64(TurnSign(2, t)) * math.Abs(mid)
	}
	parts := [3]float64{
		float64(TurnSign(1, t)) * math.Abs(defl1),
		mid,
		float64(TurnSign(3, t)) * math.Abs(defl3),
	}
	return buildPath(shape, mode, start, t, parts), err
}

// turningCircles returns the left and right turning circles of q. Start
// circles hold the configurations reachable from q, goal circles those from
// which q can be reached.
func turningCircles(shape turnShape, q OrientedConfig, goal bool) (left, right Circle) {
	r, mu := shape.radius(), shape.angle()
	x, y := r*math.Sin(mu), r*math.Cos(mu)
	if goal {
		x = -x
	}
	f := q.Frame()
	left = Circle{Center: Pt(x, y).Transform(f), Radius: r, Left: true}
	right = Circle{Center: Pt(x, -y).Transform(f), Radius: r}
	return left, right
}

// candidate is the outcome of evaluating one path type.
type candidate struct {
	typ    Type
	parts  [3]float64
	length float64
	ok     bool
}

// shorter orders candidates: infeasible ones come last, and a candidate of
// strictly positive length beats one whose length isn't.
func (c candidate) shorter(o candidate) bool {
	if !c.ok {
		return false
	}
	if !o.ok {
		return true
	}
	return (IsPositive(c.length) && c.length < o.length-SmallDouble) || !IsPositive(o.length)
}

// pick returns the shorter of a and b, preferring b on ties.
func pick(a, b candidate) candidate {
	if a.shorter(b) {
		return a
	}
	return b
}

// getConnection solves the tangent between the turning circles of centers
// c1 and c3, for a straight middle part. sameSide tells whether both turns
// have the same direction. It returns the length of the segment and the
// angle between the segment and the line joining the centers. ok is false
// when the circles are too close to admit such a tangent.
func getConnection(c1, c3 Point, sameSide bool, r, mu float64) (length, offset float64, ok bool) {
	d2 := c3.DistanceSquared(c1)
	sinMu, cosMu := math.Sincos(mu)
	if sameSide {
		length = math.Sqrt(d2) - 2*r*sinMu
		if length < -SmallDouble {
			return 0, 0, false
		}
		return math.Max(length, 0), 0, true
	}
	if d2 < 4*r*r-SmallDouble {
		return 0, 0, false
	}
	length = math.Max(math.Sqrt(math.Max(d2-4*r*r*cosMu*cosMu, 0))-2*r*sinMu, 0)
	offset = math.Atan2(2*r*cosMu, length+2*r*sinMu)
	return length, offset, true
}

// evalCSC evaluates the path type t, whose middle part is straight, between
// the turning circles of centers c1 and c3.
func evalCSC(shape turnShape, t Type, c1, c3 Point, start, goal OrientedConfig) candidate {
	s1, s3 := float64(TurnSign(1, t)), float64(TurnSign(3, t))
	l, offset, ok := getConnection(c1, c3, s1 == s3, shape.radius(), shape.angle())
	if !ok {
		return candidate{typ: t}
	}
	dir := c3.Sub(c1)
	th := start.orientation
	if s1 != s3 || !IsZero(dir.Hypot()) {
		th = dir.Orientation() + s1*offset
	}
	d1 := s1 * turnAmount(s1*(th-start.orientation))
	d3 := s3 * turnAmount(s3*(goal.orientation-th))
	return candidate{
		typ:    t,
		parts:  [3]float64{d1, l, d3},
		length: shape.turnLength(d1) + l + shape.turnLength(d3),
		ok:     true,
	}
}

// evalCCC evaluates the path type t, whose middle part is a turn, between
// the turning circles of centers c1 and c3. The middle circle is tangent to
// both, at distance 2R of their centers; of its two possible positions, the
// one yielding the shorter path is kept.
func evalCCC(shape turnShape, t Type, c1, c3 Point, start, goal OrientedConfig) candidate {
	r, mu := shape.radius(), shape.angle()
	s := float64(TurnSign(1, t))
	dir := c3.Sub(c1)
	d := dir.Hypot()
	if d > 4*r+SmallDouble {
		return candidate{typ: t}
	}
	beta := math.Acos(math.Min(d/(4*r), 1))
	best := candidate{typ: t}
	for _, b := range [2]float64{beta, -beta} {
		phi1 := dir.Orientation() + b
		c2 := c1.Translate(VecFromAngle(phi1).Mul(2 * r))
		phi2 := c3.Sub(c2).Orientation()
		th12 := phi1 + s*(math.Pi/2-mu)
		th23 := phi2 - s*(math.Pi/2-mu)
		d1 := s * turnAmount(s*(th12-start.orientation))
		d2 := -s * turnAmount(-s*(th23-th12))
		d3 := s * turnAmount(s*(goal.orientation-th23))
		c := candidate{
			typ:    t,
			parts:  [3]float64{d1, d2, d3},
			length: shape.turnLength(d1) + shape.turnLength(d2) + shape.turnLength(d3),
			ok:     true,
		}
		if !best.ok || c.length < best.length-SmallDouble {
			best = c
		}
	}
	return best
}

// connect computes the shortest Dubins-like path from start to goal.
func connect(shape turnShape, mode Mode, start, goal OrientedConfig) *DubinsLikePath {
	if !start.isFinite() || !goal.isFinite() {
		Logger().Warn("cannot connect non-finite configurations, falling back to an empty path",
			"kind", shape.kind(), "start", start, "goal", goal)
		return emptyPath(shape, mode, start)
	}
	if start.Equal(goal) {
		return emptyPath(shape, mode, start)
	}

	sl, sr := turningCircles(shape, start, false)
	gl, gr := turningCircles(shape, goal, true)

	var cands [numTypes]candidate
	cands[LSL] = evalCSC(shape, LSL, sl.Center, gl.Center, start, goal)
	cands[LSR] = evalCSC(shape, LSR, sl.Center, gr.Center, start, goal)
	cands[RSL] = evalCSC(shape, RSL, sr.Center, gl.Center, start, goal)
	cands[RSR] = evalCSC(shape, RSR, sr.Center, gr.Center, start, goal)
	cands[LRL] = evalCCC(shape, LRL, sl.Center, gl.Center, start, goal)
	cands[RLR] = evalCCC(shape, RLR, sr.Center, gr.Center, start, goal)

	l := Logger()
	debug := l.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		for _, c := range cands {
			l.Debug("evaluated path type",
				"kind", shape.kind(), "type", c.typ, "feasible", c.ok, "length", c.length)
		}
	}

	ls := pick(cands[LSL], cands[LSR])
	rs := pick(cands[RSL], cands[RSR])
	ccc := pick(cands[LRL], cands[RLR])
	best := pick(pick(ls, rs), ccc)

	if !best.ok {
		l.Warn("no feasible path type, falling back to an empty path",
			"kind", shape.kind(), "start", start, "goal", goal)
		return emptyPath(shape, mode, start)
	}
	if debug {
		l.Debug("selected path type", "kind", shape.kind(), "type", best.typ, "length", best.length)
	}
	return buildPath(shape, mode, start, best.typ, best.parts)
}

// emptyPath returns the path made of a single piece of length 0 at start.
func emptyPath(shape turnShape, mode Mode, start OrientedConfig) *DubinsLikePath {
	return &DubinsLikePath{
		typ:    LSL,
		shape:  shape,
		start:  start,
		pieces: []LinCurvPath{newLinCurv(NewCurvConfig(start, 0), 0, 0, mode)},
		mode:   mode,
	}
}
