package dubins

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidBound is returned when a planner is given a curvature or
// curvature derivative bound that isn't strictly positive.
var ErrInvalidBound = errors.New("dubins: bound must be strictly positive")

// ErrNotElementary is returned by [ArrayPaths.Set] for paths that are
// neither a [LinCurvPath] nor a [Compound].
var ErrNotElementary = errors.New("dubins: path is neither elementary nor compound")

// RangeError describes a domain precondition violation: an index, an arc
// length or a coordinate number outside of its valid range, or a zero
// divisor. The operation that reported it carried on with Value clamped to
// [Min, Max].
type RangeError struct {
	Op    string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dubins: %s: %g outside of [%g, %g]", e.Op, e.Value, e.Min, e.Max)
}

// Mode selects how domain precondition violations are reported.
//
// Only paths and planners carry a Mode. Value helpers that return no error,
// such as the Coord methods of vectors and configurations, [Vec2.Div] and
// [TurnSign], always behave as [Permissive]: they clamp and log.
type Mode int

const (
	// Permissive clamps the faulty value and reports the violation to the
	// package logger. No error is returned.
	Permissive Mode = iota
	// Strict clamps the faulty value as well, but also returns a
	// [*RangeError] to the caller.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// report handles a precondition violation according to the mode. It returns
// the error to hand back to the caller, which is nil in permissive mode.
func (m Mode) report(err *RangeError) error {
	if m == Strict {
		return err
	}
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelWarn) {
		l.Warn("clamped out of range value",
			"op", err.Op, "value", err.Value, "min", err.Min, "max", err.Max)
	}
	return nil
}

// clamp returns x limited to [lo, hi]. When x had to be changed, the
// violation is reported through m.
func (m Mode) clamp(op string, x, lo, hi float64) (float64, error) {
	switch {
	case x < lo:
		return lo, m.report(&RangeError{Op: op, Value: x, Min: lo, Max: hi})
	case x > hi:
		return hi, m.report(&RangeError{Op: op, Value: x, Min: lo, Max: hi})
	default:
		return x, nil
	}
}

// clampIndex is like clamp, for 1-based indices.
func (m Mode) clampIndex(op string, i, lo, hi int) (int, error) {
	f, err := m.clamp(op, float64(i), float64(lo), float64(hi))
	return int(f), err
}

type options struct {
	mode Mode
}

// Option configures paths and planners.
type Option func(*options)

// WithMode selects the precondition checking mode. The default is
// [Permissive].
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
