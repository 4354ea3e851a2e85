package dubins

import (
	"fmt"
	"math"
)

// LinCurvPath is an elementary path whose curvature varies linearly with
// arc length. Depending on its start curvature and on its sharpness (the
// constant derivative of the curvature), it is a line segment, a circular
// arc or a piece of clothoid.
//
// The end configuration and the deflection are derived from the start
// configuration, the sharpness and the length when the path is created.
type LinCurvPath struct {
	start      CurvConfig
	sharpness  float64
	length     float64
	deflection float64
	end        CurvConfig
	mode       Mode
}

var _ Path = LinCurvPath{}

// NewLinCurvPath returns the path of the given length starting at start,
// whose curvature changes at the rate sharpness.
//
// A negative length is a precondition violation; it is replaced by 0 and
// reported according to the [Mode] selected with [WithMode].
func NewLinCurvPath(start CurvConfig, sharpness, length float64, opts ...Option) (LinCurvPath, error) {
	o := buildOptions(opts)
	length, err := o.mode.clamp("NewLinCurvPath", length, 0, math.Inf(1))
	return newLinCurv(start, sharpness, length, o.mode), err
}

// Straight returns the straight path of length l starting at q.
func Straight(q OrientedConfig, l float64) LinCurvPath {
	return newLinCurv(NewCurvConfig(q, 0), 0, math.Max(l, 0), Permissive)
}

func newLinCurv(start CurvConfig, sharpness, length float64, mode Mode) LinCurvPath {
	return LinCurvPath{
		start:      start,
		sharpness:  sharpness,
		length:     length,
		deflection: start.curvature*length + sharpness*length*length/2,
		end:        linCurvAt(start, sharpness, length),
		mode:       mode,
	}
}

// Start returns the first configuration of the path.
func (p LinCurvPath) Start() CurvConfig { return p.start }

// End returns the last configuration of the path.
func (p LinCurvPath) End() CurvConfig { return p.end }

// Length returns the arc length of the path.
func (p LinCurvPath) Length() float64 { return p.length }

// Sharpness returns the derivative of the curvature with respect to the arc
// length.
func (p LinCurvPath) Sharpness() float64 { return p.sharpness }

// Deflection returns the change of orientation along the path. It isn't
// reduced modulo 2π.
func (p LinCurvPath) Deflection() float64 { return p.deflection }

// At returns the configuration at arc length s. Values of s outside of [0,
// p.Length()] are clamped.
func (p LinCurvPath) At(s float64) (CurvConfig, error) {
	s, err := p.mode.clamp("LinCurvPath.At", s, 0, p.length)
	return p.at(s), err
}

func (p LinCurvPath) at(s float64) CurvConfig {
	switch {
	case s <= 0:
		return p.start
	case s >= p.length:
		return p.end
	default:
		return linCurvAt(p.start, p.sharpness, s)
	}
}

func (p LinCurvPath) String() string {
	return fmt.Sprintf("[%v -{%g, %g}-> %v]", p.start, p.sharpness, p.length, p.end)
}

// linCurvAt integrates the path of sharpness sigma starting at q up to the
// arc length s.
func linCurvAt(q CurvConfig, sigma, s float64) CurvConfig {
	th0, k0 := q.orientation, q.curvature
	th := th0 + k0*s + sigma*s*s/2
	k := k0 + sigma*s

	var d Vec2
	switch {
	case IsZero(sigma) && IsZero(k0):
		d = VecFromAngle(th0).Mul(s)
	case IsZero(sigma):
		s0, c0 := math.Sincos(th0)
		s1, c1 := math.Sincos(th)
		d = Vec((s1-s0)/k0, (c0-c1)/k0)
	default:
		// Change of variable to the reference clothoid: with a = √(|σ|/π)
		// and t = a(u + κ₀/σ), the orientation becomes φ + sgn(σ)πt²/2.
		a := math.Sqrt(math.Abs(sigma) / math.Pi)
		phi := th0 - k0*k0/(2*sigma)
		f0 := FresnelIntegral(a * k0 / sigma)
		f1 := FresnelIntegral(a * (s + k0/sigma))
		df := f1.Sub(f0)
		if sigma < 0 {
			df.Y = -df.Y
		}
		d = df.Rotate(phi).Div(a)
	}
	return NewCurvConfig(NewOrientedConfig(q.position.Translate(d), th), k)
}
