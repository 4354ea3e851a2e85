package dubins

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/integrate/quad"
)

// splat compares points by their coordinates, with the tolerance of the
// cmp options rather than that of Point.Equal.
func splat(p Point) [2]float64 { return [2]float64{p.X, p.Y} }

func TestFresnelKnownValues(t *testing.T) {
	tests := []struct {
		s    float64
		want Point
		tol  float64
	}{
		{0, Pt(0, 0), 0},
		{0.5, Pt(0.4923442258714464, 0.0647324328599993), 1e-13},
		{1, Pt(0.7798934003768228, 0.4382591473903548), 1e-13},
		{2, Pt(0.4882534060753408, 0.3434156783636982), 1e-13},
		{-1, Pt(-0.7798934003768228, -0.4382591473903548), 1e-13},
		{5, Pt(0.5636311887040122, 0.4991913819171169), 1e-9},
	}
	for _, tt := range tests {
		diff(t, splat(tt.want), splat(FresnelIntegral(tt.s)), cmpopts.EquateApprox(0, tt.tol))
	}
}

func TestFresnelQuadrature(t *testing.T) {
	cos := func(u float64) float64 { return math.Cos(math.Pi * u * u / 2) }
	sin := func(u float64) float64 { return math.Sin(math.Pi * u * u / 2) }
	for s := -2.0; s <= 2; s += 0.125 {
		want := Pt(quad.Fixed(cos, 0, s, 64, nil, 0), quad.Fixed(sin, 0, s, 64, nil, 0))
		diff(t, splat(want), splat(FresnelIntegral(s)), cmpopts.EquateApprox(0, 1e-12))
	}
	// Both sides of the switch to the asymptotic expansion.
	for _, s := range []float64{3, 3.4, 3.5, 3.6, 4, 6} {
		want := Pt(quad.Fixed(cos, 0, s, 200, nil, 0), quad.Fixed(sin, 0, s, 200, nil, 0))
		diff(t, splat(want), splat(FresnelIntegral(s)), cmpopts.EquateApprox(0, 1e-8))
	}
}

func TestFresnelLimits(t *testing.T) {
	diff(t, [2]float64{0.5, 0.5}, splat(FresnelIntegral(1000)), cmpopts.EquateApprox(0, 1e-3))
	diff(t, FresnelCos(1.3), FresnelIntegral(1.3).X)
	diff(t, FresnelSin(1.3), FresnelIntegral(1.3).Y)
}
