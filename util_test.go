package dubins

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// configsNear reports whether a and b have positions within tol of each
// other, and orientations within tol modulo 2π.
func configsNear(a, b OrientedConfig, tol float64) bool {
	return a.position.Distance(b.position) <= tol &&
		math.Abs(Mod2Pi(a.orientation-b.orientation)) <= tol
}

func assertConfigNear(t *testing.T, want, got OrientedConfig, tol float64) {
	t.Helper()
	if !configsNear(want, got, tol) {
		t.Errorf("got %v, want %v (tolerance %g)", got, want, tol)
	}
}

func assertCurvConfigNear(t *testing.T, want, got CurvConfig, tol float64) {
	t.Helper()
	if !configsNear(want.OrientedConfig, got.OrientedConfig, tol) || math.Abs(want.curvature-got.curvature) > tol {
		t.Errorf("got %v, want %v (tolerance %g)", got, want, tol)
	}
}

func mustLinCurv(t *testing.T, start CurvConfig, sharpness, length float64) LinCurvPath {
	t.Helper()
	p, err := NewLinCurvPath(start, sharpness, length)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
