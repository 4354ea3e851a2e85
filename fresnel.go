package dubins

import (
	"math"
)

// fresnelSeriesLimit is the argument under which the Fresnel integrals are
// evaluated with their power series. Above it, the asymptotic expansion
// converges faster than roundoff accumulates.
const fresnelSeriesLimit = 3.5

// FresnelIntegral returns the point (C(s), S(s)), where
//
//	C(s) = ∫₀ˢ cos(πu²/2) du
//	S(s) = ∫₀ˢ sin(πu²/2) du
//
// are the Fresnel integrals. This is the position reached at arc length s by
// the reference clothoid, which starts at the origin with orientation 0 and
// curvature 0, and has sharpness π.
//
// Clothoid pieces built by this package only evaluate |s| ≤ 2, where the
// result is accurate to about 1e-14. Larger arguments are still supported,
// with an accuracy of about 1e-9.
func FresnelIntegral(s float64) Point {
	x := math.Abs(s)
	var c, sn float64
	if x <= fresnelSeriesLimit {
		c, sn = fresnelSeries(x)
	} else {
		c, sn = fresnelAsymptotic(x)
	}
	if s < 0 {
		return Point{X: -c, Y: -sn}
	}
	return Point{X: c, Y: sn}
}

// FresnelCos returns C(s), see [FresnelIntegral].
func FresnelCos(s float64) float64 { return FresnelIntegral(s).X }

// FresnelSin returns S(s), see [FresnelIntegral].
func FresnelSin(s float64) float64 { return FresnelIntegral(s).Y }

// fresnelSeries sums C(x) + iS(x) = Σ (iz)ᵏ/k! · x/(2k+1), with z = πx²/2.
func fresnelSeries(x float64) (float64, float64) {
	z := math.Pi * x * x / 2
	// re and im hold (iz)ᵏ/k! · x.
	re, im := x, 0.0
	var c, s float64
	for k := 0; k < 200; k++ {
		d := float64(2*k + 1)
		c += re / d
		s += im / d
		if float64(k) > z && math.Abs(re)+math.Abs(im) < 1e-17 {
			break
		}
		f := z / float64(k+1)
		re, im = -im*f, re*f
	}
	return c, s
}

// fresnelAsymptotic uses the auxiliary functions f and g:
//
//	C(x) = 1/2 + f(x) sin(πx²/2) - g(x) cos(πx²/2)
//	S(x) = 1/2 - f(x) cos(πx²/2) - g(x) sin(πx²/2)
func fresnelAsymptotic(x float64) (float64, float64) {
	w := math.Pi * x * x
	w2 := w * w
	var f, g float64
	tf, tg := 1.0, 1.0
	for m := 0; m < 30; m++ {
		f += tf
		g += tg
		nf := -tf * float64((4*m+1)*(4*m+3)) / w2
		ng := -tg * float64((4*m+3)*(4*m+5)) / w2
		if math.Abs(nf) >= math.Abs(tf) || math.Abs(nf) < 1e-17 {
			break
		}
		tf, tg = nf, ng
	}
	f /= math.Pi * x
	g /= math.Pi * w * x
	sin, cos := math.Sincos(w / 2)
	return 0.5 + f*sin - g*cos, 0.5 - f*cos - g*sin
}
