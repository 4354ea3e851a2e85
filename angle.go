package dubins

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// SmallDouble is the threshold under which a value is considered to be zero.
// It is used for every sign test and every tolerance-based equality in this
// package.
const SmallDouble = 1e-10

// IsZero reports whether |x| < SmallDouble.
func IsZero(x float64) bool {
	return math.Abs(x) < SmallDouble
}

// IsPositive reports whether x is strictly positive, that is, bigger than
// SmallDouble.
func IsPositive(x float64) bool {
	return x > SmallDouble
}

// IsNegative reports whether x is strictly negative, that is, smaller than
// -SmallDouble.
func IsNegative(x float64) bool {
	return IsPositive(-x)
}

// Sign returns -1, 0 or 1. Values within SmallDouble of zero have sign 0.
func Sign(x float64) int {
	switch {
	case IsZero(x):
		return 0
	case x < 0:
		return -1
	default:
		return 1
	}
}

// nearlyEqual compares two reals with the absolute tolerance SmallDouble.
func nearlyEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, SmallDouble)
}

// Mod2Pi returns the angle equivalent to th modulo 2π, in (-π, π].
func Mod2Pi(th float64) float64 {
	if math.IsInf(th, 0) || math.IsNaN(th) {
		return math.NaN()
	}
	res := math.Remainder(th, 2*math.Pi)
	if res <= -math.Pi {
		res += 2 * math.Pi
	}
	return res
}

// turnAmount returns th modulo 2π in [0, 2π). Results that are within
// SmallDouble of 2π are snapped to zero, so that rounding noise never turns a
// null rotation into a full loop.
func turnAmount(th float64) float64 {
	res := math.Mod(th, 2*math.Pi)
	if res < 0 {
		res += 2 * math.Pi
	}
	if res > 2*math.Pi-SmallDouble || IsZero(res) {
		return 0
	}
	return res
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(th float64) float64 {
	return th * 180 / math.Pi
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(th float64) float64 {
	return th * math.Pi / 180
}
