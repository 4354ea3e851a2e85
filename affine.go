package dubins

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The transforms built by this package are rigid, a rotation followed by a
// translation, and map a configuration's local frame to the world frame.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a rotation of th radians
// about the origin, counterclockwise.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Frame returns the transform mapping coordinates expressed in the frame
// whose origin is pos and whose x axis has orientation th into world
// coordinates.
func Frame(pos Point, th float64) Affine {
	return Rotate(th).ThenTranslate(Vec2(pos))
}

// Mul returns the transform applying o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Invert returns the inverse of a rigid transform: the transposed rotation,
// applied after undoing the translation. It is not valid for transforms that
// scale or skew.
func (aff Affine) Invert() Affine {
	return Affine{
		aff.N0, aff.N2,
		aff.N1, aff.N3,
		-(aff.N0*aff.N4 + aff.N1*aff.N5),
		-(aff.N2*aff.N4 + aff.N3*aff.N5),
	}
}

// Rotation returns the rotation angle of a rigid transform, in (-π, π].
func (aff Affine) Rotation() float64 {
	return Vec(aff.N0, aff.N1).Orientation()
}

// Translation returns the image of the origin.
func (aff Affine) Translation() Vec2 {
	return Vec(aff.N4, aff.N5)
}

// TransformVec applies the linear part of the transform to v, ignoring the
// translation.
func (aff Affine) TransformVec(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

func (aff Affine) IsInf() bool {
	for _, n := range [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5} {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5} {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}
