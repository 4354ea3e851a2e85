package dubins

import (
	"iter"
	"math"
	"strings"
)

// Path is the read-only contract shared by every path of this package.
type Path interface {
	// Start returns the first configuration of the path.
	Start() CurvConfig
	// End returns the last configuration of the path.
	End() CurvConfig
	// Length returns the arc length of the path. It is never negative.
	Length() float64
	// Deflection returns the change of orientation along the path, not
	// reduced modulo 2π.
	Deflection() float64
	// At returns the configuration at arc length s. Values of s outside of
	// [0, Length()] are clamped, and reported as a [*RangeError] depending
	// on the path's [Mode].
	At(s float64) (CurvConfig, error)
}

// Compound is a path made of an ordered sequence of elementary pieces.
type Compound interface {
	Path
	// NumPieces returns the number of elementary pieces, counting the
	// pieces of nested compounds.
	NumPieces() int
	// Piece returns the i-th elementary piece, with 1 ≤ i ≤ NumPieces().
	// Out of range indices are clamped.
	Piece(i int) (LinCurvPath, error)
}

// Shorter reports whether a is shorter than b. A path whose length is
// strictly positive is always shorter than one whose length isn't.
func Shorter(a, b Path) bool {
	la, lb := a.Length(), b.Length()
	return (IsPositive(la) && la < lb) || !IsPositive(lb)
}

// Pieces returns an iterator over the elementary pieces of p, along with
// their 1-based index. A [LinCurvPath] yields itself.
func Pieces(p Path) iter.Seq2[int, LinCurvPath] {
	return func(yield func(int, LinCurvPath) bool) {
		switch p := p.(type) {
		case LinCurvPath:
			yield(1, p)
		case Compound:
			n := p.NumPieces()
			for i := 1; i <= n; i++ {
				piece, _ := p.Piece(i)
				if !yield(i, piece) {
					return
				}
			}
		}
	}
}

// Samples returns an iterator over the configurations of p, taken every
// step units of arc length. The end configuration is always yielded last.
// A step that isn't strictly positive yields the two ends only.
func Samples(p Path, step float64) iter.Seq[CurvConfig] {
	return func(yield func(CurvConfig) bool) {
		l := p.Length()
		if !IsPositive(l) {
			yield(p.Start())
			return
		}
		n := 1
		if step > 0 {
			n = int(math.Ceil(l / step))
		}
		if !yield(p.Start()) {
			return
		}
		for i := 1; i < n; i++ {
			q, _ := p.At(float64(i) * step)
			if !yield(q) {
				return
			}
		}
		yield(p.End())
	}
}

// compoundAt walks the pieces of c until it reaches the one containing the
// arc length s, which must already be in [0, c.Length()].
func compoundAt(c Compound, s float64) CurvConfig {
	n := c.NumPieces()
	if n == 0 {
		return c.Start()
	}
	for i := 1; i < n; i++ {
		p, _ := c.Piece(i)
		if s < p.length {
			return p.at(s)
		}
		s -= p.length
	}
	last, _ := c.Piece(n)
	return last.at(math.Min(s, last.length))
}

// describeCompound writes the pieces of c as {piece, piece, ...}.
func describeCompound(sb *strings.Builder, c Compound) {
	sb.WriteByte('{')
	for i, p := range Pieces(c) {
		if i > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')
}
