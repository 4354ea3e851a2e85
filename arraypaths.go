package dubins

import (
	"strings"
)

// slot is one entry of an [ArrayPaths]. Exactly one of elem and comp is
// meaningful, as told by kind.
type slot struct {
	kind slotKind
	elem LinCurvPath
	comp Compound
}

type slotKind uint8

const (
	emptySlot slotKind = iota
	elementarySlot
	compoundSlot
)

// ArrayPaths is a [Compound] made of a fixed number of sub-paths, each being
// either a [LinCurvPath] or another [Compound]. Nested compounds are
// flattened when counting and indexing pieces.
//
// ArrayPaths isn't safe for concurrent use while it is being modified with
// [ArrayPaths.Set].
type ArrayPaths struct {
	slots []slot
	mode  Mode
}

var _ Compound = (*ArrayPaths)(nil)

// NewArrayPaths returns an ArrayPaths with n empty slots, to be filled with
// [ArrayPaths.Set].
func NewArrayPaths(n int, opts ...Option) *ArrayPaths {
	return &ArrayPaths{
		slots: make([]slot, max(n, 0)),
		mode:  buildOptions(opts).mode,
	}
}

// ArrayOf returns an ArrayPaths holding paths, in order.
func ArrayOf(paths []Path, opts ...Option) (*ArrayPaths, error) {
	a := NewArrayPaths(len(paths), opts...)
	for i, p := range paths {
		if err := a.Set(i+1, p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Len returns the number of slots.
func (a *ArrayPaths) Len() int { return len(a.slots) }

// Set stores p in the i-th slot, with 1 ≤ i ≤ a.Len(). Compound paths are
// deep-copied when they are an *ArrayPaths or a *[DubinsLikePath]; other
// compounds are assumed to be immutable.
//
// Set returns [ErrNotElementary] if p is neither a [LinCurvPath] nor a
// [Compound].
func (a *ArrayPaths) Set(i int, p Path) error {
	if len(a.slots) == 0 {
		return a.mode.report(&RangeError{Op: "ArrayPaths.Set", Value: float64(i), Min: 1, Max: 0})
	}
	i, err := a.mode.clampIndex("ArrayPaths.Set", i, 1, len(a.slots))
	if err != nil {
		return err
	}
	switch p := p.(type) {
	case LinCurvPath:
		a.slots[i-1] = slot{kind: elementarySlot, elem: p}
	case *ArrayPaths:
		a.slots[i-1] = slot{kind: compoundSlot, comp: p.Clone()}
	case *DubinsLikePath:
		a.slots[i-1] = slot{kind: compoundSlot, comp: p.Clone()}
	case Compound:
		a.slots[i-1] = slot{kind: compoundSlot, comp: p}
	default:
		return ErrNotElementary
	}
	return nil
}

// Clone returns a deep copy of a.
func (a *ArrayPaths) Clone() *ArrayPaths {
	b := &ArrayPaths{slots: make([]slot, len(a.slots)), mode: a.mode}
	for i, s := range a.slots {
		switch c := s.comp.(type) {
		case *ArrayPaths:
			s.comp = c.Clone()
		case *DubinsLikePath:
			s.comp = c.Clone()
		}
		b.slots[i] = s
	}
	return b
}

// NumPieces implements [Compound].
func (a *ArrayPaths) NumPieces() int {
	n := 0
	for _, s := range a.slots {
		switch s.kind {
		case elementarySlot:
			n++
		case compoundSlot:
			n += s.comp.NumPieces()
		}
	}
	return n
}

// Piece implements [Compound].
func (a *ArrayPaths) Piece(i int) (LinCurvPath, error) {
	n := a.NumPieces()
	if n == 0 {
		return Straight(OrientedConfig{}, 0), a.mode.report(&RangeError{Op: "ArrayPaths.Piece", Value: float64(i), Min: 1, Max: 0})
	}
	i, err := a.mode.clampIndex("ArrayPaths.Piece", i, 1, n)
	for _, s := range a.slots {
		switch s.kind {
		case elementarySlot:
			if i == 1 {
				return s.elem, err
			}
			i--
		case compoundSlot:
			m := s.comp.NumPieces()
			if i <= m {
				p, _ := s.comp.Piece(i)
				return p, err
			}
			i -= m
		}
	}
	panic("unreachable")
}

// Start implements [Path].
func (a *ArrayPaths) Start() CurvConfig {
	for _, p := range Pieces(a) {
		return p.Start()
	}
	return CurvConfig{}
}

// End implements [Path].
func (a *ArrayPaths) End() CurvConfig {
	n := a.NumPieces()
	if n == 0 {
		return CurvConfig{}
	}
	p, _ := a.Piece(n)
	return p.End()
}

// Length implements [Path]. It is the sum of the lengths of the pieces.
func (a *ArrayPaths) Length() float64 {
	var l float64
	for _, s := range a.slots {
		switch s.kind {
		case elementarySlot:
			l += s.elem.Length()
		case compoundSlot:
			l += s.comp.Length()
		}
	}
	return l
}

// Deflection implements [Path].
func (a *ArrayPaths) Deflection() float64 {
	var d float64
	for _, s := range a.slots {
		switch s.kind {
		case elementarySlot:
			d += s.elem.Deflection()
		case compoundSlot:
			d += s.comp.Deflection()
		}
	}
	return d
}

// At implements [Path].
func (a *ArrayPaths) At(s float64) (CurvConfig, error) {
	s, err := a.mode.clamp("ArrayPaths.At", s, 0, a.Length())
	return compoundAt(a, s), err
}

func (a *ArrayPaths) String() string {
	var sb strings.Builder
	describeCompound(&sb, a)
	return sb.String()
}
