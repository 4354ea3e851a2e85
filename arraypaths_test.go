package dubins

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain returns pieces following each other, starting at q.
func chain(q OrientedConfig, specs ...[2]float64) []LinCurvPath {
	var out []LinCurvPath
	cur := NewCurvConfig(q, 0)
	for _, spec := range specs {
		p, _ := NewLinCurvPath(cur, spec[0], spec[1])
		out = append(out, p)
		cur = p.End()
	}
	return out
}

func toPaths(pieces []LinCurvPath) []Path {
	out := make([]Path, len(pieces))
	for i, p := range pieces {
		out[i] = p
	}
	return out
}

func TestArrayPathsFlat(t *testing.T) {
	pieces := chain(OrPt(0, 0, 0), [2]float64{0, 1}, [2]float64{1, 1}, [2]float64{-1, 1})
	a, err := ArrayOf(toPaths(pieces))
	require.NoError(t, err)

	assert.Equal(t, 3, a.NumPieces())
	assert.InDelta(t, 3, a.Length(), 1e-15)
	assert.InDelta(t, 1, a.Deflection(), 1e-15)
	assertCurvConfigNear(t, pieces[0].Start(), a.Start(), 0)
	assertCurvConfigNear(t, pieces[2].End(), a.End(), 0)

	end, err := a.At(a.Length())
	require.NoError(t, err)
	assertCurvConfigNear(t, a.End(), end, 1e-12)

	// Arc length 1.5 is in the middle of the second piece.
	q, err := a.At(1.5)
	require.NoError(t, err)
	want, _ := pieces[1].At(0.5)
	assertCurvConfigNear(t, want, q, 1e-12)

	for i, p := range Pieces(a) {
		assert.Equal(t, pieces[i-1], p)
	}
}

func TestArrayPathsNested(t *testing.T) {
	pieces := chain(OrPt(1, 1, 1),
		[2]float64{0, 1}, [2]float64{0.5, 2}, [2]float64{-0.5, 2}, [2]float64{0, 0.5})
	inner, err := ArrayOf(toPaths(pieces[1:3]))
	require.NoError(t, err)
	outer := NewArrayPaths(3)
	require.NoError(t, outer.Set(1, pieces[0]))
	require.NoError(t, outer.Set(2, inner))
	require.NoError(t, outer.Set(3, pieces[3]))

	assert.Equal(t, 4, outer.NumPieces())
	var got []LinCurvPath
	for _, p := range Pieces(outer) {
		got = append(got, p)
	}
	assert.Equal(t, pieces, got)

	var sum float64
	for _, p := range pieces {
		sum += p.Length()
	}
	assert.InDelta(t, sum, outer.Length(), 1e-12)
	assertCurvConfigNear(t, pieces[3].End(), outer.End(), 0)

	// Set stores a copy of compound paths.
	require.NoError(t, inner.Set(1, pieces[0]))
	p, err := outer.Piece(2)
	require.NoError(t, err)
	assert.Equal(t, pieces[1], p)
}

func TestArrayPathsIndexClamp(t *testing.T) {
	pieces := chain(OrPt(0, 0, 0), [2]float64{0, 1}, [2]float64{0, 2})
	a, _ := ArrayOf(toPaths(pieces))

	p, err := a.Piece(0)
	require.NoError(t, err)
	assert.Equal(t, pieces[0], p)
	p, err = a.Piece(7)
	require.NoError(t, err)
	assert.Equal(t, pieces[1], p)

	strict, _ := ArrayOf(toPaths(pieces), WithMode(Strict))
	p, err = strict.Piece(7)
	var rerr *RangeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, pieces[1], p)

	q, err := strict.At(-1)
	require.True(t, errors.As(err, &rerr))
	assertCurvConfigNear(t, strict.Start(), q, 0)
}

type notAPath struct{ LinCurvPath }

func TestArrayPathsSetErrors(t *testing.T) {
	a := NewArrayPaths(1)
	assert.ErrorIs(t, a.Set(1, notAPath{}), ErrNotElementary)

	empty := NewArrayPaths(0)
	assert.Equal(t, 0, empty.NumPieces())
	assert.Equal(t, 0.0, empty.Length())
	assert.Equal(t, CurvConfig{}, empty.End())
	q, err := empty.At(1)
	require.NoError(t, err)
	assert.Equal(t, CurvConfig{}, q)
}

func TestArrayPathsClone(t *testing.T) {
	pieces := chain(OrPt(0, 0, 0), [2]float64{0, 1}, [2]float64{1, math.Pi})
	inner, _ := ArrayOf(toPaths(pieces))
	a := NewArrayPaths(1)
	require.NoError(t, a.Set(1, inner))

	b := a.Clone()
	require.NoError(t, a.Set(1, pieces[0]))
	assert.Equal(t, 1, a.NumPieces())
	assert.Equal(t, 2, b.NumPieces())
	assert.InDelta(t, 1+math.Pi, b.Length(), 1e-12)
}

func TestShorter(t *testing.T) {
	short := Straight(OrPt(0, 0, 0), 1)
	long := Straight(OrPt(0, 0, 0), 2)
	empty := Straight(OrPt(0, 0, 0), 0)

	assert.True(t, Shorter(short, long))
	assert.False(t, Shorter(long, short))
	assert.True(t, Shorter(long, empty))
	assert.False(t, Shorter(empty, long))
}

func TestSamples(t *testing.T) {
	p := Straight(OrPt(0, 0, 0), 1)
	var xs []float64
	for q := range Samples(p, 0.3) {
		xs = append(xs, q.Position().X)
	}
	assert.InDeltaSlice(t, []float64{0, 0.3, 0.6, 0.9, 1}, xs, 1e-12)

	var n int
	for range Samples(Straight(OrPt(0, 0, 0), 0), 0.1) {
		n++
	}
	assert.Equal(t, 1, n)

	n = 0
	for range Samples(p, 0) {
		n++
	}
	assert.Equal(t, 2, n)
}
