package trajectory

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/dubins"
)

func TestWriteReadStates(t *testing.T) {
	states := []State{
		{Date: 0, Config: dubins.OrPt(0, 0, 0)},
		{Date: 0.1, Config: dubins.OrPt(0.05, 0.001, 0.02), TransVel: 1, RotVel: 0.2},
		{Date: 0.2, Config: dubins.OrPt(-3, 1e-9, -math.Pi/2), TransVel: 1.5, RotVel: -0.25},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteStates(&buf, states))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "0.1 0.05 0.001 0.02 1 0.2", lines[2])

	got, err := ReadStates(&buf, dubins.OrPt(0, 0, 0))
	require.NoError(t, err)
	require.Len(t, got, len(states))
	for i := range states {
		assert.Equal(t, states[i].Date, got[i].Date)
		assert.Equal(t, states[i].TransVel, got[i].TransVel)
		assert.Equal(t, states[i].RotVel, got[i].RotVel)
		assert.True(t, states[i].Config.Equal(got[i].Config), "state %d: got %v, want %v", i, got[i], states[i])
	}
}

func TestReadStatesFrame(t *testing.T) {
	in := "t x y th v om\n\n0 1 2 0.5 1 0 extra\n"
	got, err := ReadStates(strings.NewReader(in), dubins.OrPt(1, 0, math.Pi/2))
	require.NoError(t, err)
	require.Len(t, got, 1)
	q := got[0].Config
	assert.InDelta(t, 2, q.Position().X, 1e-12)
	assert.InDelta(t, 0, q.Position().Y, 1e-12)
	assert.InDelta(t, 0.5-math.Pi/2, q.Orientation(), 1e-12)
}

func TestReadStatesErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "t x y th v om\n0 1 2 3\n", "line 2: got 4 fields, want 6"},
		{"number", "t x y th v om\n0 1 2 3 4 5\n0 1 x 3 4 5\n", "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadStates(strings.NewReader(tt.in), dubins.OrPt(0, 0, 0))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	got, err := ReadStates(strings.NewReader(""), dubins.OrPt(0, 0, 0))
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestStateString(t *testing.T) {
	s := State{Date: 1.5, Config: dubins.OrPt(1, 2, 0), TransVel: 2, RotVel: 0.5}
	assert.Equal(t, "1.5: "+s.Config.String()+" v=2 ω=0.5", s.String())
}
