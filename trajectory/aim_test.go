package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/dubins"
)

var unitProfile = Profile{MaxVel: 1, MaxAcc: 1, MaxDec: 1, TimeStep: 0.1}

func assertNear(t *testing.T, want, got dubins.OrientedConfig) {
	t.Helper()
	if want.Distance(got) > 1e-9 || math.Abs(dubins.Mod2Pi(want.Orientation()-got.Orientation())) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, unitProfile.Validate())

	err := Profile{MaxVel: 1, MaxAcc: math.Inf(1)}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max acceleration must be strictly positive")
	assert.Contains(t, err.Error(), "max deceleration must be strictly positive")
	assert.Contains(t, err.Error(), "time step must be strictly positive")
	assert.NotContains(t, err.Error(), "max velocity")
}

func TestProfileDistances(t *testing.T) {
	p := Profile{MaxVel: 2, MaxAcc: 1, MaxDec: 4, TimeStep: 0.1}
	assert.Equal(t, 2.0, p.AccDist())
	assert.Equal(t, 0.5, p.DecDist())
}

func TestExtend(t *testing.T) {
	p := dubins.Straight(dubins.OrPt(0, 0, math.Pi/2), 3)
	ext, err := Extend(p, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, ext.NumPieces())
	assert.InDelta(t, 6, ext.Length(), 1e-12)
	assertNear(t, dubins.OrPt(0, -1, math.Pi/2), ext.Start().OrientedConfig)
	assertNear(t, dubins.OrPt(0, 5, math.Pi/2), ext.End().OrientedConfig)
}

func TestAimStraight(t *testing.T) {
	path := dubins.Straight(dubins.OrPt(0, 0, 0), 10)
	states, err := Aim(path, unitProfile)
	require.NoError(t, err)
	assert.InDelta(t, 118, len(states), 2)

	first, last := states[0], states[len(states)-1]
	assert.Equal(t, 0.0, first.Date)
	assert.Equal(t, 0.0, first.TransVel)
	assertNear(t, dubins.OrPt(-0.5, 0, 0), first.Config)
	assert.Equal(t, 0.0, last.TransVel)
	assertNear(t, dubins.OrPt(10.5, 0, 0), last.Config)

	for i, s := range states {
		assert.GreaterOrEqual(t, s.TransVel, 0.0)
		assert.LessOrEqual(t, s.TransVel, unitProfile.MaxVel)
		assert.Equal(t, 0.0, s.RotVel)
		assert.InDelta(t, 0, s.Config.Position().Y, 1e-12)
		if i > 0 {
			assert.InDelta(t, unitProfile.TimeStep, s.Date-states[i-1].Date, 1e-9)
		}
	}
}

func TestAimArc(t *testing.T) {
	path, err := dubins.NewLinCurvPath(dubins.CurvPt(0, 0, 0, 0.5), 0, 2)
	require.NoError(t, err)
	prof := Profile{MaxVel: 2, MaxAcc: 1, MaxDec: 4, TimeStep: 0.05}
	states, err := Aim(path, prof)
	require.NoError(t, err)

	var cruise int
	for _, s := range states {
		if s.RotVel != 0 {
			cruise++
			assert.Equal(t, prof.MaxVel, s.TransVel)
			assert.Equal(t, 1.0, s.RotVel)
		}
	}
	// 2 units of arc length at velocity 2, sampled every 0.05.
	assert.InDelta(t, 20, cruise, 1)
}

func TestAimInvalidProfile(t *testing.T) {
	_, err := Aim(dubins.Straight(dubins.OrPt(0, 0, 0), 1), Profile{})
	assert.Error(t, err)
}

func TestPlanSmooth(t *testing.T) {
	d, err := dubins.NewDubins(1)
	require.NoError(t, err)
	start, goal := dubins.OrPt(0, 0, 0), dubins.OrPt(10, 0, 0)

	plan, err := PlanSmooth(start, goal, unitProfile, d)
	require.NoError(t, err)
	assert.InDelta(t, 9, plan.Path.Length(), 1e-9)
	assert.InDelta(t, 10, plan.Length(), 1e-9)
	assertNear(t, dubins.OrPt(0.5, 0, 0), plan.Path.Start().OrientedConfig)
	assertNear(t, start, plan.Extended.Start().OrientedConfig)
	assertNear(t, goal, plan.Extended.End().OrientedConfig)

	states, err := plan.Aim()
	require.NoError(t, err)
	require.NotEmpty(t, states)
	assertNear(t, start, states[0].Config)
	assertNear(t, goal, states[len(states)-1].Config)

	_, err = PlanSmooth(start, goal, Profile{}, d)
	assert.Error(t, err)
}

func TestPlanSmoothTurn(t *testing.T) {
	f, err := dubins.NewFSC(1, 1)
	require.NoError(t, err)
	start, goal := dubins.OrPt(0, 0, 0), dubins.OrPt(0, 6, math.Pi)
	plan, err := PlanSmooth(start, goal, unitProfile, f)
	require.NoError(t, err)
	assert.Equal(t, dubins.Continuous, plan.Path.Kind())
	assertNear(t, goal, plan.Extended.End().OrientedConfig)
	assert.InDelta(t, plan.Path.Length()+1, plan.Length(), 1e-9)
}
