package dubins

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestMod2Pi(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
		{7, 7 - 2*math.Pi},
	}
	for _, tt := range tests {
		diff(t, tt.want, Mod2Pi(tt.in), cmpopts.EquateApprox(0, 1e-12))
	}
	assert.True(t, math.IsNaN(Mod2Pi(math.Inf(1))))
}

func TestTurnAmount(t *testing.T) {
	diff(t, 0.0, turnAmount(0))
	diff(t, 0.0, turnAmount(2*math.Pi))
	diff(t, 0.0, turnAmount(-2*math.Pi))
	diff(t, 0.0, turnAmount(2*math.Pi-SmallDouble/2))
	diff(t, 0.0, turnAmount(-SmallDouble/2))
	diff(t, 3*math.Pi/2, turnAmount(-math.Pi/2), cmpopts.EquateApprox(0, 1e-12))
	diff(t, math.Pi/2, turnAmount(5*math.Pi/2), cmpopts.EquateApprox(0, 1e-12))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 0, Sign(SmallDouble/2))
	assert.Equal(t, 0, Sign(-SmallDouble/2))
	assert.Equal(t, 1, Sign(1e-9))
	assert.Equal(t, -1, Sign(-1e-9))
	assert.True(t, IsZero(0))
	assert.True(t, IsPositive(1e-9))
	assert.False(t, IsPositive(SmallDouble))
	assert.True(t, IsNegative(-1))
}

func TestDegrees(t *testing.T) {
	diff(t, 180.0, Rad2Deg(math.Pi), cmpopts.EquateApprox(0, 1e-12))
	diff(t, math.Pi/2, Deg2Rad(90), cmpopts.EquateApprox(0, 1e-12))
}
