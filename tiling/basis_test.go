package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		angleDeg float64
		want     vector2d
	}{
		{0, vector2d{x: 0, y: -1}},
		{90, vector2d{x: 1, y: 0}},
		{180, vector2d{x: 0, y: 1}},
		{270, vector2d{x: -1, y: 0}},
	}
	for _, tt := range tests {
		got := axis(tt.angleDeg)
		assert.InDelta(t, tt.want.x, got.x, 1e-15)
		assert.InDelta(t, tt.want.y, got.y, 1e-15)
	}
}

func TestAxisIsUnitLength(t *testing.T) {
	for _, angleDeg := range []float64{0, 13.7, 45, 60, 120, 301.2} {
		assert.InDelta(t, 1.0, axis(angleDeg).magnitude(), 1e-15)
	}
}

func TestSolveInvertsProjections(t *testing.T) {
	tests := []struct {
		name   string
		u, v   vector2d
		du, dv float64
	}{
		{"orthogonal", axis(0), axis(90), 1.5, -2.25},
		{"hexagonal", axis(0), axis(60), 0.433, 0.866},
		{"tilted", axis(33), axis(123), -7, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := solver{u: tt.u, v: tt.v}.solve(tt.du, tt.dv)
			require.NoError(t, err)
			assert.InDelta(t, tt.du, tt.u.dotPoint(pt), 1e-12)
			assert.InDelta(t, tt.dv, tt.v.dotPoint(pt), 1e-12)
		})
	}
}

func TestSolveDegenerate(t *testing.T) {
	_, err := solver{u: axis(30), v: axis(210)}.solve(1, 2)
	var degenerateErr *DegenerateLatticeError
	require.ErrorAs(t, err, &degenerateErr)
}
