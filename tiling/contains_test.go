package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainmentFilter(t *testing.T) {
	outer := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	hole := Ring{{1, 1}, {3, 1}, {3, 3}, {1, 3}, {1, 1}}
	p, err := NewPolygon(outer, hole)
	require.NoError(t, err)
	other, err := NewPolygon(Ring{{10, 10}, {11, 10}, {11, 11}, {10, 10}})
	require.NoError(t, err)
	filter := &containmentFilter{polygons: []Polygon{p, other}}

	tests := []struct {
		name string
		pt   [2]float64
		want bool
	}{
		{"inside ring area", [2]float64{0.5, 2}, true},
		{"inside hole", [2]float64{2, 2}, false},
		{"outside bbox", [2]float64{-1, 2}, false},
		{"in bbox but outside ring", [2]float64{10.1, 10.9}, false},
		{"inside second polygon", [2]float64{10.6, 10.3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.contains(tt.pt))
		})
	}
}
