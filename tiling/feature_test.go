package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeAddress(t *testing.T) {
	tests := []struct {
		addr []int
		want string
	}{
		{[]int{0, 0}, "0.0"},
		{[]int{12, 7}, "12.7"},
		{[]int{-1, -2}, "M1.M2"},
		{[]int{3, -4, -7}, "3.M4.M7"},
		{[]int{0, -1, -1}, "0.M1.M1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, encodeAddress(tt.addr))
	}
}
