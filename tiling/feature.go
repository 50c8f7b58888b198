package tiling

import (
	"strconv"
	"strings"
)

// Feature is one output cell: a stable id, its lattice address, the
// geographic cell center and a closed ring of geographic vertices.
type Feature struct {
	ID      string       `json:"id"`
	Address []int        `json:"address"`
	Center  [2]float64   `json:"center"`
	Ring    [][2]float64 `json:"ring"`
}

// encodeAddress builds the sign-safe textual id: negative components are
// prefixed with M, components joined by dots. (-1,-2) becomes "M1.M2".
func encodeAddress(addr []int) string {
	parts := make([]string, len(addr))
	for i, c := range addr {
		if c < 0 {
			parts[i] = "M" + strconv.Itoa(-c)
		} else {
			parts[i] = strconv.Itoa(c)
		}
	}
	return strings.Join(parts, ".")
}
