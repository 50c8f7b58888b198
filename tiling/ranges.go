package tiling

import "math"

// lineRange returns the inclusive range of integer lattice line indices along
// ax that can be crossed between the given endpoints. The ±1 interior shrink
// skips lines that are only grazed by an endpoint; those crossings are
// already covered by the adjacent range. An empty range has lo > hi.
func lineRange(ax vector2d, step float64, endpoints ...[2]float64) (lo, hi int) {
	minDot := math.Inf(1)
	maxDot := math.Inf(-1)
	for _, pt := range endpoints {
		d := ax.dotPoint(pt)
		minDot = math.Min(minDot, d)
		maxDot = math.Max(maxDot, d)
	}
	return int(math.Floor(minDot/step + 1)), int(math.Ceil(maxDot/step - 1))
}
