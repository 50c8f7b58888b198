package tiling

import (
	"github.com/pdok/tegula/geomhelp"
)

// containmentFilter retains cells whose center lies inside at least one
// input polygon. Used for cells the boundary tracer never touched.
type containmentFilter struct {
	polygons []Polygon
}

// contains runs the hole-aware even-odd test with a bounding box fast path:
// a point is inside a polygon iff the outer ring test passes and every hole
// ring test fails.
func (f *containmentFilter) contains(lonLat [2]float64) bool {
	for i := range f.polygons {
		p := &f.polygons[i]
		if !p.BBox.ContainsPoint(lonLat) {
			continue
		}
		if !geomhelp.PointInRing(lonLat, p.Outer) {
			continue
		}
		inHole := false
		for _, hole := range p.Holes {
			if geomhelp.PointInRing(lonLat, hole) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}
