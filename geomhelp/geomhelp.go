package geomhelp

import (
	"math"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/muesli/reflow/truncate"
)

// PointInRing is an even-odd ray cast against a closed ring (first and last
// vertex coincident). A horizontal ray leaves pt toward increasing longitude;
// parity toggles for every edge whose latitude span straddles the ray and
// whose crossing longitude lies strictly right of pt.
// Original implementation idea: http://rosettacode.org/wiki/Ray-casting_algorithm#Go
func PointInRing(pt [2]float64, ring [][2]float64) bool {
	inside := false
	for i := 0; i < len(ring)-1; i++ {
		start, end := ring[i], ring[i+1]
		if (start[1] > pt[1]) == (end[1] > pt[1]) {
			continue // edge does not span the ray's latitude
		}
		crossingLon := start[0] + (pt[1]-start[1])/(end[1]-start[1])*(end[0]-start[0])
		if crossingLon > pt[0] {
			inside = !inside
		}
	}
	return inside
}

// RingExtent returns the axis-aligned bounding box of a ring.
func RingExtent(ring [][2]float64) geom.Extent {
	e := geom.Extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, pt := range ring {
		e[0] = math.Min(e[0], pt[0])
		e[1] = math.Min(e[1], pt[1])
		e[2] = math.Max(e[2], pt[0])
		e[3] = math.Max(e[3], pt[1])
	}
	return e
}

// CombineExtents returns the smallest extent covering all given extents.
func CombineExtents(extents ...geom.Extent) geom.Extent {
	combined := geom.Extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, e := range extents {
		combined[0] = math.Min(combined[0], e[0])
		combined[1] = math.Min(combined[1], e[1])
		combined[2] = math.Max(combined[2], e[2])
		combined[3] = math.Max(combined[3], e[3])
	}
	return combined
}

// ExtentCenter returns the midpoint of an extent.
func ExtentCenter(e geom.Extent) [2]float64 {
	return [2]float64{e.MinX() + e.XSpan()/2, e.MinY() + e.YSpan()/2}
}

// WktMustEncode creates a WKT representation of a geometry for logging,
// truncated to maxLen runes (0 means no truncation).
func WktMustEncode(g geom.Geometry, maxLen uint) string {
	if maxLen == 0 {
		return wkt.MustEncode(g)
	}
	return truncate.StringWithTail(wkt.MustEncode(g), maxLen, "...")
}
