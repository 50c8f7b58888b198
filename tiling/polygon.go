package tiling

import (
	"fmt"

	"github.com/go-spatial/geom"
	"github.com/pdok/tegula/geomhelp"
)

// Ring is a closed boundary traversal: at least 4 points, first and last
// coincident. Insertion order is significant, it defines inside/outside via
// the even-odd test.
type Ring [][2]float64

// Polygon is one outer ring plus zero or more hole rings, in lon/lat.
// BBox is derived from the outer ring only.
type Polygon struct {
	Outer Ring
	Holes []Ring
	BBox  geom.Extent
}

// NewPolygon validates the rings and caches the outer ring's bounding box.
func NewPolygon(outer Ring, holes ...Ring) (Polygon, error) {
	p := Polygon{Outer: outer, Holes: holes, BBox: geomhelp.RingExtent(outer)}
	if err := p.Validate(); err != nil {
		return Polygon{}, err
	}
	return p, nil
}

// Validate checks all rings for the closed-and-big-enough contract.
func (p *Polygon) Validate() error {
	if err := validateRing(p.Outer); err != nil {
		return err
	}
	for _, hole := range p.Holes {
		if err := validateRing(hole); err != nil {
			return err
		}
	}
	return nil
}

func validateRing(ring Ring) error {
	if len(ring) < 4 {
		return &GeometryError{Msg: fmt.Sprintf("ring has %d points, need at least 4", len(ring))}
	}
	if ring[0] != ring[len(ring)-1] {
		return &GeometryError{Msg: fmt.Sprintf("ring is not closed: %v != %v", ring[0], ring[len(ring)-1])}
	}
	return nil
}

// AsGeomPolygon returns the go-spatial representation, mainly for WKT
// debug encoding. Rings keep their closing vertex.
func (p Polygon) AsGeomPolygon() geom.Polygon {
	rings := make([][][2]float64, 0, 1+len(p.Holes))
	rings = append(rings, p.Outer)
	for _, hole := range p.Holes {
		rings = append(rings, hole)
	}
	return rings
}
