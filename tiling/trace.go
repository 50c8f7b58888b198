package tiling

import (
	"math"
	"sync"
)

// address identifies a lattice cell. Squares use i and j only (k stays 0);
// hexagon tilings address triangular cells with all three indices and the
// invariant i-j+k ∈ {-1,+1}.
type address [3]int

// keepMap is the sparse boundary-adjacency map. An absent address means
// "not explored", which is distinct from present-but-false.
type keepMap struct {
	mu    sync.Mutex
	cells map[address]bool
}

func newKeepMap() *keepMap {
	return &keepMap{cells: make(map[address]bool)}
}

// flag marks a cell boundary-adjacent. Setting true is idempotent and
// commutative, so concurrent tracers share the one lock and nothing more.
func (km *keepMap) flag(a address) {
	km.mu.Lock()
	km.cells[a] = true
	km.mu.Unlock()
}

func (km *keepMap) kept(a address) bool {
	return km.cells[a]
}

// tracer walks polygon boundaries through the lattice and flags every cell
// adjacent to a lattice line crossing. Crossings are solved exactly as
// 2-variable linear systems, not estimated by grid walking.
type tracer struct {
	axes []vector2d
	step float64
	hex  bool
	keep *keepMap
	proj Projection
}

func (t *tracer) tracePolygon(p Polygon) error {
	if err := t.traceRing(p.Outer); err != nil {
		return err
	}
	for _, hole := range p.Holes {
		if err := t.traceRing(hole); err != nil {
			return err
		}
	}
	return nil
}

func (t *tracer) traceRing(ring Ring) error {
	for i := 0; i < len(ring)-1; i++ {
		if err := t.traceEdge(t.proj.Forward(ring[i]), t.proj.Forward(ring[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// traceEdge intersects the edge's infinite line with every lattice line in
// range, on every axis family, and flags both straddling cells per crossing.
// The edge line is dot(beta, pt) = d for any pt on the segment's extension.
func (t *tracer) traceEdge(p0, p1 [2]float64) error {
	beta := vector2d{x: p1[1] - p0[1], y: p0[0] - p1[0]}
	d := p0[0]*p1[1] - p0[1]*p1[0]
	for axI, ax := range t.axes {
		lo, hi := lineRange(ax, t.step, p0, p1)
		if lo > hi {
			continue // edge parallel to, or not reaching, this line family
		}
		s := solver{u: ax, v: beta}
		for i := lo; i <= hi; i++ {
			crossing, err := s.solve(float64(i)*t.step, d)
			if err != nil {
				return err
			}
			if t.hex {
				t.flagHexCrossing(axI, i, crossing)
			} else {
				t.flagSquareCrossing(axI, i, crossing)
			}
		}
	}
	return nil
}

// flagSquareCrossing flags the two cells sharing the crossed line: index i
// and i-1 along the crossed axis, both at the crossing's index on the other
// axis.
func (t *tracer) flagSquareCrossing(axI, i int, crossing [2]float64) {
	other := 1 - axI
	o := int(math.Floor(t.axes[other].dotPoint(crossing) / t.step))
	if axI == 0 {
		t.keep.flag(address{i, o, 0})
		t.keep.flag(address{i - 1, o, 0})
	} else {
		t.keep.flag(address{o, i, 0})
		t.keep.flag(address{o, i - 1, 0})
	}
}

// flagHexCrossing flags the two triangles straddling the crossed line.
// With axes at tilt, tilt+60 and tilt+120 the middle lattice coordinate is
// the sum of the outer two (f1 = f0 + f2), so on a crossed line the floor
// addresses of both sides follow in closed form; the i-j+k parity picks the
// +1 ("down") and -1 ("up") triangle of the pair.
func (t *tracer) flagHexCrossing(axI, i int, crossing [2]float64) {
	switch axI {
	case 0:
		j := int(math.Floor(t.axes[1].dotPoint(crossing) / t.step))
		t.keep.flag(address{i, j, j - i + 1})
		t.keep.flag(address{i - 1, j, j - i})
	case 1:
		i0 := int(math.Floor(t.axes[0].dotPoint(crossing) / t.step))
		t.keep.flag(address{i0, i, i - i0 - 1})
		t.keep.flag(address{i0, i - 1, i - i0})
	case 2:
		i0 := int(math.Floor(t.axes[0].dotPoint(crossing) / t.step))
		t.keep.flag(address{i0, i0 + i, i + 1})
		t.keep.flag(address{i0, i0 + i, i - 1})
	}
}
