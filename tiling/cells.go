package tiling

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdok/tegula/mathhelp"
)

// assembler enumerates the lattice window in deterministic index order and
// emits every cell that is boundary-adjacent or whose center lies inside an
// input polygon. Features are keyed by id in an ordered map so the output
// order is stable and duplicates cannot slip in.
type assembler struct {
	axes   []vector2d
	step   float64
	keep   *keepMap
	proj   Projection
	filter *containmentFilter
	feats  *orderedmap.OrderedMap[string, Feature]
}

func newAssembler(axes []vector2d, step float64, keep *keepMap, proj Projection, filter *containmentFilter) *assembler {
	return &assembler{
		axes:   axes,
		step:   step,
		keep:   keep,
		proj:   proj,
		filter: filter,
		feats:  orderedmap.New[string, Feature](),
	}
}

func (a *assembler) features() []Feature {
	out := make([]Feature, 0, a.feats.Len())
	for pair := a.feats.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (a *assembler) emit(f Feature) {
	if _, present := a.feats.Get(f.ID); present {
		return
	}
	a.feats.Set(f.ID, f)
}

// assembleSquares sweeps the window in row-major index order. A square cell
// (i, j) spans lattice coordinates [i, i+1] x [j, j+1].
func (a *assembler) assembleSquares(iLo, iHi, jLo, jHi int) error {
	s := solver{u: a.axes[0], v: a.axes[1]}
	for i := iLo; i <= iHi; i++ {
		for j := jLo; j <= jHi; j++ {
			center, err := s.solve((float64(i)+0.5)*a.step, (float64(j)+0.5)*a.step)
			if err != nil {
				return err
			}
			centerLonLat := a.proj.Inverse(center)
			if !a.keep.kept(address{i, j, 0}) && !a.filter.contains(centerLonLat) {
				continue
			}
			ring, err := a.squareRing(s, i, j)
			if err != nil {
				return err
			}
			addr := []int{i, j}
			a.emit(Feature{
				ID:      encodeAddress(addr),
				Address: addr,
				Center:  centerLonLat,
				Ring:    ring,
			})
		}
	}
	return nil
}

func (a *assembler) squareRing(s solver, i, j int) ([][2]float64, error) {
	corners := [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	ring := make([][2]float64, 0, len(corners))
	for _, c := range corners {
		pt, err := s.solve(float64(i+c[0])*a.step, float64(j+c[1])*a.step)
		if err != nil {
			return nil, err
		}
		ring = append(ring, a.proj.Inverse(pt))
	}
	return ring, nil
}

// hexTriangles lists the six triangular cells that make up the hexagon
// centered at lattice node (i, j). Alternating down (+1 parity) and up (-1
// parity) triangles around the node.
func hexTriangles(i, j int) [6]address {
	k := j - i
	return [6]address{
		{i, j, k + 1},
		{i, j, k - 1},
		{i, j - 1, k},
		{i - 1, j, k},
		{i - 1, j - 1, k + 1},
		{i - 1, j - 1, k - 1},
	}
}

// hexVertexOffsets are the (i, j) lattice offsets of the hexagon's six ring
// vertices around its center node, in cyclic order.
var hexVertexOffsets = [6][2]int{{0, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, 0}, {1, 1}}

// assembleHexagons sweeps the window for lattice nodes that carry a hexagon
// center: those with (i + j) mod 3 == 0. A hexagon is retained when any of
// its six constituent triangles was flagged, or its center is contained.
func (a *assembler) assembleHexagons(iLo, iHi, jLo, jHi int) error {
	s := solver{u: a.axes[0], v: a.axes[1]}
	for i := iLo; i <= iHi; i++ {
		for j := jLo; j <= jHi; j++ {
			if mathhelp.EuclidianMod(i+j, 3) != 0 {
				continue
			}
			center, err := s.solve(float64(i)*a.step, float64(j)*a.step)
			if err != nil {
				return err
			}
			centerLonLat := a.proj.Inverse(center)
			if !a.hexKept(i, j) && !a.filter.contains(centerLonLat) {
				continue
			}
			ring, err := a.hexRing(s, i, j)
			if err != nil {
				return err
			}
			addr := []int{i, j, j - i}
			a.emit(Feature{
				ID:      encodeAddress(addr),
				Address: addr,
				Center:  centerLonLat,
				Ring:    ring,
			})
		}
	}
	return nil
}

func (a *assembler) hexKept(i, j int) bool {
	for _, tri := range hexTriangles(i, j) {
		if a.keep.kept(tri) {
			return true
		}
	}
	return false
}

func (a *assembler) hexRing(s solver, i, j int) ([][2]float64, error) {
	ring := make([][2]float64, 0, len(hexVertexOffsets)+1)
	for _, o := range hexVertexOffsets {
		pt, err := s.solve(float64(i+o[0])*a.step, float64(j+o[1])*a.step)
		if err != nil {
			return nil, err
		}
		ring = append(ring, a.proj.Inverse(pt))
	}
	ring = append(ring, ring[0])
	return ring, nil
}
