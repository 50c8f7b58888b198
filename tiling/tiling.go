// Package tiling covers polygons with regular grids of square or hexagonal
// cells. The lattice is laid out in a local planar projection around a
// center point; cells are retained when they touch a polygon boundary or
// their center falls inside a polygon.
package tiling

import (
	"log"
	"sync"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/go-spatial/geom"
	"github.com/perimeterx/marshmallow"
	"golang.org/x/exp/maps"

	"github.com/pdok/tegula/geomhelp"
)

const (
	ShapeSquare  = "square"
	ShapeHexagon = "hexagon"

	// hexStep spaces the three line families so hexagons of a given width
	// (corner to corner) fall out of the triangular lattice.
	hexStep = 0.4330127018922193 // sqrt(3) / 4
)

// Options steer a tiling run. The zero value is not usable; use
// DefaultOptions or unmarshal from JSON, both of which apply defaults and
// validation.
type Options struct {
	// Shape of the cells, square or hexagon.
	Shape string `json:"shape" default:"square" validate:"oneof=square hexagon"`
	// Width of a cell in meters, measured at the lattice center.
	// Corner to corner for hexagons. Clamped to [500, 500000].
	Width float64 `json:"width" default:"1000"`
	// Tilt of the lattice in degrees clockwise from north.
	Tilt float64 `json:"tilt"`
	// Center of the lattice as lon/lat. Defaults to the midpoint of the
	// combined bounding box of the input polygons.
	Center *[2]float64 `json:"center"`
	// Projection overrides the default local planar projection. Set
	// programmatically only.
	Projection Projection `json:"-"`
}

// UnmarshalJSON applies defaults before unmarshalling and validates after.
// Unknown keys are logged, not rejected.
func (o *Options) UnmarshalJSON(data []byte) error {
	if err := defaults.Set(o); err != nil {
		return err
	}
	unknown, err := marshmallow.Unmarshal(data, o, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		log.Printf("ignoring unknown tiling options: %v", maps.Keys(unknown))
	}
	return validator.New(validator.WithRequiredStructEnabled()).Struct(o)
}

// DefaultOptions returns options with all defaults applied.
func DefaultOptions() Options {
	var o Options
	if err := defaults.Set(&o); err != nil {
		panic(err) // only fails on a broken struct tag
	}
	return o
}

func clampWidth(width float64) float64 {
	if width < MinWidth {
		return MinWidth
	}
	if width > MaxWidth {
		return MaxWidth
	}
	return width
}

// Generate covers the given polygons with cells per the options and returns
// the retained cells as features in deterministic index order. Polygons are
// traced concurrently; assembly is single threaded.
func Generate(polygons []Polygon, opts Options) ([]Feature, error) {
	if err := defaults.Set(&opts); err != nil {
		return nil, err
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&opts); err != nil {
		return nil, &ConfigError{Msg: err.Error()}
	}
	for i := range polygons {
		if err := polygons[i].Validate(); err != nil {
			return nil, err
		}
	}
	if len(polygons) == 0 {
		return []Feature{}, nil
	}

	width := clampWidth(opts.Width)
	center := opts.Center
	if center == nil {
		c := geomhelp.ExtentCenter(combinedBBox(polygons))
		center = &c
	}
	proj := opts.Projection
	if proj == nil {
		var err error
		proj, err = NewDefaultProjection(*center, width)
		if err != nil {
			return nil, err
		}
	}

	hex := opts.Shape == ShapeHexagon
	var axes []vector2d
	step := 1.0
	if hex {
		axes = []vector2d{axis(opts.Tilt), axis(opts.Tilt + 60), axis(opts.Tilt + 120)}
		step = hexStep
	} else {
		axes = []vector2d{axis(opts.Tilt), axis(opts.Tilt + 90)}
	}
	// fail early on a collapsed axis pair instead of mid-trace
	if _, err := (solver{u: axes[0], v: axes[1]}).solve(0, 0); err != nil {
		return nil, err
	}

	keep := newKeepMap()
	t := &tracer{axes: axes, step: step, hex: hex, keep: keep, proj: proj}

	var wg sync.WaitGroup
	errs := make([]error, len(polygons))
	for i := range polygons {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = t.tracePolygon(polygons[i])
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	iLo, iHi, jLo, jHi := enumerationWindow(polygons, proj, axes, step)
	filter := &containmentFilter{polygons: polygons}
	asm := newAssembler(axes, step, keep, proj, filter)
	if hex {
		if err := asm.assembleHexagons(iLo, iHi, jLo, jHi); err != nil {
			return nil, err
		}
	} else {
		if err := asm.assembleSquares(iLo, iHi, jLo, jHi); err != nil {
			return nil, err
		}
	}
	return asm.features(), nil
}

func combinedBBox(polygons []Polygon) geom.Extent {
	extents := make([]geom.Extent, len(polygons))
	for i := range polygons {
		extents[i] = polygons[i].BBox
	}
	return geomhelp.CombineExtents(extents...)
}

// enumerationWindow bounds the index sweep by the combined bounding box of
// the inputs, projected to planar space. Cells flagged outside the window
// by grazing crossings stay out of the output.
func enumerationWindow(polygons []Polygon, proj Projection, axes []vector2d, step float64) (iLo, iHi, jLo, jHi int) {
	bbox := combinedBBox(polygons)
	corners := [][2]float64{
		proj.Forward([2]float64{bbox[0], bbox[1]}),
		proj.Forward([2]float64{bbox[2], bbox[1]}),
		proj.Forward([2]float64{bbox[2], bbox[3]}),
		proj.Forward([2]float64{bbox[0], bbox[3]}),
	}
	iLo, iHi = lineRange(axes[0], step, corners...)
	jLo, jHi = lineRange(axes[1], step, corners...)
	return
}
