package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"

	"github.com/pdok/tegula/extract"
	"github.com/pdok/tegula/processing"
	"github.com/pdok/tegula/tiling"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"
)

const SOURCE string = `source`
const TARGET string = `target`
const SHAPE string = `shape`
const WIDTH string = `width`
const TILT string = `tilt`
const CENTER string = `center`
const FORMAT string = `format`
const OPTIONS string = `options`

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "tegula"
	app.Usage = "A Golang Polygon Tiling application"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     SOURCE,
			Aliases:  []string{"s"},
			Usage:    "Source GeoJSON file or bbox array file (use - for stdin)",
			Required: true,
			EnvVars:  []string{strcase.ToScreamingSnake(SOURCE)},
		},
		&cli.StringFlag{
			Name:     TARGET,
			Aliases:  []string{"t"},
			Usage:    "Target file (use - for stdout)",
			Required: true,
			EnvVars:  []string{strcase.ToScreamingSnake(TARGET)},
		},
		&cli.StringFlag{
			Name:     SHAPE,
			Usage:    "Cell shape, square or hexagon",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(SHAPE)},
		},
		&cli.Float64Flag{
			Name:     WIDTH,
			Aliases:  []string{"w"},
			Usage:    "Cell width in meters (clamped to 500-500000)",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(WIDTH)},
		},
		&cli.Float64Flag{
			Name:     TILT,
			Usage:    "Lattice tilt in degrees clockwise from north",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(TILT)},
		},
		&cli.StringFlag{
			Name:     CENTER,
			Aliases:  []string{"c"},
			Usage:    `Lattice center as a lon/lat JSON array. E.g.: [5.2,52.1]. Defaults to the input's bbox midpoint`,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(CENTER)},
		},
		&cli.StringFlag{
			Name:     FORMAT,
			Aliases:  []string{"f"},
			Usage:    "Output format, json or geojson",
			Value:    "json",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(FORMAT)},
		},
		&cli.StringFlag{
			Name:     OPTIONS,
			Aliases:  []string{"O"},
			Usage:    "Tiling options JSON file. Individual flags override its values",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(OPTIONS)},
		},
	}

	app.Action = func(c *cli.Context) error {
		opts, err := assembleOptions(c)
		if err != nil {
			return err
		}

		source := &extract.FileSource{Path: c.String(SOURCE)}
		target, err := newTarget(c.String(FORMAT), c.String(TARGET))
		if err != nil {
			return err
		}

		log.Println("=== start tiling ===")
		err = processing.ProcessPolygons(source, target, func(polygons []tiling.Polygon) ([]tiling.Feature, error) {
			return tiling.Generate(polygons, opts)
		})
		if err != nil {
			return err
		}
		log.Println("=== done tiling ===")
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// assembleOptions layers an optional options file under the individual
// flags: a flag that was explicitly set wins over the file's value.
func assembleOptions(c *cli.Context) (tiling.Options, error) {
	opts := tiling.DefaultOptions()
	if optionsPath := c.String(OPTIONS); optionsPath != "" {
		data, err := os.ReadFile(optionsPath)
		if err != nil {
			return opts, err
		}
		if err := json.Unmarshal(data, &opts); err != nil {
			return opts, err
		}
	}
	if c.IsSet(SHAPE) {
		opts.Shape = c.String(SHAPE)
	}
	if c.IsSet(WIDTH) {
		opts.Width = c.Float64(WIDTH)
	}
	if c.IsSet(TILT) {
		opts.Tilt = c.Float64(TILT)
	}
	if c.IsSet(CENTER) {
		var center [2]float64
		if err := json.Unmarshal([]byte(c.String(CENTER)), &center); err != nil {
			return opts, fmt.Errorf("invalid center: %w", err)
		}
		opts.Center = &center
	}
	return opts, nil
}

func newTarget(format, path string) (processing.Target, error) {
	switch format {
	case "json":
		return &jsonTarget{path: path}, nil
	case "geojson":
		return &geojsonTarget{path: path}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// jsonTarget writes the plain feature list as pretty-printed JSON.
type jsonTarget struct {
	path string
}

func (t *jsonTarget) WriteFeatures(features <-chan tiling.Feature) error {
	collected := []tiling.Feature{}
	for f := range features {
		collected = append(collected, f)
	}
	data, err := json.MarshalIndent(map[string][]tiling.Feature{"features": collected}, "", "  ")
	if err != nil {
		return err
	}
	return writeOut(t.path, append(data, '\n'))
}

// geojsonTarget writes a GeoJSON FeatureCollection with the cell ring as
// Polygon geometry and id, address and center as properties.
type geojsonTarget struct {
	path string
}

type geojsonFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geojsonFeature `json:"features"`
}

type geojsonFeature struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	Geometry   geojsonGeometry `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

type geojsonGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

func (t *geojsonTarget) WriteFeatures(features <-chan tiling.Feature) error {
	fc := geojsonFeatureCollection{Type: "FeatureCollection", Features: []geojsonFeature{}}
	for f := range features {
		fc.Features = append(fc.Features, geojsonFeature{
			Type:     "Feature",
			ID:       f.ID,
			Geometry: geojsonGeometry{Type: "Polygon", Coordinates: [][][2]float64{f.Ring}},
			Properties: map[string]any{
				"id":      f.ID,
				"address": f.Address,
				"center":  f.Center,
			},
		})
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}
	return writeOut(t.path, append(data, '\n'))
}

func writeOut(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
