// Package extract pulls polygons out of GeoJSON documents or plain bounding
// box arrays for tiling.
package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pdok/tegula/geomhelp"
	"github.com/pdok/tegula/mathhelp"
	"github.com/pdok/tegula/tiling"
)

// node is the minimal GeoJSON tree shape needed to walk down to polygon
// coordinates. Anything else in the document is ignored.
type node struct {
	Type        string          `json:"type"`
	Features    []node          `json:"features"`
	Geometry    *node           `json:"geometry"`
	Geometries  []node          `json:"geometries"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Extract parses data as either a GeoJSON document (FeatureCollection,
// Feature, Polygon, MultiPolygon or GeometryCollection) or a bare
// [minLon, minLat, maxLon, maxLat] array, and returns the polygons found.
// Non-polygonal geometries are skipped with a log line, not an error.
func Extract(data []byte) ([]tiling.Polygon, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &tiling.GeometryError{Msg: "empty input"}
	}
	if trimmed[0] == '[' {
		return extractBbox(trimmed)
	}
	var root node
	if err := json.Unmarshal(trimmed, &root); err != nil {
		return nil, &tiling.GeometryError{Msg: "invalid json: " + err.Error()}
	}
	var polygons []tiling.Polygon
	skipped := 0
	if err := walk(&root, &polygons, &skipped); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Printf("skipped %d non-polygonal geometry(ies)", skipped)
	}
	return polygons, nil
}

func extractBbox(data []byte) ([]tiling.Polygon, error) {
	var bbox [4]float64
	if err := json.Unmarshal(data, &bbox); err != nil {
		return nil, &tiling.GeometryError{Msg: "invalid bbox array: " + err.Error()}
	}
	p, err := BboxPolygon(bbox)
	if err != nil {
		return nil, err
	}
	return []tiling.Polygon{p}, nil
}

// BboxPolygon turns a [minLon, minLat, maxLon, maxLat] box into a closed
// counterclockwise polygon.
func BboxPolygon(bbox [4]float64) (tiling.Polygon, error) {
	if bbox[0] >= bbox[2] || bbox[1] >= bbox[3] {
		return tiling.Polygon{}, &tiling.GeometryError{Msg: fmt.Sprintf("degenerate bbox %v", bbox)}
	}
	ring := tiling.Ring{
		{bbox[0], bbox[1]},
		{bbox[2], bbox[1]},
		{bbox[2], bbox[3]},
		{bbox[0], bbox[3]},
		{bbox[0], bbox[1]},
	}
	if err := validateRingCoords(ring); err != nil {
		return tiling.Polygon{}, err
	}
	return tiling.NewPolygon(ring)
}

func walk(n *node, polygons *[]tiling.Polygon, skipped *int) error {
	switch n.Type {
	case "FeatureCollection":
		for i := range n.Features {
			if err := walk(&n.Features[i], polygons, skipped); err != nil {
				return err
			}
		}
	case "Feature":
		if n.Geometry != nil {
			return walk(n.Geometry, polygons, skipped)
		}
	case "GeometryCollection":
		for i := range n.Geometries {
			if err := walk(&n.Geometries[i], polygons, skipped); err != nil {
				return err
			}
		}
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(n.Coordinates, &rings); err != nil {
			return &tiling.GeometryError{Msg: "invalid polygon coordinates: " + err.Error()}
		}
		p, err := polygonFromRings(rings)
		if err != nil {
			return err
		}
		*polygons = append(*polygons, p)
	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(n.Coordinates, &polys); err != nil {
			return &tiling.GeometryError{Msg: "invalid multipolygon coordinates: " + err.Error()}
		}
		for _, rings := range polys {
			p, err := polygonFromRings(rings)
			if err != nil {
				return err
			}
			*polygons = append(*polygons, p)
		}
	default:
		*skipped++
	}
	return nil
}

func polygonFromRings(rings [][][]float64) (tiling.Polygon, error) {
	if len(rings) == 0 {
		return tiling.Polygon{}, &tiling.GeometryError{Msg: "polygon without rings"}
	}
	converted := make([]tiling.Ring, len(rings))
	for i, ring := range rings {
		r := make(tiling.Ring, len(ring))
		for j, pos := range ring {
			if len(pos) < 2 {
				return tiling.Polygon{}, &tiling.GeometryError{Msg: fmt.Sprintf("position with %d coordinate(s)", len(pos))}
			}
			r[j] = [2]float64{pos[0], pos[1]}
		}
		if err := validateRingCoords(r); err != nil {
			return tiling.Polygon{}, err
		}
		converted[i] = r
	}
	p, err := tiling.NewPolygon(converted[0], converted[1:]...)
	if err != nil {
		return tiling.Polygon{}, err
	}
	log.Printf("extracted polygon %s", geomhelp.WktMustEncode(p.AsGeomPolygon(), 100))
	return p, nil
}

func validateRingCoords(ring tiling.Ring) error {
	for _, pt := range ring {
		if !mathhelp.BetweenInc(pt[0], -180.0, 180.0) || !mathhelp.BetweenInc(pt[1], -90.0, 90.0) {
			return &tiling.GeometryError{Msg: fmt.Sprintf("coordinate out of lon/lat range: %v", pt)}
		}
	}
	return nil
}

// FileSource reads one GeoJSON or bbox document from a file ("-" for stdin)
// and feeds the extracted polygons into the pipeline.
type FileSource struct {
	Path string
}

func (s *FileSource) ReadPolygons(polygons chan<- tiling.Polygon) error {
	defer close(polygons)
	var data []byte
	var err error
	if s.Path == "-" {
		data, err = readAll(os.Stdin)
	} else {
		data, err = os.ReadFile(s.Path)
	}
	if err != nil {
		return err
	}
	extracted, err := Extract(data)
	if err != nil {
		return err
	}
	for _, p := range extracted {
		polygons <- p
	}
	return nil
}

func readAll(f *os.File) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
