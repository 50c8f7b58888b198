// Package processing connects a polygon source to a feature target through
// the tiling engine, moving geometries over channels.
package processing

import (
	"log"

	"github.com/pdok/tegula/tiling"
)

// Source produces input polygons. ReadPolygons must close the channel when
// done and may return an error after partial delivery.
type Source interface {
	ReadPolygons(polygons chan<- tiling.Polygon) error
}

// Target consumes output features. WriteFeatures must drain the channel
// fully even when it errors, to not block the sender.
type Target interface {
	WriteFeatures(features <-chan tiling.Feature) error
}

// ProcessPolygons reads all polygons from the source, runs the tiling
// function over the whole collection and streams the resulting features to
// the target. The tiling function needs the full collection (the lattice
// center defaults to the combined bounding box midpoint), so polygons are
// collected before tiling starts.
func ProcessPolygons(source Source, target Target, tileFunc func([]tiling.Polygon) ([]tiling.Feature, error)) error {
	polygonsCh := make(chan tiling.Polygon, 100)
	readErr := make(chan error, 1)
	go func() {
		readErr <- source.ReadPolygons(polygonsCh)
	}()

	var polygons []tiling.Polygon
	for p := range polygonsCh {
		polygons = append(polygons, p)
	}
	if err := <-readErr; err != nil {
		return err
	}
	log.Printf("read %d polygon(s)", len(polygons))

	features, err := tileFunc(polygons)
	if err != nil {
		return err
	}
	log.Printf("generated %d feature(s)", len(features))

	featuresCh := make(chan tiling.Feature, 100)
	writeErr := make(chan error, 1)
	go func() {
		writeErr <- target.WriteFeatures(featuresCh)
	}()
	for _, f := range features {
		featuresCh <- f
	}
	close(featuresCh)
	return <-writeErr
}
