package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdok/tegula/tiling"
)

func TestExtractBboxArray(t *testing.T) {
	polygons, err := Extract([]byte(`[4.0, 51.0, 6.0, 53.0]`))
	require.NoError(t, err)
	require.Len(t, polygons, 1)
	assert.Equal(t, tiling.Ring{{4, 51}, {6, 51}, {6, 53}, {4, 53}, {4, 51}}, polygons[0].Outer)
	assert.Empty(t, polygons[0].Holes)
}

func TestExtractDegenerateBbox(t *testing.T) {
	_, err := Extract([]byte(`[6.0, 51.0, 4.0, 53.0]`))
	var geomErr *tiling.GeometryError
	require.ErrorAs(t, err, &geomErr)
}

func TestExtractPolygon(t *testing.T) {
	data := `{
		"type": "Polygon",
		"coordinates": [
			[[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]],
			[[0.25, 0.25], [0.75, 0.25], [0.75, 0.75], [0.25, 0.75], [0.25, 0.25]]
		]
	}`
	polygons, err := Extract([]byte(data))
	require.NoError(t, err)
	require.Len(t, polygons, 1)
	assert.Len(t, polygons[0].Outer, 5)
	require.Len(t, polygons[0].Holes, 1)
	assert.Len(t, polygons[0].Holes[0], 5)
}

func TestExtractFeatureCollectionSkipsNonPolygons(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [5.2, 52.1]}, "properties": {}},
			{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}, "properties": {}},
			{"type": "Feature", "geometry": null, "properties": {}}
		]
	}`
	polygons, err := Extract([]byte(data))
	require.NoError(t, err)
	assert.Len(t, polygons, 1)
}

func TestExtractMultiPolygon(t *testing.T) {
	data := `{
		"type": "MultiPolygon",
		"coordinates": [
			[[[0, 0], [1, 0], [1, 1], [0, 0]]],
			[[[2, 2], [3, 2], [3, 3], [2, 2]]]
		]
	}`
	polygons, err := Extract([]byte(data))
	require.NoError(t, err)
	assert.Len(t, polygons, 2)
}

func TestExtractGeometryCollection(t *testing.T) {
	data := `{
		"type": "GeometryCollection",
		"geometries": [
			{"type": "LineString", "coordinates": [[0, 0], [1, 1]]},
			{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}
		]
	}`
	polygons, err := Extract([]byte(data))
	require.NoError(t, err)
	assert.Len(t, polygons, 1)
}

func TestExtractInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty input", ``},
		{"invalid json", `{`},
		{"lon out of range", `{"type": "Polygon", "coordinates": [[[200, 0], [1, 0], [1, 1], [200, 0]]]}`},
		{"lat out of range", `{"type": "Polygon", "coordinates": [[[0, 91], [1, 0], [1, 1], [0, 91]]]}`},
		{"ring too short", `{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [0, 0]]]}`},
		{"unclosed ring", `{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 1]]]}`},
		{"position with one coordinate", `{"type": "Polygon", "coordinates": [[[0], [1, 0], [1, 1], [0]]]}`},
		{"polygon without rings", `{"type": "Polygon", "coordinates": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract([]byte(tt.data))
			var geomErr *tiling.GeometryError
			require.ErrorAs(t, err, &geomErr)
		})
	}
}
