package tiling

import (
	"fmt"
	"math"
)

const earthRadius = 6371000.0

// Width clamp range in meters.
const (
	MinWidth = 500.0
	MaxWidth = 500000.0
)

// Projection maps geographic (lon, lat) coordinates to an unscaled planar
// system centered on a reference point, and back. Forward and Inverse must be
// mutual inverses to floating point precision; any pair satisfying that
// contract can be substituted (e.g. a true map projection for large areas).
type Projection interface {
	Forward(lonLat [2]float64) [2]float64
	Inverse(xy [2]float64) [2]float64
}

// defaultProjection is the documented planar approximation: one planar unit
// spans width meters at the center latitude.
type defaultProjection struct {
	lon0, lat0 float64
	dx, dy     float64
}

// NewDefaultProjection builds the equirectangular-style default projection.
// Pole-adjacent centers make the longitudinal scale degenerate.
func NewDefaultProjection(center [2]float64, width float64) (Projection, error) {
	cosLat := math.Cos(center[1] * math.Pi / 180)
	if math.Abs(cosLat) < epsilon {
		return nil, &ConfigError{Msg: fmt.Sprintf("projection center %v is too close to a pole", center)}
	}
	return defaultProjection{
		lon0: center[0],
		lat0: center[1],
		dx:   width / (cosLat * earthRadius) * (180 / math.Pi),
		dy:   width / earthRadius * (180 / math.Pi),
	}, nil
}

func (p defaultProjection) Forward(lonLat [2]float64) [2]float64 {
	return [2]float64{(lonLat[0] - p.lon0) / p.dx, (lonLat[1] - p.lat0) / p.dy}
}

func (p defaultProjection) Inverse(xy [2]float64) [2]float64 {
	return [2]float64{xy[0]*p.dx + p.lon0, xy[1]*p.dy + p.lat0}
}
