package tiling

import "math"

const epsilon = 1e-12

// vector2d represents a direction or offset in 2D planar space
type vector2d struct {
	x float64
	y float64
}

// returns the angle of a vector in relation to the x-axis in degrees (normalised to range 0-360)
func (vec vector2d) angle() float64 {
	angleRad := math.Atan2(vec.y, vec.x)
	if angleRad < 0 {
		angleRad += (2 * math.Pi)
	}
	return angleRad * (180 / math.Pi)
}

// dotPoint is the scalar projection of a planar point onto the vector,
// a.k.a. the point's lattice coordinate when the vector is a lattice axis.
func (vec vector2d) dotPoint(pt [2]float64) float64 {
	return (vec.x * pt[0]) + (vec.y * pt[1])
}

// magnitude of vector
func (vec vector2d) magnitude() float64 {
	return math.Sqrt(math.Pow(vec.x, 2) + math.Pow(vec.y, 2))
}

// axis returns the unit direction vector of a lattice axis. The angle is
// measured in degrees clockwise from north in planar coordinates.
func axis(angleDeg float64) vector2d {
	angleRad := angleDeg * math.Pi / 180
	return vector2d{x: math.Sin(angleRad), y: -math.Cos(angleRad)}
}

// solver inverts two axis projections back to the unique planar point with
// dot(u, pt) = du and dot(v, pt) = dv, via Cramer's rule. A small immutable
// value struct so axis pairs can be reused without per-call closures.
type solver struct {
	u vector2d
	v vector2d
}

func (s solver) solve(du, dv float64) ([2]float64, error) {
	det := s.u.x*s.v.y - s.v.x*s.u.y
	if math.Abs(det) < epsilon {
		return [2]float64{}, &DegenerateLatticeError{Det: det}
	}
	return [2]float64{
		(du*s.v.y - s.u.y*dv) / det,
		(s.u.x*dv - du*s.v.x) / det,
	}, nil
}
