package tiling

import "fmt"

// ConfigError signals invalid or degenerate configuration, such as a
// projection centered too close to a pole.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Msg
}

// GeometryError signals malformed input geometry. It is raised before any
// tracing starts, so a tiling never partially runs on bad rings.
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string {
	return "geometry error: " + e.Msg
}

// DegenerateLatticeError signals a determinant underflow in the 2-axis
// solver: the two axes are (near) parallel and no intersection can be
// resolved.
type DegenerateLatticeError struct {
	Det float64
}

func (e *DegenerateLatticeError) Error() string {
	return fmt.Sprintf("degenerate lattice: determinant %g too close to zero", e.Det)
}
