package mathhelp

import "golang.org/x/exp/constraints"

// BetweenInc reports whether f lies between p and q inclusive, in either order.
func BetweenInc[T constraints.Ordered](f, p, q T) bool {
	if p <= q {
		return p <= f && f <= q
	}
	return q <= f && f <= p
}

// EuclidianMod is a modulo function that returns the least positive remainder
// (i.e., EuclidianMod(-1, 3) returns 2).
func EuclidianMod(d, m int) int {
	r := d % m
	if (r < 0 && m > 0) || (r > 0 && m < 0) {
		return r + m
	}
	return r
}
