// Package orderedfloat provides a NaN-forbidden float64 wrapper with a
// total order, suitable for use as a Distance type throughout the
// metric and kdtree packages. The branch-and-bound nearest-neighbor
// search relies on transitive comparisons; a bare float64 carrying NaN
// would break that silently, and a total order is required for
// instantiating generic code constrained on cmp.Ordered.
//
// Float64 is a defined type over float64, not a struct, so the native
// <, >, == operators (and therefore cmp.Ordered) work directly on it.
// NaN is rejected only at construction time; every Float64 value that
// exists is guaranteed finite-or-infinite, never NaN.
package orderedfloat

import "math"

// Float64 is a float64 known not to be NaN.
type Float64 float64

// Zero is the designated zero distance.
const Zero Float64 = 0

// New wraps f, panicking if f is NaN.
func New(f float64) Float64 {
	if math.IsNaN(f) {
		panic("orderedfloat: NaN is not representable")
	}
	return Float64(f)
}

// IsZero reports whether f is exactly zero.
func (f Float64) IsZero() bool { return f == 0 }
