// Package spatial provides the concrete configuration types the
// planner and kdtree packages are exercised against: N-dimensional real
// vectors, wrapping angles, and 2D poses (vector x angle). Each type
// implements rrt.KdKey and rrt.Interpolator directly as methods, so it
// can be used as the C type parameter of kdtree.Map and planner.Planner
// without any adapter.
//
// Angle stores its value as a github.com/golang/geo/s1.Angle; RealVector
// is a plain float64 slice, and both do their arithmetic with package
// math.
package spatial

import (
	"math"

	"go.viam.com/rrt/orderedfloat"
)

// RealVector is a point in R^N. Its dimension is fixed at construction
// and is reported at runtime via Dimension, since Go has no
// const-generic array length to pin N at the type level.
type RealVector struct {
	coords []float64
}

// NewRealVector constructs a RealVector from the given coordinates.
func NewRealVector(coords ...float64) *RealVector {
	cp := make([]float64, len(coords))
	copy(cp, coords)
	return &RealVector{coords: cp}
}

// Coords returns the underlying coordinate slice. Callers must not
// mutate the returned slice.
func (v *RealVector) Coords() []float64 { return v.coords }

// At returns the k-th coordinate.
func (v *RealVector) At(k int) float64 { return v.coords[k] }

// Dimension implements rrt.KdKey.
func (v *RealVector) Dimension() int { return len(v.coords) }

// Compare implements rrt.KdKey.
func (v *RealVector) Compare(rhs *RealVector, axis int) int {
	a, b := v.coords[axis], rhs.coords[axis]
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Assign implements rrt.KdKey.
func (v *RealVector) Assign(src *RealVector, axis int) {
	v.coords[axis] = src.coords[axis]
}

// Clone implements rrt.KdKey.
func (v *RealVector) Clone() *RealVector {
	return NewRealVector(v.coords...)
}

// LowerBoundVector returns the lowest representable vector of dimension
// n: every axis set to -Inf.
func LowerBoundVector(n int) *RealVector {
	return fillVector(n, math.Inf(-1))
}

// UpperBoundVector returns the highest representable vector of
// dimension n: every axis set to +Inf.
func UpperBoundVector(n int) *RealVector {
	return fillVector(n, math.Inf(1))
}

func fillVector(n int, v float64) *RealVector {
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = v
	}
	return &RealVector{coords: coords}
}

// Interpolate implements rrt.Interpolator for RealVector under squared
// Euclidean distance: radius is interpreted as a squared-distance
// budget, matching metric.SquaredEuclideanVector.
func (v *RealVector) Interpolate(end *RealVector, radius orderedfloat.Float64) (*RealVector, bool) {
	diffs := make([]float64, len(v.coords))
	var sumSq float64
	for i := range v.coords {
		d := end.coords[i] - v.coords[i]
		diffs[i] = d
		sumSq += d * d
	}
	if orderedfloat.New(sumSq) <= radius {
		return end.Clone(), true
	}
	dist := math.Sqrt(sumSq)
	step := math.Sqrt(float64(radius))
	scale := step / dist
	next := make([]float64, len(v.coords))
	for i := range v.coords {
		next[i] = v.coords[i] + diffs[i]*scale
	}
	return &RealVector{coords: next}, false
}
