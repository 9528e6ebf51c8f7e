// Package metric implements the concrete distance functions configuration
// spaces are measured by: squared Euclidean distance for real vectors
// and angles, and a weighted composite for 2D poses. Each also supplies
// DistanceToAABB, the lower-bound-to-a-region function the kdtree
// package's branch-and-bound search prunes with.
package metric

import (
	"math"

	"go.viam.com/rrt/orderedfloat"
	"go.viam.com/rrt/spatial"
)

// SquaredEuclideanVector is the canonical metric for spatial.RealVector:
// the sum of squared per-axis differences.
type SquaredEuclideanVector struct{}

// Distance implements rrt.Metric.
func (SquaredEuclideanVector) Distance(a, b *spatial.RealVector) orderedfloat.Float64 {
	var sum float64
	for i := 0; i < a.Dimension(); i++ {
		d := a.At(i) - b.At(i)
		sum += d * d
	}
	return orderedfloat.New(sum)
}

// IsZero implements rrt.Metric.
func (SquaredEuclideanVector) IsZero(d orderedfloat.Float64) bool { return d.IsZero() }

// DistanceToAABB implements rrt.AABBMetric: clamp each axis of p into
// [lo, hi] and sum the squared residuals.
func (SquaredEuclideanVector) DistanceToAABB(p, lo, hi *spatial.RealVector) orderedfloat.Float64 {
	var sum float64
	for i := 0; i < p.Dimension(); i++ {
		v, l, h := p.At(i), lo.At(i), hi.At(i)
		var residual float64
		switch {
		case v < l:
			residual = l - v
		case v > h:
			residual = v - h
		}
		sum += residual * residual
	}
	return orderedfloat.New(sum)
}

// SquaredEuclideanAngle is the canonical metric for spatial.Angle: the
// squared shortest-arc distance. This is where circular topology is
// handled — the k-d tree itself never needs to know axes wrap.
type SquaredEuclideanAngle struct{}

// Distance implements rrt.Metric.
func (SquaredEuclideanAngle) Distance(a, b *spatial.Angle) orderedfloat.Float64 {
	arc := angleShortestArc(a, b)
	return orderedfloat.New(arc * arc)
}

// IsZero implements rrt.Metric.
func (SquaredEuclideanAngle) IsZero(d orderedfloat.Float64) bool { return d.IsZero() }

// DistanceToAABB implements rrt.AABBMetric. lo and hi describe a
// sub-arc of the circle in the tree's linear (unwrapped) axis
// representation; if the query angle's normalized value falls inside
// [lo, hi] the distance is zero, otherwise it is the shorter of the
// wrap-aware distances to either endpoint, which lower-bounds the true
// distance to any angle in the sub-arc.
func (SquaredEuclideanAngle) DistanceToAABB(p, lo, hi *spatial.Angle) orderedfloat.Float64 {
	if lo.Radians() <= p.Radians() && p.Radians() <= hi.Radians() {
		return orderedfloat.Zero
	}
	dLo := math.Abs(angleShortestArc(p, lo))
	dHi := math.Abs(angleShortestArc(p, hi))
	d := math.Min(dLo, dHi)
	return orderedfloat.New(d * d)
}

func angleShortestArc(a, b *spatial.Angle) float64 {
	const (
		twoPi = 2 * math.Pi
		pi    = math.Pi
	)
	d := math.Mod(b.Radians()-a.Radians()+pi, twoPi)
	if d < 0 {
		d += twoPi
	}
	return d - pi
}

// WeightedPose2D composes a position metric and an angle metric with
// per-component weights, for pose spaces where rotation and translation
// are not commensurate.
type WeightedPose2D struct {
	PositionMetric SquaredEuclideanVector
	PositionWeight float64
	AngleMetric    SquaredEuclideanAngle
	AngleWeight    float64
}

// DefaultWeightedPose2D weights position and angle equally, matching
// spatial.Pose2D's own Interpolate.
func DefaultWeightedPose2D() WeightedPose2D {
	return WeightedPose2D{PositionWeight: 1.0, AngleWeight: 1.0}
}

// Distance implements rrt.Metric.
func (m WeightedPose2D) Distance(a, b *spatial.Pose2D) orderedfloat.Float64 {
	posD := m.PositionMetric.Distance(a.Position, b.Position)
	angD := m.AngleMetric.Distance(a.Heading, b.Heading)
	return orderedfloat.New(m.PositionWeight*float64(posD) + m.AngleWeight*float64(angD))
}

// IsZero implements rrt.Metric.
func (WeightedPose2D) IsZero(d orderedfloat.Float64) bool { return d.IsZero() }

// DistanceToAABB implements rrt.AABBMetric, composing the component
// AABB distances with the same weights used by Distance.
func (m WeightedPose2D) DistanceToAABB(p, lo, hi *spatial.Pose2D) orderedfloat.Float64 {
	posD := m.PositionMetric.DistanceToAABB(p.Position, lo.Position, hi.Position)
	angD := m.AngleMetric.DistanceToAABB(p.Heading, lo.Heading, hi.Heading)
	return orderedfloat.New(m.PositionWeight*float64(posD) + m.AngleWeight*float64(angD))
}
