package spatial

import (
	"math"

	"github.com/golang/geo/s1"

	"go.viam.com/rrt/orderedfloat"
)

// Angle is a point on the circle, normalized to [0, 2*Pi) radians. It
// wraps github.com/golang/geo/s1.Angle for its arithmetic.
type Angle struct {
	theta s1.Angle
}

// NewAngle constructs an Angle from radians, wrapping into [0, 2*Pi).
func NewAngle(radians float64) *Angle {
	return &Angle{theta: normalize(s1.Angle(radians))}
}

// Radians returns the angle's normalized value in [0, 2*Pi).
func (a *Angle) Radians() float64 { return float64(a.theta) }

func normalize(a s1.Angle) s1.Angle {
	const twoPi = 2 * math.Pi
	r := math.Mod(float64(a), twoPi)
	if r < 0 {
		r += twoPi
	}
	return s1.Angle(r)
}

// shortestArc returns the signed shortest-arc difference to - from,
// in [-Pi, Pi).
func shortestArc(from, to s1.Angle) float64 {
	const (
		twoPi = 2 * math.Pi
		pi    = math.Pi
	)
	d := math.Mod(float64(to-from)+pi, twoPi)
	if d < 0 {
		d += twoPi
	}
	return d - pi
}

// Dimension implements rrt.KdKey; Angle is a one-axis configuration.
func (a *Angle) Dimension() int { return 1 }

// Compare implements rrt.KdKey, ordering by the normalized radian value.
// This is only used to drive k-d tree insertion/descent order, not to
// measure distance — distance and AABB pruning account for wraparound
// separately (see metric.SquaredEuclideanAngle).
func (a *Angle) Compare(rhs *Angle, _ int) int {
	switch {
	case a.theta < rhs.theta:
		return -1
	case a.theta > rhs.theta:
		return 1
	default:
		return 0
	}
}

// Assign implements rrt.KdKey.
func (a *Angle) Assign(src *Angle, _ int) {
	a.theta = src.theta
}

// Clone implements rrt.KdKey.
func (a *Angle) Clone() *Angle {
	return &Angle{theta: a.theta}
}

// LowerBoundAngle and UpperBoundAngle bracket the full circle.
func LowerBoundAngle() *Angle { return &Angle{theta: 0} }
func UpperBoundAngle() *Angle { return &Angle{theta: s1.Angle(2 * math.Pi)} }

// Interpolate implements rrt.Interpolator under squared shortest-arc
// distance: radius is a squared-distance budget, matching
// metric.SquaredEuclideanAngle.
func (a *Angle) Interpolate(end *Angle, radius orderedfloat.Float64) (*Angle, bool) {
	arc := shortestArc(a.theta, end.theta)
	if orderedfloat.New(arc*arc) <= radius {
		return end.Clone(), true
	}
	step := math.Sqrt(float64(radius))
	if arc < 0 {
		step = -step
	}
	return NewAngle(float64(a.theta) + step), false
}
