package spatial

import (
	"math"

	"go.viam.com/rrt/orderedfloat"
)

// Pose2D is a 2D position paired with a heading angle: axes 0 and 1 are
// the position, axis 2 is the angle.
type Pose2D struct {
	Position *RealVector
	Heading  *Angle
}

// NewPose2D constructs a Pose2D from x, y, and a heading in radians.
func NewPose2D(x, y, radians float64) *Pose2D {
	return &Pose2D{Position: NewRealVector(x, y), Heading: NewAngle(radians)}
}

// Dimension implements rrt.KdKey.
func (p *Pose2D) Dimension() int { return 3 }

// Compare implements rrt.KdKey.
func (p *Pose2D) Compare(rhs *Pose2D, axis int) int {
	if axis < 2 {
		return p.Position.Compare(rhs.Position, axis)
	}
	return p.Heading.Compare(rhs.Heading, 0)
}

// Assign implements rrt.KdKey.
func (p *Pose2D) Assign(src *Pose2D, axis int) {
	if axis < 2 {
		p.Position.Assign(src.Position, axis)
		return
	}
	p.Heading.Assign(src.Heading, 0)
}

// Clone implements rrt.KdKey.
func (p *Pose2D) Clone() *Pose2D {
	return &Pose2D{Position: p.Position.Clone(), Heading: p.Heading.Clone()}
}

// LowerBoundPose2D and UpperBoundPose2D bracket all positions and the
// full circle.
func LowerBoundPose2D() *Pose2D {
	return &Pose2D{Position: LowerBoundVector(2), Heading: LowerBoundAngle()}
}

func UpperBoundPose2D() *Pose2D {
	return &Pose2D{Position: UpperBoundVector(2), Heading: UpperBoundAngle()}
}

// defaultPositionWeight and defaultAngleWeight are the position/angle
// weighting used by Pose2D's own Interpolate, matching
// metric.DefaultWeightedPose2D().
const (
	defaultPositionWeight = 1.0
	defaultAngleWeight    = 1.0
)

// Interpolate implements rrt.Interpolator under the default
// weighted-squared pose distance (position weight 1, angle weight 1).
// radius is the squared-distance budget for that weighted metric.
func (p *Pose2D) Interpolate(end *Pose2D, radius orderedfloat.Float64) (*Pose2D, bool) {
	posDiffs := make([]float64, 2)
	var posSq float64
	for i := 0; i < 2; i++ {
		d := end.Position.At(i) - p.Position.At(i)
		posDiffs[i] = d
		posSq += d * d
	}
	arc := shortestArc(p.Heading.theta, end.Heading.theta)
	angSq := arc * arc

	total := defaultPositionWeight*posSq + defaultAngleWeight*angSq
	if orderedfloat.New(total) <= radius {
		return end.Clone(), true
	}

	dist := math.Sqrt(total)
	step := math.Sqrt(float64(radius))
	scale := step / dist

	nextPos := make([]float64, 2)
	for i := 0; i < 2; i++ {
		nextPos[i] = p.Position.At(i) + posDiffs[i]*scale
	}
	nextHeading := NewAngle(float64(p.Heading.theta) + arc*scale)
	return &Pose2D{Position: &RealVector{coords: nextPos}, Heading: nextHeading}, false
}
