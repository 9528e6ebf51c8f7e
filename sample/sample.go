// Package sample implements the sampling distributions the RRT planner
// draws targets and goal-bias coin flips from: a uniform rectangular
// region sampler, a full-circle angle sampler, a 2D pose sampler
// composing the two, and a Bernoulli distribution for goal bias,
// parameterized by gonum's stat/distuv.Bernoulli.
package sample

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"go.viam.com/rrt/spatial"
)

// Sampler draws a configuration from rng.
type Sampler[C any] interface {
	Sample(rng *rand.Rand) C
}

// Rectangle uniformly samples each axis of a RealVector between Min and
// Max, inclusive.
type Rectangle struct {
	Min, Max *spatial.RealVector
}

// Sample implements Sampler.
func (r Rectangle) Sample(rng *rand.Rand) *spatial.RealVector {
	dim := r.Min.Dimension()
	coords := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lo, hi := r.Min.At(i), r.Max.At(i)
		// u is uniform over [0, 1] inclusive (a 2^-53 grid), so both Min
		// and Max can be drawn.
		u := float64(rng.Int63n(1<<53+1)) / (1 << 53)
		coords[i] = lo + u*(hi-lo)
	}
	return spatial.NewRealVector(coords...)
}

// Everywhere samples a full-circle Angle, uniform on [0, 2*Pi).
type Everywhere struct{}

// Sample implements Sampler.
func (Everywhere) Sample(rng *rand.Rand) *spatial.Angle {
	return spatial.NewAngle(rng.Float64() * 2 * math.Pi)
}

// Pose2D composes a rectangular position sampler with a full-circle
// angle sampler.
type Pose2D struct {
	Position Rectangle
}

// Sample implements Sampler.
func (p Pose2D) Sample(rng *rand.Rand) *spatial.Pose2D {
	pos := p.Position.Sample(rng)
	ang := (Everywhere{}).Sample(rng)
	return &spatial.Pose2D{Position: pos, Heading: ang}
}

// Bernoulli draws a boolean with probability p of being true, used for
// the planner's goal-bias coin flip.
type Bernoulli struct {
	dist distuv.Bernoulli
}

// NewBernoulli constructs a Bernoulli sampler with success probability
// p. The underlying distuv.Bernoulli's own Source is unused; randomness
// is drawn from the *rand.Rand passed to Sample so that all of the
// planner's random draws come from a single, caller-controlled stream.
func NewBernoulli(p float64) Bernoulli {
	return Bernoulli{dist: distuv.Bernoulli{P: p}}
}

// Sample implements Sampler. It draws a single uniform float from rng
// and compares it against the distribution's success probability,
// rather than letting distuv draw from its own (unseeded) source —
// this keeps every random draw the planner makes coming from one
// caller-controlled stream, so a fixed seed reproduces a fixed tree.
func (b Bernoulli) Sample(rng *rand.Rand) bool {
	return rng.Float64() < b.dist.P
}
