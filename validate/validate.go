// Package validate re-exports the Validator capability planner.Planner
// is parameterized over, plus the trivially-true validator used by
// unconstrained problems and FromWorld2D, which adapts a
// world.World2D's collision queries into a Validator.
package validate

import (
	"math"

	"go.viam.com/rrt"
	"go.viam.com/rrt/spatial"
	"go.viam.com/rrt/world"
)

// Validator answers whether a configuration or a transition between two
// configurations lies in free space.
type Validator[C any] = rrt.Validator[C]

// AlwaysValid returns a Validator that accepts everything; useful for
// unconstrained problems and for testing the planner in isolation from
// any particular collision world.
func AlwaysValid[C any]() Validator[C] {
	return rrt.AlwaysValid[C]()
}

// NeverValidTransition rejects every transition while accepting every
// point, used to test that the planner never grows past its root when
// the free space is empty.
type NeverValidTransition[C any] struct{}

// IsValidConfiguration implements Validator.
func (NeverValidTransition[C]) IsValidConfiguration(C) bool { return true }

// IsValidTransition implements Validator.
func (NeverValidTransition[C]) IsValidTransition(C, C) bool { return false }

// Func adapts two plain functions into a Validator.
type Func[C any] struct {
	Configuration func(c C) bool
	Transition    func(start, end C) bool
}

// IsValidConfiguration implements Validator.
func (f Func[C]) IsValidConfiguration(c C) bool { return f.Configuration(c) }

// IsValidTransition implements Validator.
func (f Func[C]) IsValidTransition(start, end C) bool { return f.Transition(start, end) }

// FromWorld2D builds a Validator over 2D point configurations from a
// collision world: a configuration is valid when it doesn't collide,
// and a transition is valid when the straight segment between its
// endpoints, sampled every step units of arc length, never collides.
func FromWorld2D(w *world.World2D, step float64) Validator[*spatial.RealVector] {
	return Func[*spatial.RealVector]{
		Configuration: func(c *spatial.RealVector) bool {
			return !w.CollidesPoint(c.At(0), c.At(1))
		},
		Transition: func(start, end *spatial.RealVector) bool {
			return !segmentCollidesWorld2D(w, start, end, step)
		},
	}
}

func segmentCollidesWorld2D(w *world.World2D, start, end *spatial.RealVector, step float64) bool {
	dx := end.At(0) - start.At(0)
	dy := end.At(1) - start.At(1)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return w.CollidesPoint(start.At(0), start.At(1))
	}
	steps := int(math.Ceil(dist / step))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if w.CollidesPoint(start.At(0)+t*dx, start.At(1)+t*dy) {
			return true
		}
	}
	return false
}
