// Package termination implements the planner's pluggable stop
// condition: a Policy tracks running sample and node counts and is
// polled once per growth iteration, so growth can be bounded by sample
// budget, tree size, wall-clock deadline, or any combination of those.
package termination

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Policy is a composable capability fed by planner telemetry: it is
// polled once per growth iteration, and updated with the running
// sample and successful-insertion counts.
type Policy interface {
	IsOver() bool
	UpdateSampleCount(n int)
	UpdateNodeCount(n int)
}

// Forever never terminates on its own. Callers should generally
// compose it with a real bound via Any rather than use it alone.
type Forever struct{}

func (Forever) IsOver() bool          { return false }
func (Forever) UpdateSampleCount(int) {}
func (Forever) UpdateNodeCount(int)   {}

// LimitSamples terminates once the cumulative sample count reaches N.
type LimitSamples struct {
	N       int
	samples int
}

// NewLimitSamples constructs a LimitSamples policy.
func NewLimitSamples(n int) *LimitSamples { return &LimitSamples{N: n} }

func (l *LimitSamples) IsOver() bool              { return l.samples >= l.N }
func (l *LimitSamples) UpdateSampleCount(n int)    { l.samples += n }
func (l *LimitSamples) UpdateNodeCount(int)        {}

// LimitNodes terminates once the cumulative count of successfully
// inserted nodes reaches N.
type LimitNodes struct {
	N     int
	nodes int
}

// NewLimitNodes constructs a LimitNodes policy.
func NewLimitNodes(n int) *LimitNodes { return &LimitNodes{N: n} }

func (l *LimitNodes) IsOver() bool           { return l.nodes >= l.N }
func (l *LimitNodes) UpdateSampleCount(int)  {}
func (l *LimitNodes) UpdateNodeCount(n int)  { l.nodes += n }

// Alarm terminates once a wall-clock deadline has passed. It reads time
// from a clock.Clock rather than calling time.Now directly so tests can
// drive it deterministically with clock.NewMock.
type Alarm struct {
	clock    clock.Clock
	deadline time.Time
}

// NewAlarm constructs an Alarm ending at deadline, using the real
// wall clock.
func NewAlarm(deadline time.Time) *Alarm {
	return &Alarm{clock: clock.New(), deadline: deadline}
}

// NewAlarmWithClock constructs an Alarm using the supplied clock,
// primarily for tests driving a clock.Mock.
func NewAlarmWithClock(c clock.Clock, deadline time.Time) *Alarm {
	return &Alarm{clock: c, deadline: deadline}
}

func (a *Alarm) IsOver() bool           { return !a.clock.Now().Before(a.deadline) }
func (a *Alarm) UpdateSampleCount(int)  {}
func (a *Alarm) UpdateNodeCount(int)    {}

// Any is the logical OR of its children: IsOver reports true as soon as
// any child does, and every counter update fans out to every child.
type Any struct {
	children []Policy
}

// NewAny composes the given policies.
func NewAny(children ...Policy) *Any {
	return &Any{children: children}
}

func (a *Any) IsOver() bool {
	for _, c := range a.children {
		if c.IsOver() {
			return true
		}
	}
	return false
}

func (a *Any) UpdateSampleCount(n int) {
	for _, c := range a.children {
		c.UpdateSampleCount(n)
	}
}

func (a *Any) UpdateNodeCount(n int) {
	for _, c := range a.children {
		c.UpdateNodeCount(n)
	}
}
