package termination

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.viam.com/test"
)

func TestForeverNeverOver(t *testing.T) {
	f := Forever{}
	f.UpdateSampleCount(1000)
	f.UpdateNodeCount(1000)
	test.That(t, f.IsOver(), test.ShouldBeFalse)
}

func TestLimitSamples(t *testing.T) {
	l := NewLimitSamples(10)
	test.That(t, l.IsOver(), test.ShouldBeFalse)
	l.UpdateSampleCount(9)
	test.That(t, l.IsOver(), test.ShouldBeFalse)
	l.UpdateSampleCount(1)
	test.That(t, l.IsOver(), test.ShouldBeTrue)
	// node counts don't affect this policy
	l.UpdateNodeCount(1000)
	test.That(t, l.IsOver(), test.ShouldBeTrue)
}

func TestLimitNodes(t *testing.T) {
	l := NewLimitNodes(3)
	l.UpdateNodeCount(2)
	test.That(t, l.IsOver(), test.ShouldBeFalse)
	l.UpdateNodeCount(1)
	test.That(t, l.IsOver(), test.ShouldBeTrue)
}

func TestAlarmWithMockClock(t *testing.T) {
	mock := clock.NewMock()
	deadline := mock.Now().Add(time.Minute)
	a := NewAlarmWithClock(mock, deadline)
	test.That(t, a.IsOver(), test.ShouldBeFalse)
	mock.Add(59 * time.Second)
	test.That(t, a.IsOver(), test.ShouldBeFalse)
	mock.Add(2 * time.Second)
	test.That(t, a.IsOver(), test.ShouldBeTrue)
}

func TestAnyComposesOr(t *testing.T) {
	samples := NewLimitSamples(1000)
	nodes := NewLimitNodes(2)
	any := NewAny(samples, nodes)

	any.UpdateSampleCount(1)
	any.UpdateNodeCount(1)
	test.That(t, any.IsOver(), test.ShouldBeFalse)

	any.UpdateNodeCount(1)
	test.That(t, any.IsOver(), test.ShouldBeTrue)
	// the samples-based child is nowhere near its own limit
	test.That(t, samples.IsOver(), test.ShouldBeFalse)
}
