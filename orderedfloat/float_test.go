package orderedfloat

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNewRejectsNaN(t *testing.T) {
	defer func() {
		r := recover()
		test.That(t, r, test.ShouldNotBeNil)
	}()
	New(math.NaN())
}

func TestOrdering(t *testing.T) {
	a := New(1.0)
	b := New(2.0)
	test.That(t, a < b, test.ShouldBeTrue)
	test.That(t, a.IsZero(), test.ShouldBeFalse)
	test.That(t, Zero.IsZero(), test.ShouldBeTrue)
}
