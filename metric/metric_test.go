package metric

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/rrt/spatial"
)

func TestSquaredEuclideanVector(t *testing.T) {
	m := SquaredEuclideanVector{}
	a := spatial.NewRealVector(0, 0, 0)
	b := spatial.NewRealVector(3, 4, 0)
	d := m.Distance(a, b)
	test.That(t, float64(d), test.ShouldEqual, 25.0)
	test.That(t, m.IsZero(d), test.ShouldBeFalse)
	test.That(t, m.IsZero(m.Distance(a, a)), test.ShouldBeTrue)
}

func TestSquaredEuclideanVectorDistanceToAABB(t *testing.T) {
	m := SquaredEuclideanVector{}
	lo := spatial.NewRealVector(0, 0, 0)
	hi := spatial.NewRealVector(10, 10, 10)

	// Inside the box: zero.
	inside := spatial.NewRealVector(5, 5, 5)
	test.That(t, float64(m.DistanceToAABB(inside, lo, hi)), test.ShouldEqual, 0.0)

	// Outside on one axis: squared residual on that axis only.
	outside := spatial.NewRealVector(15, 5, 5)
	test.That(t, float64(m.DistanceToAABB(outside, lo, hi)), test.ShouldEqual, 25.0)
}

func TestSquaredEuclideanAngleWraps(t *testing.T) {
	m := SquaredEuclideanAngle{}
	a := spatial.NewAngle(0.05)
	b := spatial.NewAngle(6.2) // close to 2*pi, i.e. close to 0 the short way
	d := m.Distance(a, b)
	// the wrap-aware arc should be small, not ~6.15 radians
	test.That(t, float64(d), test.ShouldBeLessThan, 1.0)
}

func TestWeightedPose2D(t *testing.T) {
	m := DefaultWeightedPose2D()
	a := spatial.NewPose2D(0, 0, 0)
	b := spatial.NewPose2D(3, 4, 0)
	d := m.Distance(a, b)
	test.That(t, float64(d), test.ShouldEqual, 25.0)
}
