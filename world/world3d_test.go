package world

import (
	"testing"

	"go.viam.com/test"
)

func TestWorld3DCollidesPoint(t *testing.T) {
	w := NewWorld3D()
	w.AddAABB(0, 0, 0, 10, 10, 10)
	w.AddBall(-5, -5, -5, 1)

	test.That(t, w.CollidesPoint(5, 5, 5), test.ShouldBeTrue)
	test.That(t, w.CollidesPoint(20, 20, 20), test.ShouldBeFalse)
	test.That(t, w.CollidesPoint(9, 9, 9), test.ShouldBeTrue) // not the degenerate-box bug
}

func TestWorld3DCollidesBall(t *testing.T) {
	w := NewWorld3D()
	w.AddBall(0, 0, 0, 2)
	test.That(t, w.CollidesBall(5, 0, 0, 2.9), test.ShouldBeFalse)
	test.That(t, w.CollidesBall(5, 0, 0, 3.1), test.ShouldBeTrue)

	w2 := NewWorld3D()
	w2.AddAABB(0, 0, 0, 10, 10, 10)
	test.That(t, w2.CollidesBall(15, 5, 5, 4), test.ShouldBeFalse)
	test.That(t, w2.CollidesBall(15, 5, 5, 5.5), test.ShouldBeTrue)
}

func TestWorld3DRejectsInvertedAABB(t *testing.T) {
	defer func() {
		r := recover()
		test.That(t, r, test.ShouldNotBeNil)
	}()
	w := NewWorld3D()
	w.AddAABB(10, 10, 10, 0, 0, 0)
}
