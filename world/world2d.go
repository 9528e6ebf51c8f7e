// Package world implements 2D/3D axis-aligned-box-and-ball collision
// worlds. A World2D or World3D is a standalone collision-query surface;
// collision checking is not the planner's concern, but validate.Func
// can wrap a world's query methods into a validate.Validator.
//
// World2D.CollidesRect tests a rotated rectangle against both balls
// (closest-point clamping) and axis-aligned boxes (separating-axis
// tests), not just balls.
package world

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/pkg/errors"
)

type aabb2D struct {
	lo, hi r2.Point
}

type ball2D struct {
	center r2.Point
	radius float64
}

// World2D stores axis-aligned boxes and balls in the plane.
type World2D struct {
	aabbs []aabb2D
	balls []ball2D
}

// NewWorld2D constructs an empty 2D world.
func NewWorld2D() *World2D {
	return &World2D{}
}

// AddBall adds a ball obstacle centered at (x, y) with radius r.
func (w *World2D) AddBall(x, y, r float64) {
	if r < 0 {
		panic(errors.New("world: ball must have non-negative radius"))
	}
	w.balls = append(w.balls, ball2D{center: r2.Point{X: x, Y: y}, radius: r})
}

// AddAABB adds an axis-aligned box obstacle spanning [xl, yl] to
// [xh, yh]. The box is closed: points on its boundary collide.
func (w *World2D) AddAABB(xl, yl, xh, yh float64) {
	if xh < xl || yh < yl {
		panic(errors.New("world: aabb must have non-negative width and height"))
	}
	w.aabbs = append(w.aabbs, aabb2D{lo: r2.Point{X: xl, Y: yl}, hi: r2.Point{X: xh, Y: yh}})
}

// CollidesPoint reports whether (x, y) lies inside any obstacle.
func (w *World2D) CollidesPoint(x, y float64) bool {
	p := r2.Point{X: x, Y: y}
	for _, b := range w.aabbs {
		if p.X >= b.lo.X && p.X <= b.hi.X && p.Y >= b.lo.Y && p.Y <= b.hi.Y {
			return true
		}
	}
	for _, b := range w.balls {
		if p.Sub(b.center).Norm2() <= b.radius*b.radius {
			return true
		}
	}
	return false
}

// CollidesBall reports whether a ball centered at (x, y) with radius r
// intersects any obstacle.
func (w *World2D) CollidesBall(x, y, r float64) bool {
	if r < 0 {
		panic(errors.New("world: ball must have non-negative radius"))
	}
	p := r2.Point{X: x, Y: y}
	for _, b := range w.aabbs {
		nx := clamp(p.X, b.lo.X, b.hi.X)
		ny := clamp(p.Y, b.lo.Y, b.hi.Y)
		dx, dy := nx-p.X, ny-p.Y
		if dx*dx+dy*dy <= r*r {
			return true
		}
	}
	for _, b := range w.balls {
		d := p.Sub(b.center)
		rp := b.radius + r
		if d.Norm2() <= rp*rp {
			return true
		}
	}
	return false
}

// CollidesRect reports whether a rectangle centered at (x, y), rotated
// by theta, with the given half-width and half-height, intersects any
// obstacle. Ball collisions are checked by clamping the ball's center
// into the rectangle's local (unrotated) frame; AABB collisions are
// checked via separating-axis tests between the rectangle's rotated
// corners and the box's axes.
func (w *World2D) CollidesRect(x, y float64, theta s1.Angle, halfW, halfH float64) bool {
	if halfW < 0 || halfH < 0 {
		panic(errors.New("world: rect half-extents must be non-negative"))
	}
	cos, sin := math.Cos(float64(theta)), math.Sin(float64(theta))
	center := r2.Point{X: x, Y: y}

	for _, b := range w.balls {
		d := b.center.Sub(center)
		// rotate into the rectangle's local frame (inverse rotation)
		xt := d.X*cos + d.Y*sin
		yt := -d.X*sin + d.Y*cos
		cx := clamp(xt, -halfW, halfW)
		cy := clamp(yt, -halfH, halfH)
		dx, dy := cx-xt, cy-yt
		if dx*dx+dy*dy <= b.radius*b.radius {
			return true
		}
	}

	rectAxes := [2]r2.Point{{X: cos, Y: sin}, {X: -sin, Y: cos}}
	rectCorners := rectangleCorners(center, rectAxes, halfW, halfH)

	for _, b := range w.aabbs {
		boxCorners := [4]r2.Point{
			{X: b.lo.X, Y: b.lo.Y}, {X: b.hi.X, Y: b.lo.Y},
			{X: b.hi.X, Y: b.hi.Y}, {X: b.lo.X, Y: b.hi.Y},
		}
		boxAxes := [2]r2.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
		if separatingAxisExists(rectCorners[:], boxCorners[:], rectAxes[:]) ||
			separatingAxisExists(rectCorners[:], boxCorners[:], boxAxes[:]) {
			continue
		}
		return true
	}
	return false
}

func rectangleCorners(center r2.Point, axes [2]r2.Point, halfW, halfH float64) [4]r2.Point {
	u, v := axes[0], axes[1]
	ext := func(su, sv float64) r2.Point {
		return r2.Point{X: center.X + su*halfW*u.X + sv*halfH*v.X, Y: center.Y + su*halfW*u.Y + sv*halfH*v.Y}
	}
	return [4]r2.Point{ext(1, 1), ext(1, -1), ext(-1, -1), ext(-1, 1)}
}

// separatingAxisExists reports whether any of axes separates polygon a
// from polygon b (projections onto the axis don't overlap).
func separatingAxisExists(a, b []r2.Point, axes []r2.Point) bool {
	for _, axis := range axes {
		aMin, aMax := projectExtent(a, axis)
		bMin, bMax := projectExtent(b, axis)
		if aMax < bMin || bMax < aMin {
			return true
		}
	}
	return false
}

func projectExtent(pts []r2.Point, axis r2.Point) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range pts {
		d := p.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
