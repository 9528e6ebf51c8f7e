package world

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

type aabb3D struct {
	lo, hi r3.Vector
}

type ball3D struct {
	center r3.Vector
	radius float64
}

// World3D stores axis-aligned boxes and balls in space.
type World3D struct {
	aabbs []aabb3D
	balls []ball3D
}

// NewWorld3D constructs an empty 3D world.
func NewWorld3D() *World3D {
	return &World3D{}
}

// AddBall adds a ball obstacle centered at (x, y, z) with radius r.
func (w *World3D) AddBall(x, y, z, r float64) {
	if r < 0 {
		panic(errors.New("world: ball must have non-negative radius"))
	}
	w.balls = append(w.balls, ball3D{center: r3.Vector{X: x, Y: y, Z: z}, radius: r})
}

// AddAABB adds an axis-aligned box obstacle spanning [lo, hi].
func (w *World3D) AddAABB(xl, yl, zl, xh, yh, zh float64) {
	if xh < xl || yh < yl || zh < zl {
		panic(errors.New("world: aabb must have non-negative extents"))
	}
	w.aabbs = append(w.aabbs, aabb3D{
		lo: r3.Vector{X: xl, Y: yl, Z: zl},
		hi: r3.Vector{X: xh, Y: yh, Z: zh},
	})
}

// CollidesPoint reports whether (x, y, z) lies inside any obstacle.
func (w *World3D) CollidesPoint(x, y, z float64) bool {
	p := r3.Vector{X: x, Y: y, Z: z}
	for _, b := range w.aabbs {
		if p.X >= b.lo.X && p.X <= b.hi.X &&
			p.Y >= b.lo.Y && p.Y <= b.hi.Y &&
			p.Z >= b.lo.Z && p.Z <= b.hi.Z {
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

// CollidesBall reports whether a ball centered at (x, y, z) with
// radius r intersects any obstacle.
func (w *World3D) CollidesBall(x, y, z, r float64) bool {
	if r < 0 {
		panic(errors.New("world: ball must have non-negative radius"))
	}
	p := r3.Vector{X: x, Y: y, Z: z}
	rsq := r * r
	for _, b := range w.balls {
		d := p.Sub(b.center)
		rp := b.radius + r
		if d.Norm2() <= rp*rp {
			return true
		}
	}
	for _, b := range w.aabbs {
		dx := axisResidual(p.X, b.lo.X, b.hi.X)
		dy := axisResidual(p.Y, b.lo.Y, b.hi.Y)
		dz := axisResidual(p.Z, b.lo.Z, b.hi.Z)
		if dx*dx+dy*dy+dz*dz <= rsq {
			return true
		}
	}
	return false
}

func axisResidual(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}
