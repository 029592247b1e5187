// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D value in level units. It is used both as a point (position)
// and as an extent (size); callers track which meaning applies.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the component-wise sum of v and o.
func (v Vec) Plus(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Times returns v scaled by f.
func (v Vec) Times(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Box is an axis-aligned rectangle covering [Pos, Pos+Size) on both axes.
type Box struct {
	Pos  Vec
	Size Vec
}

// Right returns the exclusive right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the exclusive bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Overlaps reports whether two boxes share any area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Pos.X < o.Right() && o.Pos.X < b.Right() &&
		b.Pos.Y < o.Bottom() && o.Pos.Y < b.Bottom()
}

// Cells returns the integer cell range [x0,x1) x [y0,y1) that the box
// intersects.
func (b Box) Cells() (x0, y0, x1, y1 int) {
	return int(math.Floor(b.Pos.X)), int(math.Floor(b.Pos.Y)),
		int(math.Ceil(b.Right())), int(math.Ceil(b.Bottom()))
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
