// Package core provides fundamental types and utilities shared by the simulation
// and the front-ends. It contains no external dependencies (especially no Bubble Tea
// or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in field units. Used for positions, sizes and velocities.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned rectangle
// given by its top-left corner and size. Touching counts as overlap.
//
// The test works on per-axis distances between the circle center and the rectangle
// center: a separating axis rules out overlap, a center inside the rectangle's slab
// on either axis confirms it, and anything left is the corner case.
func CircleIntersectsRect(center Vec2, radius float64, rectPos, rectSize Vec2) bool {
	halfW := rectSize.X / 2
	halfH := rectSize.Y / 2

	dx := math.Abs(center.X - (rectPos.X + halfW))
	dy := math.Abs(center.Y - (rectPos.Y + halfH))

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	cx := dx - halfW
	cy := dy - halfH
	return cx*cx+cy*cy <= radius*radius
}

// Rect represents an axis-aligned box on the character grid.
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
