// Package core provides fundamental types and utilities for the pet simulator.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation engine pure and testable.
package core

// Rect represents an axis-aligned rectangle. The playground a pet moves in is
// a Rect; its edges are Left() <= x < Right() and Top() <= y < Bottom().
type Rect struct {
	X, Y int // Origin (top-left in screen terms, bottom-left on the canvas)
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// DefaultPlayground is the conventional motion area used when the renderer
// does not supply one.
func DefaultPlayground() Rect {
	return NewRect(0, 0, 150, 100)
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int {
	return r.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Location {
	return NewLocation(r.X+r.W/2, r.Y+r.H/2)
}

// Location is a point inside the playground. Coordinates are never negative:
// NewLocation clamps anything below zero.
type Location struct {
	X, Y int
}

// NewLocation creates a location, clamping negative coordinates to 0.
func NewLocation(x, y int) Location {
	return Location{X: Max(x, 0), Y: Max(y, 0)}
}

// Translate returns the location moved by (dx, dy), clamped at 0.
func (l Location) Translate(dx, dy int) Location {
	return NewLocation(l.X+dx, l.Y+dy)
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
