// Package core provides the platform contract between games and the
// terminal front ends: the screen buffer games draw into, the input frame
// they read actions from, and the runtime config they are built with.
// It has no external dependencies so game logic stays pure and testable.
package core

// Rect is a screen-space rectangle in cell coordinates, used for overlay
// boxes and fills on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
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
