// Package sim implements the deterministic fixed-timestep simulation behind
// the drifter game: a rigid-body world of circular craft, obstacles and
// supply pickups inside a square arena. The package is UI-agnostic; a host
// feeds it input events and elapsed time, then reads interpolated transforms
// back for presentation. All randomness flows through a seeded hash so one
// seed always reproduces the same world.
package sim

import "math"

// Vec2 is a 2D vector in world units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of v, avoiding the square root.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Rect is an axis-aligned rectangle in world units, Min above-left of Max.
type Rect struct {
	Min, Max Vec2
}

// Span is a half-open scalar range [Lo, Hi).
type Span struct {
	Lo, Hi float64
}

// wrapAngle normalizes an angle in radians to [0, 2π).
func wrapAngle(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}
