// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It has no external dependencies so
// game logic stays pure and testable.
package core

import "math"

// Vec3 is a point or an extent in world space.
// X runs across the road, Y is up, Z runs along the road (negative = ahead).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v multiplied component-wise by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Box is an axis-aligned bounding box described by its center and half extents.
type Box struct {
	Center Vec3
	Half   Vec3
}

// NewBox creates a box centered on center with full dimensions size.
func NewBox(center, size Vec3) Box {
	return Box{Center: center, Half: size.Scale(0.5)}
}

// Min returns the minimum corner.
func (b Box) Min() Vec3 {
	return Vec3{X: b.Center.X - b.Half.X, Y: b.Center.Y - b.Half.Y, Z: b.Center.Z - b.Half.Z}
}

// Max returns the maximum corner.
func (b Box) Max() Vec3 {
	return Vec3{X: b.Center.X + b.Half.X, Y: b.Center.Y + b.Half.Y, Z: b.Center.Z + b.Half.Z}
}

// Intersects reports whether two boxes overlap on all three axes.
//
// X and Z use a strict center-distance test, so boxes that only touch do
// not collide. Y uses range intersection.
func (b Box) Intersects(other Box) bool {
	if math.Abs(b.Center.X-other.Center.X) >= b.Half.X+other.Half.X {
		return false
	}
	if math.Abs(b.Center.Z-other.Center.Z) >= b.Half.Z+other.Half.Z {
		return false
	}
	bMin, bMax := b.Center.Y-b.Half.Y, b.Center.Y+b.Half.Y
	oMin, oMax := other.Center.Y-other.Half.Y, other.Center.Y+other.Half.Y
	return bMax > oMin && bMin < oMax
}

// Rect represents an axis-aligned rectangle in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
