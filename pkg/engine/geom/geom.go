// Package geom provides the small amount of 2D and 3D math the overlay needs:
// screen points, rectangles, and polylines for circles and curved connections.
package geom

import "math"

// Vec2 is a point or direction in screen space (pixels).
type Vec2 struct {
	X, Y float32
}

// Vec3 is a position in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Zero is the projection sentinel: a camera returns it for points it cannot place on screen.
var Zero = Vec2{}

// V is shorthand for Vec2{x, y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns v scaled to unit length, or Zero for a zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// IsZero reports whether v is the off-screen sentinel.
func (v Vec2) IsZero() bool { return v == Zero }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float32 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float32 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Pad grows the rectangle by p on every side.
func (r Rect) Pad(p float32) Rect {
	return Rect{r.X - p, r.Y - p, r.W + 2*p, r.H + 2*p}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Around returns a rectangle of the given size whose top-left corner is at p, padded by pad.
func Around(p, size Vec2, pad float32) Rect {
	return Rect{p.X, p.Y, size.X, size.Y}.Pad(pad)
}
