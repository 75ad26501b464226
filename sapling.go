package sapling

import "math"

// Vec2 is a 2D vector used for positions, directions, and extents
// throughout the API. World space is y-up.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// LengthSquared returns the squared length of v. Distance comparisons in
// this package work on squared lengths to avoid the square root.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length, or the zero vector if v has
// zero length.
func (v Vec2) Normalized() Vec2 {
	l2 := v.LengthSquared()
	if l2 == 0 {
		return Vec2{}
	}
	return v.Scale(1 / math.Sqrt(l2))
}
