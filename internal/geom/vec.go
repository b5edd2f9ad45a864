// Package geom provides the 2D vector math and collision primitives used by
// the layout engine. All coordinates are in mm, angles in degrees measured
// counter-clockwise from the positive X axis.
package geom

import "math"

// Vec2 represents a 2D vector or point in mm.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Normalized returns a unit vector in the direction of v,
// or the zero vector if v is degenerate.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// UnitAt returns the unit vector at the given angle in degrees.
func UnitAt(angleDeg float64) Vec2 {
	rad := angleDeg * math.Pi / 180.0
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// FromPolar converts polar coordinates (radius in mm, angle in degrees)
// to a Cartesian point about the origin.
func FromPolar(radius, angleDeg float64) Vec2 {
	return UnitAt(angleDeg).Scale(radius)
}
