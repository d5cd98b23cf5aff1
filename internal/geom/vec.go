// Package geom holds the small amount of 2D vector and colour arithmetic the
// mesh simulation needs.
package geom

import "math"

// Vec is a 2D point or direction in simulation space.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Rotate returns v rotated counter-clockwise (in a y-up frame) by deg degrees.
func (v Vec) Rotate(deg float64) Vec {
	s, c := math.Sincos(Rad(deg))
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec) Finite() bool {
	return finite(v.X) && finite(v.Y)
}

// Unit returns the unit vector pointing at deg degrees.
func Unit(deg float64) Vec {
	s, c := math.Sincos(Rad(deg))
	return Vec{c, s}
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// WrapDeg maps an angle in degrees onto [0, 360).
func WrapDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TriangleArea returns the unsigned area of the triangle abc.
func TriangleArea(a, b, c Vec) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
