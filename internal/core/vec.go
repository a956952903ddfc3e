package core

import "math"

// Vec is a point or velocity in canvas pixel coordinates.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// AngleTo returns the heading from v towards target in radians.
// Coincident points yield 0.
func (v Vec) AngleTo(target Vec) float64 {
	dx, dy := target.X-v.X, target.Y-v.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Rotate rotates v around the origin by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// IsFinite reports whether both components are real numbers.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Polar returns the vector of the given length pointing along angle.
func Polar(angle, length float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{cos * length, sin * length}
}

// LocalFrame expresses p in the frame of a box centered at origin and rotated by
// rotation radians.
func LocalFrame(p, origin Vec, rotation float64) Vec {
	return p.Sub(origin).Rotate(-rotation)
}

// InOrientedBox reports whether p lies within an oriented rectangle with the given
// center, full extents, and rotation, expanded by pad on every side.
func InOrientedBox(p, center Vec, width, height, rotation, pad float64) bool {
	local := LocalFrame(p, center, rotation)
	return math.Abs(local.X) < width/2+pad && math.Abs(local.Y) < height/2+pad
}
