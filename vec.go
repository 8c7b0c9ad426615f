package hoverpick

import "math"

// Vec3 is a 3D vector with float64 components. Positions, directions and
// scales in world space all use it.
type Vec3 struct {
	X, Y, Z float64
}

// Common axis vectors.
var (
	WorldUp      = Vec3{0, 1, 0}
	WorldRight   = Vec3{1, 0, 0}
	WorldForward = Vec3{0, 0, -1}
)

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to length 1. The zero vector stays zero.
func (v Vec3) Unit() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// DistanceTo returns the distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// MaxComponent returns the largest of X, Y and Z.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// RotateEuler rotates v by the given Euler angles (radians) in X, then Y,
// then Z order.
func (v Vec3) RotateEuler(r Vec3) Vec3 {
	out := v
	if r.X != 0 {
		s, c := math.Sincos(r.X)
		out = Vec3{out.X, out.Y*c - out.Z*s, out.Y*s + out.Z*c}
	}
	if r.Y != 0 {
		s, c := math.Sincos(r.Y)
		out = Vec3{out.X*c + out.Z*s, out.Y, -out.X*s + out.Z*c}
	}
	if r.Z != 0 {
		s, c := math.Sincos(r.Z)
		out = Vec3{out.X*c - out.Y*s, out.X*s + out.Y*c, out.Z}
	}
	return out
}
