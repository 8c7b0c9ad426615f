package hoverpick

import "math"

// PerspectiveCamera is a pinhole camera looking from Position towards
// LookAt. It builds pick rays for ShapeCaster and projects world points for
// debug drawing.
type PerspectiveCamera struct {
	Position Vec3
	LookAt   Vec3
	Up       Vec3

	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float64
	// Aspect is viewport width divided by height.
	Aspect    float64
	Near, Far float64
}

// NewPerspectiveCamera creates a camera at (0, 0, 3) looking at the origin.
func NewPerspectiveCamera(fovY, aspect, near, far float64) *PerspectiveCamera {
	if aspect <= 0 {
		aspect = 1
	}
	return &PerspectiveCamera{
		Position:    Vec3{0, 0, 3},
		Up:          WorldUp,
		FieldOfView: fovY,
		Aspect:      aspect,
		Near:        near,
		Far:         far,
	}
}

// SetAspect updates the aspect ratio from a viewport size. Zero sizes are
// ignored.
func (c *PerspectiveCamera) SetAspect(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = width / height
}

// Basis returns the camera's forward, right and up unit vectors.
func (c *PerspectiveCamera) Basis() (forward, right, up Vec3) {
	forward = c.LookAt.Sub(c.Position).Unit()
	if forward == (Vec3{}) {
		forward = WorldForward
	}
	worldUp := c.Up
	if worldUp == (Vec3{}) {
		worldUp = WorldUp
	}
	right = forward.Cross(worldUp).Unit()
	if right == (Vec3{}) {
		// Looking straight along Up; pick any perpendicular axis.
		right = WorldRight
	}
	up = right.Cross(forward)
	return forward, right, up
}

func (c *PerspectiveCamera) tanHalfFOV() float64 {
	return math.Tan(c.FieldOfView * math.Pi / 360)
}

// RayFromNDC returns the ray from the camera position through the given
// pointer position, reaching as far as the far plane.
func (c *PerspectiveCamera) RayFromNDC(ndc Vec2) Ray {
	forward, right, up := c.Basis()
	th := c.tanHalfFOV()

	dir := forward.
		Add(right.Scale(ndc.X * th * c.Aspect)).
		Add(up.Scale(ndc.Y * th)).
		Unit()

	return Ray{Origin: c.Position, Direction: dir, Length: c.Far}
}

// Project maps a world point to normalized device coordinates. depth is the
// distance along the view direction. ok is false for points at or behind the
// near plane.
func (c *PerspectiveCamera) Project(p Vec3) (ndc Vec2, depth float64, ok bool) {
	forward, right, up := c.Basis()
	v := p.Sub(c.Position)

	depth = v.Dot(forward)
	if depth <= c.Near {
		return Vec2{}, depth, false
	}

	th := c.tanHalfFOV()
	ndc.X = v.Dot(right) / (depth * th * c.Aspect)
	ndc.Y = v.Dot(up) / (depth * th)
	return ndc, depth, true
}
