package hoverpick

import (
	"math"
	"sort"
)

// Ray is a half-line cast from Origin along the unit vector Direction.
// Length limits how far the ray reaches; zero means unlimited.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Length    float64
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

func (r Ray) inRange(t float64) bool {
	return r.Length <= 0 || t <= r.Length
}

// Hit is one intersection returned by a ray query.
type Hit struct {
	Target   *Target
	Distance float64 // distance from the ray origin to Point
	Point    Vec3
}

// RayCaster answers ray queries for the tracker. CastRay casts a ray from the
// camera through the given pointer position against targets and returns the
// hits sorted by ascending distance. The result is empty when nothing is hit.
type RayCaster interface {
	CastRay(ndc Vec2, targets []*Target) []Hit
}

// RaySource builds a world-space ray through a pointer position.
// PerspectiveCamera implements it.
type RaySource interface {
	RayFromNDC(ndc Vec2) Ray
}

// Shape is a target's pickable volume.
type Shape interface {
	// IntersectRay returns the distance along r to the first point of the
	// shape, or false if r misses. A ray starting inside the shape hits at 0.
	IntersectRay(r Ray) (float64, bool)
}

// ShapeCaster is the built-in RayCaster. It tests each target's Shape and
// skips targets without one.
type ShapeCaster struct {
	Source RaySource

	hits []Hit
}

// NewShapeCaster creates a caster that builds rays from source.
func NewShapeCaster(source RaySource) *ShapeCaster {
	return &ShapeCaster{Source: source}
}

// CastRay implements RayCaster. Hits at equal distance keep the order of
// targets. The returned slice is reused by the next call.
func (c *ShapeCaster) CastRay(ndc Vec2, targets []*Target) []Hit {
	c.hits = c.hits[:0]
	if c.Source == nil || len(targets) == 0 {
		return c.hits
	}

	ray := c.Source.RayFromNDC(ndc)
	for _, t := range targets {
		if t == nil || t.Shape == nil {
			continue
		}
		if d, ok := t.Shape.IntersectRay(ray); ok {
			c.hits = append(c.hits, Hit{Target: t, Distance: d, Point: ray.At(d)})
		}
	}

	sort.SliceStable(c.hits, func(i, j int) bool {
		return c.hits[i].Distance < c.hits[j].Distance
	})
	return c.hits
}

// Sphere is a spherical Shape.
type Sphere struct {
	Center Vec3
	Radius float64
}

// IntersectRay implements Shape.
func (s Sphere) IntersectRay(r Ray) (float64, bool) {
	m := r.Origin.Sub(s.Center)
	b := m.Dot(r.Direction)
	c := m.Dot(m) - s.Radius*s.Radius

	// Origin outside the sphere and pointing away from it.
	if c > 0 && b > 0 {
		return 0, false
	}

	discr := b*b - c
	if discr < 0 {
		return 0, false
	}

	t := -b - math.Sqrt(discr)
	if t < 0 {
		t = 0
	}
	if !r.inRange(t) {
		return 0, false
	}
	return t, true
}

// Box is an axis-aligned box Shape.
type Box struct {
	Center      Vec3
	HalfExtents Vec3
}

// IntersectRay implements Shape using the slab test.
func (b Box) IntersectRay(r Ray) (float64, bool) {
	bmin := b.Center.Sub(b.HalfExtents)
	bmax := b.Center.Add(b.HalfExtents)

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{bmin.X, bmin.Y, bmin.Z}
	hi := [3]float64{bmax.X, bmax.Y, bmax.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < 1e-12 {
			// Parallel to this slab: must already be between its planes.
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}

	t := tmin
	if t < 0 {
		t = 0
	}
	if !r.inRange(t) {
		return 0, false
	}
	return t, true
}
