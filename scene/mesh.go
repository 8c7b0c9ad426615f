package scene

import (
	"fmt"
	"math"

	"github.com/phanxgames/hoverpick"
	"github.com/phanxgames/hoverpick/config"
	"github.com/phanxgames/hoverpick/fx"
)

// Kind is the primitive a Mesh draws and picks as.
type Kind string

const (
	KindSphere   Kind = "sphere"
	KindBox      Kind = "box"
	KindPlane    Kind = "plane"
	KindCylinder Kind = "cylinder"
)

const defaultSegments = 8

// Edge is one wireframe line in world space.
type Edge [2]hoverpick.Vec3

// Mesh is a drawable primitive. It implements hoverpick.Shape from its live
// transform: spheres pick as spheres, everything else as the axis-aligned
// box around its scaled size. Rotation is ignored for picking.
type Mesh struct {
	Name     string
	Kind     Kind
	Radius   float64
	Size     hoverpick.Vec3
	Segments int

	Transform fx.Transform
	Color     hoverpick.Color

	// BaseColor and BaseScale are the values reactions revert to.
	BaseColor hoverpick.Color
	BaseScale hoverpick.Vec3

	Pickable bool
	// Bob makes the mesh float up and down around its rest height.
	Bob bool

	// Target is set by Context.AddMesh for pickable meshes.
	Target *hoverpick.Target

	rest  hoverpick.Vec3
	edges []Edge
}

// NewMesh builds a mesh from its settings.
func NewMesh(mc config.Mesh) (*Mesh, error) {
	m := &Mesh{
		Name:     mc.Name,
		Kind:     Kind(mc.Kind),
		Radius:   mc.Radius,
		Size:     mc.Size,
		Segments: mc.Segments,
		Pickable: mc.Pickable,
		Bob:      mc.Bob,
		Color:    hoverpick.ColorWhite,
	}
	switch m.Kind {
	case KindSphere, KindBox, KindPlane, KindCylinder:
	default:
		return nil, fmt.Errorf("scene: mesh %q: unknown kind %q", mc.Name, mc.Kind)
	}
	if mc.Color != "" {
		c, err := config.ParseColor(mc.Color)
		if err != nil {
			return nil, fmt.Errorf("scene: mesh %q: %w", mc.Name, err)
		}
		m.Color = c
	}
	if m.Segments <= 0 {
		m.Segments = defaultSegments
	}
	m.Transform = fx.NewTransform(mc.Position)
	m.BaseColor = m.Color
	m.BaseScale = m.Transform.Scale
	m.rest = mc.Position
	return m, nil
}

// Rest returns the position the mesh was created at.
func (m *Mesh) Rest() hoverpick.Vec3 {
	return m.rest
}

// halfExtents is the unscaled half size of the mesh's box volume.
func (m *Mesh) halfExtents() hoverpick.Vec3 {
	switch m.Kind {
	case KindSphere:
		return hoverpick.Vec3{X: m.Radius, Y: m.Radius, Z: m.Radius}
	case KindCylinder:
		return hoverpick.Vec3{X: m.Radius, Y: m.Size.Y / 2, Z: m.Radius}
	default:
		return m.Size.Scale(0.5)
	}
}

// IntersectRay implements hoverpick.Shape.
func (m *Mesh) IntersectRay(r hoverpick.Ray) (float64, bool) {
	if m.Kind == KindSphere {
		return hoverpick.Sphere{
			Center: m.Transform.Position,
			Radius: m.Radius * m.Transform.Scale.MaxComponent(),
		}.IntersectRay(r)
	}
	return hoverpick.Box{
		Center:      m.Transform.Position,
		HalfExtents: m.halfExtents().Mul(m.Transform.Scale),
	}.IntersectRay(r)
}

// Edges returns the wireframe in world space. The slice is reused by the
// next call.
func (m *Mesh) Edges() []Edge {
	m.edges = m.edges[:0]
	switch m.Kind {
	case KindSphere:
		m.sphereEdges()
	case KindBox:
		m.boxEdges()
	case KindPlane:
		m.planeEdges()
	case KindCylinder:
		m.cylinderEdges()
	}
	for i := range m.edges {
		m.edges[i][0] = m.Transform.Apply(m.edges[i][0])
		m.edges[i][1] = m.Transform.Apply(m.edges[i][1])
	}
	return m.edges
}

func (m *Mesh) ring(center hoverpick.Vec3, radius float64, n int) {
	prev := center.Add(hoverpick.Vec3{X: radius})
	for i := 1; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		p := center.Add(hoverpick.Vec3{X: math.Cos(a) * radius, Z: math.Sin(a) * radius})
		m.edges = append(m.edges, Edge{prev, p})
		prev = p
	}
}

func (m *Mesh) sphereEdges() {
	n := m.Segments
	r := m.Radius

	// Parallels.
	for i := 1; i < n; i++ {
		phi := math.Pi * float64(i) / float64(n)
		m.ring(hoverpick.Vec3{Y: math.Cos(phi) * r}, math.Sin(phi)*r, 2*n)
	}
	// Meridians, pole to pole.
	for j := 0; j < n; j++ {
		theta := 2 * math.Pi * float64(j) / float64(n)
		prev := hoverpick.Vec3{Y: r}
		for i := 1; i <= n; i++ {
			phi := math.Pi * float64(i) / float64(n)
			p := hoverpick.Vec3{
				X: math.Sin(phi) * math.Cos(theta) * r,
				Y: math.Cos(phi) * r,
				Z: math.Sin(phi) * math.Sin(theta) * r,
			}
			m.edges = append(m.edges, Edge{prev, p})
			prev = p
		}
	}
}

func (m *Mesh) boxEdges() {
	h := m.halfExtents()
	var c [8]hoverpick.Vec3
	for i := range c {
		c[i] = hoverpick.Vec3{X: -h.X, Y: -h.Y, Z: -h.Z}
		if i&1 != 0 {
			c[i].X = h.X
		}
		if i&2 != 0 {
			c[i].Y = h.Y
		}
		if i&4 != 0 {
			c[i].Z = h.Z
		}
	}
	// Corners differing in exactly one bit share an edge.
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				m.edges = append(m.edges, Edge{c[i], c[i|bit]})
			}
		}
	}
}

func (m *Mesh) planeEdges() {
	hx, hz := m.Size.X/2, m.Size.Z/2
	const cells = 4
	for i := 0; i <= cells; i++ {
		f := float64(i)/cells*2 - 1
		m.edges = append(m.edges,
			Edge{{X: f * hx, Z: -hz}, {X: f * hx, Z: hz}},
			Edge{{X: -hx, Z: f * hz}, {X: hx, Z: f * hz}},
		)
	}
}

func (m *Mesh) cylinderEdges() {
	n := 2 * m.Segments
	hy := m.Size.Y / 2
	m.ring(hoverpick.Vec3{Y: hy}, m.Radius, n)
	m.ring(hoverpick.Vec3{Y: -hy}, m.Radius, n)
	for i := 0; i < m.Segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(m.Segments)
		x, z := math.Cos(a)*m.Radius, math.Sin(a)*m.Radius
		m.edges = append(m.edges, Edge{{X: x, Y: hy, Z: z}, {X: x, Y: -hy, Z: z}})
	}
}
