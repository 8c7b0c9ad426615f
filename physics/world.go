// Package physics runs rigid bodies for the exercises on top of Chipmunk
// (jakecoffman/cp). cp is 2D: bodies move in the camera-facing XY plane and
// each keeps a constant Z for rendering.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/phanxgames/hoverpick"
	"github.com/phanxgames/hoverpick/fx"
)

// EarthGravity is the default downward acceleration in m/s².
const EarthGravity = -9.82

// FixedDelta is the length of one simulation step.
const FixedDelta = 1.0 / 60.0

// Default surface parameters.
const (
	DefaultFriction   = 0.3
	DefaultElasticity = 0.0
)

// Kind classifies a body.
type Kind uint8

const (
	KindDynamic Kind = iota
	KindStatic
	KindKinematic
)

// World owns the cp space and the bodies added through it.
type World struct {
	space  *cp.Space
	bodies []*Body

	// MaxSubSteps caps the fixed steps Step runs for one frame. Time beyond
	// the cap is dropped.
	MaxSubSteps int

	accumulator float64
	elapsed     float64
}

// NewWorld creates a world with gravity along Y.
func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{space: space, MaxSubSteps: 10}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	return w.space
}

// Bodies returns the bodies in the order they were added.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Elapsed returns the simulated time in seconds.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// FixedStep advances the simulation by exactly FixedDelta.
func (w *World) FixedStep() {
	w.space.Step(FixedDelta)
	w.elapsed += FixedDelta
}

// Step accumulates dt seconds of real time and runs as many fixed steps as
// fit, up to MaxSubSteps. It returns the number of steps run.
func (w *World) Step(dt float64) int {
	if dt <= 0 {
		return 0
	}
	w.accumulator += dt
	steps := 0
	for w.accumulator >= FixedDelta {
		if w.MaxSubSteps > 0 && steps >= w.MaxSubSteps {
			w.accumulator = 0
			break
		}
		w.FixedStep()
		w.accumulator -= FixedDelta
		steps++
	}
	return steps
}

// AddGround adds an infinite-looking static floor at height y spanning
// [-halfWidth, halfWidth] along X.
func (w *World) AddGround(y, halfWidth float64) *Body {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: 0, Y: y})
	w.space.AddBody(body)
	shape := cp.NewSegment(body, cp.Vector{X: -halfWidth}, cp.Vector{X: halfWidth}, 0)
	return w.addShape("ground", KindStatic, body, shape, 0)
}

// AddStaticBox adds an immovable box obstacle.
func (w *World) AddStaticBox(pos, half hoverpick.Vec3) *Body {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	w.space.AddBody(body)
	shape := cp.NewBox(body, half.X*2, half.Y*2, 0)
	return w.addShape("static", KindStatic, body, shape, pos.Z)
}

// AddSphere adds a dynamic ball.
func (w *World) AddSphere(mass, radius float64, pos hoverpick.Vec3) *Body {
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	w.space.AddBody(body)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	return w.addShape("sphere", KindDynamic, body, shape, pos.Z)
}

// AddBox adds a dynamic box with the given half extents.
func (w *World) AddBox(mass float64, half, pos hoverpick.Vec3) *Body {
	body := cp.NewBody(mass, cp.MomentForBox(mass, half.X*2, half.Y*2))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	w.space.AddBody(body)
	shape := cp.NewBox(body, half.X*2, half.Y*2, 0)
	return w.addShape("box", KindDynamic, body, shape, pos.Z)
}

// AddKinematic adds a body moved by the caller rather than by forces. It
// pushes dynamic bodies but is not pushed back.
func (w *World) AddKinematic(half, pos hoverpick.Vec3) *Body {
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	w.space.AddBody(body)
	shape := cp.NewBox(body, half.X*2, half.Y*2, 0)
	return w.addShape("kinematic", KindKinematic, body, shape, pos.Z)
}

func (w *World) addShape(name string, kind Kind, body *cp.Body, shape *cp.Shape, z float64) *Body {
	shape.SetFriction(DefaultFriction)
	shape.SetElasticity(DefaultElasticity)
	w.space.AddShape(shape)

	b := &Body{Name: name, Kind: kind, Z: z, body: body, shape: shape}
	w.bodies = append(w.bodies, b)
	return b
}

// Body is one simulated object.
type Body struct {
	Name string
	Kind Kind
	// Z is the constant depth the body is drawn at.
	Z float64

	body  *cp.Body
	shape *cp.Shape
}

// CP returns the underlying Chipmunk body.
func (b *Body) CP() *cp.Body {
	return b.body
}

// Shape returns the underlying Chipmunk shape.
func (b *Body) Shape() *cp.Shape {
	return b.shape
}

// Position returns the body position, with Z from the body's depth.
func (b *Body) Position() hoverpick.Vec3 {
	p := b.body.Position()
	return hoverpick.Vec3{X: p.X, Y: p.Y, Z: b.Z}
}

// Angle returns the body rotation about Z in radians.
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// SetPosition teleports the body. Static bodies never move; only their Z
// changes.
func (b *Body) SetPosition(p hoverpick.Vec3) {
	b.Z = p.Z
	if b.Kind == KindStatic {
		return
	}
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

// Translate moves the body by the given offset.
func (b *Body) Translate(dx, dy, dz float64) {
	p := b.Position()
	b.SetPosition(hoverpick.Vec3{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz})
}

// Velocity returns the linear velocity in the XY plane.
func (b *Body) Velocity() hoverpick.Vec2 {
	v := b.body.Velocity()
	return hoverpick.Vec2{X: v.X, Y: v.Y}
}

// Sync copies the body pose onto a render transform. Rotation.Z gets the
// body angle; the transform's X and Y rotation are left alone.
func (b *Body) Sync(tr *fx.Transform) {
	p := b.Position()
	tr.Position = p
	tr.Rotation.Z = normalizeAngle(b.Angle())
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
