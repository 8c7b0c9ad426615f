package fx

import (
	"github.com/phanxgames/hoverpick"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transform is the render pose of an object: position, Euler rotation in
// radians and per-axis scale.
type Transform struct {
	Position hoverpick.Vec3
	Rotation hoverpick.Vec3
	Scale    hoverpick.Vec3
}

// NewTransform returns an identity transform at pos.
func NewTransform(pos hoverpick.Vec3) Transform {
	return Transform{Position: pos, Scale: hoverpick.Vec3{X: 1, Y: 1, Z: 1}}
}

// Apply maps a local point through scale, rotation and translation.
func (t Transform) Apply(p hoverpick.Vec3) hoverpick.Vec3 {
	return p.Mul(t.Scale).RotateEuler(t.Rotation).Add(t.Position)
}

// TweenGroup animates up to 4 float64 fields simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation, TweenColor, TweenFloat) and call Update(dt) each frame, or
// hand it to an Animator.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	ends   [4]float64
	Done   bool

	// OnComplete runs once, on the Update that finishes the group.
	OnComplete func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			// gween runs in float32; land on the exact target.
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone

	if g.Done && g.OnComplete != nil {
		g.OnComplete()
	}
}

// Stop marks the group done without writing further values. OnComplete is
// not called.
func (g *TweenGroup) Stop() {
	g.Done = true
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.ends[g.count] = to
	g.count++
}

func tweenVec(v *hoverpick.Vec3, to hoverpick.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&v.X, to.X, duration, fn)
	g.add(&v.Y, to.Y, duration, fn)
	g.add(&v.Z, to.Z, duration, fn)
	return g
}

// TweenPosition animates tr.Position to the given point.
func TweenPosition(tr *Transform, to hoverpick.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tweenVec(&tr.Position, to, duration, fn)
}

// TweenScale animates tr.Scale to the given per-axis scale.
func TweenScale(tr *Transform, to hoverpick.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tweenVec(&tr.Scale, to, duration, fn)
}

// TweenRotation animates tr.Rotation to the given Euler angles. Values are
// not wrapped, so a target of current+4π spins twice.
func TweenRotation(tr *Transform, to hoverpick.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tweenVec(&tr.Rotation, to, duration, fn)
}

// TweenColor animates all four components of c to the target color.
func TweenColor(c *hoverpick.Color, to hoverpick.Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&c.R, to.R, duration, fn)
	g.add(&c.G, to.G, duration, fn)
	g.add(&c.B, to.B, duration, fn)
	g.add(&c.A, to.A, duration, fn)
	return g
}

// TweenFloat animates a single value.
func TweenFloat(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(field, to, duration, fn)
	return g
}
