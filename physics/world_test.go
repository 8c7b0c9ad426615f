package physics

import (
	"math"
	"testing"

	"github.com/phanxgames/hoverpick"
	"github.com/phanxgames/hoverpick/fx"
)

func TestSphereFallsUnderGravity(t *testing.T) {
	w := NewWorld(EarthGravity)
	s := w.AddSphere(5, 2, hoverpick.Vec3{Y: 4})

	for i := 0; i < 30; i++ {
		w.FixedStep()
	}

	// Half a second of free fall: 4 - 9.82*0.25/2.
	want := 4 + EarthGravity*0.25/2
	if got := s.Position().Y; math.Abs(got-want) > 0.1 {
		t.Errorf("y after 0.5s = %f, want ~%f", got, want)
	}
	if v := s.Velocity().Y; v >= 0 {
		t.Errorf("vy = %f, want falling", v)
	}
	if math.Abs(w.Elapsed()-0.5) > 1e-9 {
		t.Errorf("Elapsed = %f, want 0.5", w.Elapsed())
	}
}

func TestSphereRestsOnGround(t *testing.T) {
	w := NewWorld(EarthGravity)
	w.AddGround(-2, 50)
	s := w.AddSphere(5, 2, hoverpick.Vec3{Y: 4})

	for i := 0; i < 5*60; i++ {
		w.FixedStep()
	}

	// Radius 2 on a floor at -2 puts the centre at 0.
	if got := s.Position().Y; math.Abs(got) > 0.2 {
		t.Errorf("resting y = %f, want ~0", got)
	}
	if v := s.Velocity().Y; math.Abs(v) > 0.1 {
		t.Errorf("resting vy = %f, want ~0", v)
	}
}

func TestStaticBoxBlocksFall(t *testing.T) {
	w := NewWorld(EarthGravity)
	w.AddGround(-2, 50)
	w.AddStaticBox(hoverpick.Vec3{X: 1.5, Y: -1, Z: -0.5}, hoverpick.Vec3{X: 1, Y: 1, Z: 1})
	b := w.AddBox(2, hoverpick.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, hoverpick.Vec3{X: 1.5, Y: 5})

	for i := 0; i < 4*60; i++ {
		w.FixedStep()
	}

	// Obstacle top is at y=0, box half height 0.5.
	if got := b.Position().Y; math.Abs(got-0.5) > 0.2 {
		t.Errorf("box y = %f, want ~0.5", got)
	}
}

func TestStepAccumulates(t *testing.T) {
	w := NewWorld(EarthGravity)

	if n := w.Step(1.0 / 30); n != 2 {
		t.Errorf("Step(1/30) ran %d steps, want 2", n)
	}
	if n := w.Step(FixedDelta / 2); n != 0 {
		t.Errorf("half step ran %d steps, want 0", n)
	}
	if n := w.Step(0); n != 0 {
		t.Errorf("Step(0) ran %d steps", n)
	}

	w.MaxSubSteps = 3
	if n := w.Step(1); n != 3 {
		t.Errorf("Step(1) ran %d steps, want cap 3", n)
	}
	if n := w.Step(FixedDelta / 4); n != 0 {
		t.Errorf("time past the cap should be dropped, ran %d", n)
	}
}

func TestKinematicTranslate(t *testing.T) {
	w := NewWorld(EarthGravity)
	p := w.AddKinematic(hoverpick.Vec3{X: 0.5, Y: 1, Z: 0.5}, hoverpick.Vec3{X: -4, Y: -1})

	p.Translate(0.1, 0, -0.1)
	w.FixedStep()

	got := p.Position()
	if math.Abs(got.X+3.9) > 1e-9 || math.Abs(got.Y+1) > 1e-9 || math.Abs(got.Z+0.1) > 1e-9 {
		t.Errorf("position = %v, want (-3.9, -1, -0.1)", got)
	}
}

func TestStaticBodyDoesNotMove(t *testing.T) {
	w := NewWorld(EarthGravity)
	g := w.AddGround(-2, 10)
	g.Translate(5, 5, 1)

	got := g.Position()
	if got.X != 0 || got.Y != -2 || got.Z != 1 {
		t.Errorf("ground = %v, want (0, -2, 1)", got)
	}
}

func TestBodySync(t *testing.T) {
	w := NewWorld(0)
	b := w.AddBox(3, hoverpick.Vec3{X: 2, Y: 0.5, Z: 1}, hoverpick.Vec3{Y: 6, Z: 2})
	b.CP().SetAngle(3 * math.Pi)

	tr := fx.NewTransform(hoverpick.Vec3{})
	tr.Rotation.Y = 0.25
	b.Sync(&tr)

	if tr.Position != (hoverpick.Vec3{Y: 6, Z: 2}) {
		t.Errorf("position = %v", tr.Position)
	}
	if math.Abs(math.Abs(tr.Rotation.Z)-math.Pi) > 1e-9 {
		t.Errorf("rotation z = %f, want ±π", tr.Rotation.Z)
	}
	if tr.Rotation.Y != 0.25 {
		t.Error("Sync should keep the Y rotation")
	}
	if len(w.Bodies()) != 1 {
		t.Errorf("Bodies = %d", len(w.Bodies()))
	}
}
