package hoverpick

import "testing"

func TestCameraRayThroughCentre(t *testing.T) {
	cam := NewPerspectiveCamera(45, 16.0/9.0, 0.1, 100)
	r := cam.RayFromNDC(Vec2{})

	if r.Origin != (Vec3{0, 0, 3}) {
		t.Errorf("origin = %v", r.Origin)
	}
	if !approx(r.Direction.X, 0) || !approx(r.Direction.Y, 0) || !approx(r.Direction.Z, -1) {
		t.Errorf("direction = %v, want (0, 0, -1)", r.Direction)
	}
	if r.Length != 100 {
		t.Errorf("length = %v, want far plane", r.Length)
	}
}

func TestCameraEdgeRayMatchesFOV(t *testing.T) {
	cam := NewPerspectiveCamera(90, 1, 0.1, 100)
	r := cam.RayFromNDC(Vec2{0, 1})
	// 90 degree vertical FOV: the top edge is 45 degrees up.
	if !approx(r.Direction.Y, -r.Direction.Z) {
		t.Errorf("direction = %v, want 45 degrees up", r.Direction)
	}
}

func TestCameraProjectRoundTrip(t *testing.T) {
	cam := NewPerspectiveCamera(45, 4.0/3.0, 0.1, 100)
	cam.Position = Vec3{1, 2, 9}
	cam.LookAt = Vec3{0, -1, 0}

	for _, ndc := range []Vec2{{0, 0}, {0.5, -0.25}, {-0.9, 0.8}} {
		p := cam.RayFromNDC(ndc).At(5)
		got, depth, ok := cam.Project(p)
		if !ok {
			t.Fatalf("Project(%v) not ok", p)
		}
		if depth <= 0 {
			t.Errorf("depth = %v", depth)
		}
		if !approx(got.X, ndc.X) || !approx(got.Y, ndc.Y) {
			t.Errorf("round trip %v -> %v", ndc, got)
		}
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := NewPerspectiveCamera(45, 1, 0.1, 100)
	if _, _, ok := cam.Project(Vec3{0, 0, 5}); ok {
		t.Error("point behind camera should not project")
	}
}

func TestCameraSetAspect(t *testing.T) {
	cam := NewPerspectiveCamera(45, 1, 0.1, 100)
	cam.SetAspect(800, 400)
	if cam.Aspect != 2 {
		t.Errorf("aspect = %v, want 2", cam.Aspect)
	}
	cam.SetAspect(0, 400)
	if cam.Aspect != 2 {
		t.Error("zero width should be ignored")
	}
}

func TestCameraBasisDegenerate(t *testing.T) {
	cam := NewPerspectiveCamera(45, 1, 0.1, 100)
	cam.Position = Vec3{0, 5, 0}
	cam.LookAt = Vec3{}
	f, r, u := cam.Basis()
	if f != (Vec3{0, -1, 0}) || r != WorldRight {
		t.Errorf("basis = %v %v %v", f, r, u)
	}
}
