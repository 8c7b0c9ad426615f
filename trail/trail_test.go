package trail

import "testing"

func TestMoveDistanceGate(t *testing.T) {
	tr := New(DefaultConfig(), nil)

	tests := []struct {
		x, y  float64
		spawn bool
	}{
		{100, 100, false}, // both axes under 200 from (0, 0)
		{250, 0, true},
		{300, 150, false}, // dx 50, dy 150
		{300, 200, true},  // dy exactly 200
		{100, 200, true},  // dx 200 back to the left
	}
	for i, tt := range tests {
		if got := tr.Move(tt.x, tt.y); got != tt.spawn {
			t.Errorf("move %d to (%v, %v): spawn = %v, want %v", i, tt.x, tt.y, got, tt.spawn)
		}
	}
	if tr.Len() != 3 {
		t.Errorf("Len = %d, want 3", tr.Len())
	}
}

func TestImageIndexWraps(t *testing.T) {
	tr := New(DefaultConfig(), nil)
	for i := 1; i <= 8; i++ {
		tr.Move(float64(i*200), 0)
	}
	var got []int
	for _, it := range tr.Items() {
		got = append(got, it.Image)
	}
	want := []int{0, 1, 2, 3, 4, 5, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("images = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("images = %v, want %v", got, want)
			break
		}
	}
}

func TestItemLifecycle(t *testing.T) {
	tr := New(DefaultConfig(), nil)
	tr.Move(400, 300)
	it := tr.Items()[0]

	if it.X != 400 || it.Y != 300 {
		t.Errorf("item at (%v, %v), want pointer position", it.X, it.Y)
	}

	tr.Update(0.5)
	if it.Alpha <= 0 || it.Alpha >= 1 {
		t.Errorf("alpha at 0.5s = %f, want fading in", it.Alpha)
	}
	if it.OffsetY >= 0 || it.OffsetY <= -20 {
		t.Errorf("offset at 0.5s = %f, want rising", it.OffsetY)
	}

	tr.Update(0.5)
	if it.Alpha != 1 || it.OffsetY != -20 {
		t.Errorf("at 1s alpha=%f offset=%f, want 1 and -20", it.Alpha, it.OffsetY)
	}

	tr.Update(0.5)
	if tr.Len() != 1 {
		t.Fatal("item should still be alive at 1.5s")
	}
	if it.Alpha <= 0 || it.Alpha >= 1 {
		t.Errorf("alpha at 1.5s = %f, want fading out", it.Alpha)
	}

	tr.Update(0.5)
	if tr.Len() != 0 {
		t.Errorf("Len at 2s = %d, want 0", tr.Len())
	}
}

func TestFadeOutDelayHolds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeOutDelay = 2
	tr := New(cfg, nil)
	tr.Move(300, 300)
	it := tr.Items()[0]

	tr.Update(1)
	tr.Update(0.5)
	if it.Alpha != 1 {
		t.Errorf("alpha during hold = %f, want 1", it.Alpha)
	}
	tr.Update(0.5)
	tr.Update(1)
	if tr.Len() != 0 {
		t.Errorf("Len after 3s = %d, want 0", tr.Len())
	}
}

func TestZWithinRange(t *testing.T) {
	tr := New(DefaultConfig(), nil)
	tr.SetSeed(7)
	for i := 1; i <= 50; i++ {
		tr.Move(float64(i*200), 0)
	}
	for _, it := range tr.Items() {
		if it.Z < 0 || it.Z > 10 {
			t.Fatalf("Z = %d, want within [0, 10]", it.Z)
		}
	}

	sorted := tr.sorted()
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if a.Z > b.Z || (a.Z == b.Z && a.seq > b.seq) {
			t.Fatalf("draw order broken at %d", i)
		}
	}
}

func TestNegativeMaxZ(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxZ = -3
	tr := New(cfg, nil)
	if !tr.Move(200, 0) {
		t.Fatal("Move should spawn")
	}

	// Retuned after New.
	tr.Config().MaxZ = -1
	tr.Config().ImageCount = 0
	if !tr.Move(400, 0) {
		t.Fatal("Move should spawn after retune")
	}
	for _, it := range tr.Items() {
		if it.Z != 0 {
			t.Errorf("Z = %d, want 0", it.Z)
		}
	}
}

func TestMaxItemsAndClear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxItems = 2
	tr := New(cfg, nil)

	tr.Move(200, 0)
	tr.Move(400, 0)
	if tr.Move(600, 0) {
		t.Error("spawn past MaxItems should be dropped")
	}

	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("Len after Clear = %d", tr.Len())
	}
	if tr.Move(100, 100) {
		t.Error("Clear should reset the spawn origin to (0, 0)")
	}
}

func TestPlaceholders(t *testing.T) {
	images := Placeholders(6, 227, 150)
	if len(images) != 6 {
		t.Fatalf("images = %d, want 6", len(images))
	}
	for i, img := range images {
		if b := img.Bounds(); b.Dx() != 227 || b.Dy() != 150 {
			t.Errorf("image %d bounds = %v, want 227x150", i, b)
		}
	}
}

func TestPlaceholdersSmall(t *testing.T) {
	for _, tc := range []struct {
		w, h, wantW, wantH int
	}{
		{8, 8, 8, 8},
		{9, 9, 9, 9},
		{3, 40, 3, 40},
		{0, -5, 1, 1},
	} {
		images := Placeholders(2, tc.w, tc.h)
		if len(images) != 2 {
			t.Fatalf("%dx%d: images = %d, want 2", tc.w, tc.h, len(images))
		}
		if b := images[0].Bounds(); b.Dx() != tc.wantW || b.Dy() != tc.wantH {
			t.Errorf("%dx%d: bounds = %v, want %dx%d", tc.w, tc.h, b, tc.wantW, tc.wantH)
		}
	}
	if n := len(Placeholders(-1, 10, 10)); n != 0 {
		t.Errorf("Placeholders(-1) = %d images, want 0", n)
	}
}

func TestShade(t *testing.T) {
	got := shade(placeholderPalette[0], 0.5)
	if got.A != placeholderPalette[0].A || got.R != placeholderPalette[0].R/2 {
		t.Errorf("shade = %+v", got)
	}
}
