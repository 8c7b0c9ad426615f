package fx

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimatorPlayReplacesSameKey(t *testing.T) {
	a := NewAnimator()
	v := 1.0

	enter := TweenFloat(&v, 1.7, 0.5, ease.OutCubic)
	a.Play("scale", enter)
	a.Update(0.1)
	mid := v

	// Leave starts from wherever enter got to.
	leave := TweenFloat(&v, 1, 0.6, ease.OutCubic)
	a.Play("scale", leave)

	if !enter.Done {
		t.Error("replaced group should be stopped")
	}
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want 1", a.Len())
	}

	a.Update(0.01)
	if v > mid {
		t.Errorf("value moved up to %f after leave replaced enter (mid %f)", v, mid)
	}
	for i := 0; i < 10; i++ {
		a.Update(0.1)
	}
	if v != 1 {
		t.Errorf("v = %f, want 1", v)
	}
	if a.Len() != 0 || a.Running("scale") {
		t.Error("finished group should be dropped")
	}
}

func TestAnimatorIndependentKeys(t *testing.T) {
	a := NewAnimator()
	x, y := 0.0, 0.0
	a.Play("x", TweenFloat(&x, 1, 1, ease.Linear))
	a.Play("y", TweenFloat(&y, 1, 2, ease.Linear))

	a.Update(1)
	if a.Len() != 1 || a.Running("x") || !a.Running("y") {
		t.Errorf("after 1s: Len=%d x=%v y=%v", a.Len(), a.Running("x"), a.Running("y"))
	}
	if x != 1 || y != 0.5 {
		t.Errorf("x=%f y=%f", x, y)
	}
}

func TestAnimatorStop(t *testing.T) {
	a := NewAnimator()
	v := 0.0
	g := TweenFloat(&v, 1, 1, ease.Linear)
	a.Play("v", g)
	a.Stop("v")
	a.Stop("missing")
	a.Update(1)

	if v != 0 || !g.Done || a.Len() != 0 {
		t.Errorf("v=%f done=%v len=%d", v, g.Done, a.Len())
	}
}

func TestAnimatorChainFromOnComplete(t *testing.T) {
	a := NewAnimator()
	alpha := 0.0
	in := TweenFloat(&alpha, 1, 1, ease.Linear)
	in.OnComplete = func() {
		a.Play("alpha", TweenFloat(&alpha, 0, 1, ease.Linear))
	}
	a.Play("alpha", in)

	a.Update(1)
	if !a.Running("alpha") {
		t.Fatal("chained group should be running")
	}
	a.Update(1)
	if alpha != 0 || a.Len() != 0 {
		t.Errorf("alpha=%f len=%d", alpha, a.Len())
	}
}

func TestAnimatorIgnoresNil(t *testing.T) {
	a := NewAnimator()
	a.Play("x", nil)
	if a.Len() != 0 {
		t.Error("nil group should be ignored")
	}
}
