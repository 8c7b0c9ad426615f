package hoverpick

import "testing"

func TestNewTargetUniqueIDs(t *testing.T) {
	a := NewTarget("a", nil)
	b := NewTarget("a", nil)
	if a.ID == 0 || a.ID == b.ID {
		t.Errorf("ids = %d, %d; want distinct non-zero", a.ID, b.ID)
	}
	if a.Ref().IsZero() {
		t.Error("ref of a registered target should not be zero")
	}
	if !(TargetRef{}).IsZero() {
		t.Error("empty ref should be zero")
	}
}

func TestTargetSet(t *testing.T) {
	a := NewTarget("a", nil)
	b := NewTarget("b", nil)
	c := NewTarget("c", nil)
	s := NewTargetSet(a, b, nil, a, c)

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.ByName("b") != b || s.ByName("zzz") != nil {
		t.Error("ByName mismatch")
	}

	if !s.Remove(b) {
		t.Error("Remove(b) = false")
	}
	if s.Remove(b) {
		t.Error("second Remove(b) = true")
	}
	got := s.Targets()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("order after remove = %v", got)
	}
	if s.Contains(b) {
		t.Error("b still contained")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
}

func TestHexColor(t *testing.T) {
	c := HexColor(0xff6600)
	if c.R != 1 || c.G != 0.4 || c.B != 0 || c.A != 1 {
		t.Errorf("HexColor(0xff6600) = %+v", c)
	}
}

func TestEventTypeString(t *testing.T) {
	for e, want := range map[EventType]string{
		EventEnter: "enter", EventLeave: "leave", EventSelect: "select", EventType(9): "unknown",
	} {
		if e.String() != want {
			t.Errorf("%d.String() = %q, want %q", e, e.String(), want)
		}
	}
}
