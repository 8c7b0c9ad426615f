package fx

import (
	"reflect"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestEase(t *testing.T) {
	tests := []struct {
		name string
		want ease.TweenFunc
		ok   bool
	}{
		{"none", ease.Linear, true},
		{"power1.out", ease.OutQuad, true},
		{"power2.out", ease.OutCubic, true},
		{"power2.inOut", ease.InOutCubic, true},
		{"power3.out", ease.OutQuart, true},
		{"power4.in", ease.InQuint, true},
		{"power2", ease.OutCubic, true},
		{" Sine.InOut ", ease.InOutSine, true},
		{"bounce.out", ease.OutBounce, true},
		{"power2.sideways", ease.Linear, false},
		{"wobble.out", ease.Linear, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Ease(tt.name)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if reflect.ValueOf(got).Pointer() != reflect.ValueOf(tt.want).Pointer() {
				t.Errorf("Ease(%q) returned the wrong function", tt.name)
			}
		})
	}
}

func TestMustEasePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustEase("nope")
}
