package hoverpick

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: screenshot
    label: initial
  - action: click
    x: -0.5
    y: 0
  - action: wait
    frames: 3
  - action: expect
    hovered: a
`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != -0.5 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 || runner.steps[3].Hovered != "a" {
		t.Error("step 2/3 mismatch")
	}
}

func TestLoadScriptJSON(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "move", "x": 0.25, "y": 0.5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if runner.steps[0].Y != 0.5 {
		t.Errorf("step = %+v", runner.steps[0])
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid", "steps: [unterminated"},
		{"empty", "steps: []"},
		{"unknown action", "steps: [{action: jump}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRunnerDrivesTracker(t *testing.T) {
	tr, rec := newSplitTracker()

	runner, err := LoadScript([]byte(`
steps:
  - {action: screenshot, label: start}
  - {action: click, x: -0.5, y: 0}
  - {action: expect, hovered: a}
  - {action: sweep, fromX: -0.5, fromY: 0, toX: 0.5, toY: 0, frames: 3}
  - {action: wait, frames: 2}
  - {action: expect, hovered: b}
  - {action: move, x: 0, y: 0}
  - {action: expect, hovered: a}
`))
	if err != nil {
		t.Fatal(err)
	}
	var shots []string
	runner.OnScreenshot = func(label string) { shots = append(shots, label) }
	tr.SetScriptRunner(runner)

	for i := 0; i < 50 && !runner.Done(); i++ {
		tr.Update()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}

	if len(shots) != 1 || shots[0] != "start" {
		t.Errorf("screenshots = %v", shots)
	}
	if got := rec.String(); got != "enter:a,select:a,leave:a,enter:b,leave:b" {
		t.Errorf("events = %q", got)
	}
	f := runner.Failures()
	if len(f) != 1 {
		t.Fatalf("failures = %v, want exactly the last expect", f)
	}
}
