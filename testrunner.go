package hoverpick

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	// Hovered is the target name an "expect" step checks for. Empty means
	// nothing hovered.
	Hovered string `yaml:"hovered,omitempty"`
}

type pointerScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected pointer events, screenshots and hover
// expectations across frames. Attach to a Tracker via SetScriptRunner.
type ScriptRunner struct {
	// OnScreenshot is called for "screenshot" steps. Nil ignores them.
	OnScreenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadScript parses a YAML (or JSON) pointer script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script pointerScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click", "sweep", "wait", "screenshot", "expect":
		default:
			return nil, fmt.Errorf("parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called at the start
// of every Update, before injected input is applied.
func (t *Tracker) SetScriptRunner(runner *ScriptRunner) {
	t.runner = runner
}

// Scripted reports whether a script runner is attached and still running.
func (t *Tracker) Scripted() bool {
	return t.runner != nil && !t.runner.done
}

// ScriptFailures returns the attached runner's failures, or nil.
func (t *Tracker) ScriptFailures() []string {
	if t.runner == nil {
		return nil
	}
	return t.runner.failures
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Failures returns the messages of "expect" steps that did not hold.
func (r *ScriptRunner) Failures() []string {
	return r.failures
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(t *Tracker) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if t.Injecting() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		t.InjectMove(st.X, st.Y)
	case "click":
		t.InjectClick(st.X, st.Y)
	case "sweep":
		t.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	case "expect":
		r.check(t, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !t.Injecting() {
		r.done = true
	}
}

func (r *ScriptRunner) check(t *Tracker, st scriptStep) {
	ref, ok := t.Hovered()
	got := ""
	if ok {
		got = ref.Name
	}
	if got != st.Hovered {
		r.failures = append(r.failures, fmt.Sprintf("step %d (frame %d): hovered %q, want %q",
			r.cursor-1, t.frame, got, st.Hovered))
	}
}
