package hoverpick

// syntheticPointerEvent represents a single injected pointer event in
// normalized device coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectMove queues a pointer move to (x, y) in normalized device
// coordinates. The event is applied on the next Update.
func (t *Tracker) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a move to (x, y) together with one press.
func (t *Tracker) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectClick is a convenience that queues a move followed by a press at the
// same position. Consumes two frames, so the press is dispatched against the
// hover computed at (x, y).
func (t *Tracker) InjectClick(x, y float64) {
	t.InjectMove(x, y)
	t.InjectPress(x, y)
}

// InjectSweep queues linearly interpolated moves from (fromX, fromY) to
// (toX, toY), one per frame. Minimum frames is 2 (start and end).
func (t *Tracker) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		f := float64(i) / float64(frames-1)
		t.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
}

// Injecting reports whether synthetic events are waiting. Input adapters
// skip real pointer polling while this is true.
func (t *Tracker) Injecting() bool {
	return len(t.injectQueue) > 0
}

// processInjectedInput pops one event from the inject queue and writes it to
// the pointer state. Returns true if an event was consumed.
func (t *Tracker) processInjectedInput() bool {
	if len(t.injectQueue) == 0 {
		return false
	}
	evt := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	t.pointer.MoveTo(evt.x, evt.y)
	if evt.pressed {
		t.pointer.Press()
	}
	return true
}
