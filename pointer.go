package hoverpick

import "sync"

// PointerState holds the latest pointer position in normalized device
// coordinates and the number of presses not yet consumed by a frame.
//
// Input sources may write from any goroutine. The tracker reads it once per
// frame through Snapshot, so a frame never sees a half-applied move.
//
// A pointer that never moved sits at the viewport centre, (0, 0).
type PointerState struct {
	mu      sync.Mutex
	ndc     Vec2
	moved   bool
	presses int
}

// PointerSnapshot is a consistent copy of PointerState taken at frame start.
type PointerSnapshot struct {
	NDC     Vec2
	Moved   bool
	Presses int
}

// NewPointerState returns a pointer resting at the viewport centre.
func NewPointerState() *PointerState {
	return &PointerState{}
}

// MoveTo sets the pointer position in normalized device coordinates.
func (p *PointerState) MoveTo(x, y float64) {
	p.mu.Lock()
	p.ndc = Vec2{X: x, Y: y}
	p.moved = true
	p.mu.Unlock()
}

// MoveToPixels sets the pointer position from pixel coordinates inside a
// viewport of the given size. The origin is top-left with Y growing down.
// A zero-sized viewport is ignored.
func (p *PointerState) MoveToPixels(px, py, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	ndc := PixelsToNDC(px, py, width, height)
	p.MoveTo(ndc.X, ndc.Y)
}

// Press records one discrete pointer press. It is consumed by the next
// Tracker.Update.
func (p *PointerState) Press() {
	p.mu.Lock()
	p.presses++
	p.mu.Unlock()
}

// NDC returns the current pointer position.
func (p *PointerState) NDC() Vec2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ndc
}

// Snapshot returns the current state and drains pending presses.
func (p *PointerState) Snapshot() PointerSnapshot {
	p.mu.Lock()
	snap := PointerSnapshot{NDC: p.ndc, Moved: p.moved, Presses: p.presses}
	p.presses = 0
	p.mu.Unlock()
	return snap
}

// PixelsToNDC converts a pixel position inside a width×height viewport into
// normalized device coordinates.
func PixelsToNDC(px, py, width, height float64) Vec2 {
	return Vec2{
		X: px/width*2 - 1,
		Y: -(py/height)*2 + 1,
	}
}

// NDCToPixels is the inverse of PixelsToNDC.
func NDCToPixels(ndc Vec2, width, height float64) (px, py float64) {
	return (ndc.X + 1) / 2 * width, (1 - ndc.Y) / 2 * height
}
