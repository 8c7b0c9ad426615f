package hoverpick

import (
	"io"
	"os"
)

// HoverContext carries enter and leave event data.
type HoverContext struct {
	Target  TargetRef
	Node    *Target
	Pointer Vec2
	// Distance and Point describe the nearest hit on enter. They are zero on leave.
	Distance float64
	Point    Vec3
	Frame    uint64
}

// SelectContext carries selection event data.
type SelectContext struct {
	Target  TargetRef
	Node    *Target
	Pointer Vec2
	Frame   uint64
}

// EntityStore is the interface for optional ECS integration.
// When set on a Tracker, every enter, leave and select is forwarded to it.
type EntityStore interface {
	EmitEvent(event PickEvent)
}

// PickEvent carries tracker events for the ECS bridge.
type PickEvent struct {
	Type     EventType
	TargetID uint32
	Name     string
	EntityID uint32
	PointerX float64
	PointerY float64
	Distance float64
	Frame    uint64
}

// --- Handler registry ---

type hoverHandler struct {
	id uint32
	fn func(HoverContext)
}

type selectHandler struct {
	id uint32
	fn func(SelectContext)
}

type handlerRegistry struct {
	enter  []hoverHandler
	leave  []hoverHandler
	sel    []selectHandler
	nextID uint32
}

// CallbackHandle allows removing a registered tracker-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventEnter:
		h.reg.enter = removeHoverHandler(h.reg.enter, h.id)
	case EventLeave:
		h.reg.leave = removeHoverHandler(h.reg.leave, h.id)
	case EventSelect:
		h.reg.sel = removeSelectHandler(h.reg.sel, h.id)
	}
}

// The remove helpers build a new slice so a dispatch loop already ranging
// over the old one is unaffected when a handler removes itself.
func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			out := make([]hoverHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func removeSelectHandler(s []selectHandler, id uint32) []selectHandler {
	for i := range s {
		if s[i].id == id {
			out := make([]selectHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// --- Hover slot ---

// hoverSlot holds at most one hovered target. ref is captured on enter and
// is what leave reports, even if the target is gone from the set by then.
type hoverSlot struct {
	active bool
	ref    TargetRef
	target *Target
}

// --- Tracker ---

// Tracker turns pointer positions into hover transitions and clicks into
// selections against a set of targets.
//
// All methods except those on Pointer() must be called from the frame
// goroutine.
type Tracker struct {
	caster  RayCaster
	targets *TargetSet
	pointer *PointerState

	hover    hoverSlot
	handlers handlerRegistry
	store    EntityStore

	frame uint64
	stats Stats

	debug  bool
	logOut io.Writer

	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner
}

// NewTracker creates a tracker that queries caster against targets.
// A nil targets set is replaced with an empty one.
func NewTracker(caster RayCaster, targets *TargetSet) *Tracker {
	if targets == nil {
		targets = NewTargetSet()
	}
	return &Tracker{
		caster:  caster,
		targets: targets,
		pointer: NewPointerState(),
		logOut:  os.Stderr,
	}
}

// Pointer returns the pointer state input sources write to.
func (t *Tracker) Pointer() *PointerState {
	return t.pointer
}

// Targets returns the target set the tracker queries.
func (t *Tracker) Targets() *TargetSet {
	return t.targets
}

// SetCaster replaces the ray query used from the next Update on.
func (t *Tracker) SetCaster(caster RayCaster) {
	t.caster = caster
}

// SetEntityStore sets the optional ECS bridge.
func (t *Tracker) SetEntityStore(store EntityStore) {
	t.store = store
}

// Hovered returns the identity held in the hover slot.
func (t *Tracker) Hovered() (TargetRef, bool) {
	return t.hover.ref, t.hover.active
}

// Frame returns the number of Update calls so far.
func (t *Tracker) Frame() uint64 {
	return t.frame
}

// --- Registration ---

// OnEnter registers a callback fired when a target becomes hovered.
func (t *Tracker) OnEnter(fn func(HoverContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.enter = append(t.handlers.enter, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventEnter}
}

// OnLeave registers a callback fired when a hovered target stops being hovered.
// On a direct swap from A to B, leave(A) always fires before enter(B).
func (t *Tracker) OnLeave(fn func(HoverContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.leave = append(t.handlers.leave, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventLeave}
}

// OnSelect registers a callback fired for each click while a target is hovered.
func (t *Tracker) OnSelect(fn func(SelectContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.sel = append(t.handlers.sel, selectHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventSelect}
}

// --- Frame update ---

// Update runs one frame: it snapshots the pointer, dispatches pending clicks
// against the hover slot left by the previous frame, casts one ray and
// applies enter/leave edge detection to the nearest hit.
func (t *Tracker) Update() {
	t.frame++

	if t.runner != nil {
		t.runner.step(t)
	}
	t.processInjectedInput()

	snap := t.pointer.Snapshot()

	for i := 0; i < snap.Presses; i++ {
		t.selectAt(snap.NDC)
	}

	var hits []Hit
	if t.caster != nil {
		hits = t.caster.CastRay(snap.NDC, t.targets.Targets())
	}
	t.stats.Casts++

	if len(hits) > 0 {
		nearest := hits[0]
		t.updateHover(&nearest, snap.NDC)
	} else {
		t.updateHover(nil, snap.NDC)
	}

	t.stats.Frames++
}

// updateHover applies the edge-triggered transition for this frame's nearest hit.
func (t *Tracker) updateHover(nearest *Hit, ndc Vec2) {
	switch {
	case nearest == nil || nearest.Target == nil:
		if t.hover.active {
			t.leave(ndc)
		}
	case !t.hover.active:
		t.enter(nearest, ndc)
	case nearest.Target.ID == t.hover.ref.ID:
		// Steady hover: no transition.
	default:
		t.leave(ndc)
		t.enter(nearest, ndc)
	}
}

// Select dispatches a selection for the currently hovered target, if any.
// It reads the hover slot as last computed by Update and casts no ray.
// It reports whether a selection was dispatched.
func (t *Tracker) Select() bool {
	return t.selectAt(t.pointer.NDC())
}

func (t *Tracker) selectAt(ndc Vec2) bool {
	if !t.hover.active {
		t.stats.EmptyClicks++
		return false
	}

	ctx := SelectContext{
		Target:  t.hover.ref,
		Node:    t.hover.target,
		Pointer: ndc,
		Frame:   t.frame,
	}
	t.stats.Selects++
	t.debugTransition(EventSelect, ctx.Target, 0)

	for _, h := range t.handlers.sel {
		h.fn(ctx)
	}
	if ctx.Node != nil && ctx.Node.OnSelect != nil {
		ctx.Node.OnSelect(ctx)
	}
	t.emitPickEvent(EventSelect, ctx.Target, ndc, 0)
	return true
}

func (t *Tracker) enter(hit *Hit, ndc Vec2) {
	target := hit.Target
	if target.ID == 0 {
		target.ID = nextTargetID()
	}
	t.hover = hoverSlot{active: true, ref: target.Ref(), target: target}

	ctx := HoverContext{
		Target:   t.hover.ref,
		Node:     target,
		Pointer:  ndc,
		Distance: hit.Distance,
		Point:    hit.Point,
		Frame:    t.frame,
	}
	t.stats.Enters++
	t.debugTransition(EventEnter, ctx.Target, hit.Distance)

	for _, h := range t.handlers.enter {
		h.fn(ctx)
	}
	if target.OnEnter != nil {
		target.OnEnter(ctx)
	}
	t.emitPickEvent(EventEnter, ctx.Target, ndc, hit.Distance)
}

func (t *Tracker) leave(ndc Vec2) {
	old := t.hover
	t.hover = hoverSlot{}

	ctx := HoverContext{
		Target:  old.ref,
		Node:    old.target,
		Pointer: ndc,
		Frame:   t.frame,
	}
	t.stats.Leaves++
	t.debugTransition(EventLeave, ctx.Target, 0)

	for _, h := range t.handlers.leave {
		h.fn(ctx)
	}
	if old.target != nil && old.target.OnLeave != nil {
		old.target.OnLeave(ctx)
	}
	t.emitPickEvent(EventLeave, ctx.Target, ndc, 0)
}

// --- ECS bridge ---

func (t *Tracker) emitPickEvent(eventType EventType, ref TargetRef, ndc Vec2, distance float64) {
	if t.store == nil {
		return
	}
	t.store.EmitEvent(PickEvent{
		Type:     eventType,
		TargetID: ref.ID,
		Name:     ref.Name,
		EntityID: ref.EntityID,
		PointerX: ndc.X,
		PointerY: ndc.Y,
		Distance: distance,
		Frame:    t.frame,
	})
}
