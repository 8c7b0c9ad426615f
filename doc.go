// Package hoverpick tracks which 3D object is under the pointer and turns
// pointer movement and clicks into enter, leave and select events.
//
// The root package has no rendering dependency. A [Tracker] owns a
// [PointerState] that input sources write to, a [RayCaster] that answers
// "what does a ray through this pointer position hit", and a [TargetSet] of
// pickable objects. Call [Tracker.Update] once per frame:
//
//	cam := hoverpick.NewPerspectiveCamera(45, 800.0/600.0, 0.1, 100)
//	sphere := hoverpick.NewTarget("esfera", hoverpick.Sphere{Radius: 0.5})
//	tracker := hoverpick.NewTracker(hoverpick.NewShapeCaster(cam), hoverpick.NewTargetSet(sphere))
//
//	tracker.OnEnter(func(ctx hoverpick.HoverContext) { /* tint */ })
//	tracker.OnLeave(func(ctx hoverpick.HoverContext) { /* restore */ })
//	tracker.OnSelect(func(ctx hoverpick.SelectContext) { /* react */ })
//
//	// per frame
//	tracker.Pointer().MoveToPixels(px, py, 800, 600)
//	tracker.Update()
//
// # Events
//
// Hover is edge triggered: enter fires once when the nearest hit changes to a
// target, leave fires once when it changes away. When the pointer moves
// straight from one target to another, leave always fires before enter, in
// the same frame. A click queued with [PointerState.Press] is dispatched at
// the start of the next Update against the target hovered at the end of the
// previous one. Clicks on nothing are dropped.
//
// Handlers registered on the tracker run first, then the target's own
// OnEnter/OnLeave/OnSelect, then the optional [EntityStore] (see the ecs
// subpackage for a Donburi adapter).
//
// # Automation
//
// [Tracker.InjectClick], [Tracker.InjectSweep] and YAML scripts loaded with
// [LoadScript] drive the pointer without a window, for tests and scripted
// screenshots.
//
// # Subpackages
//
// scene bootstraps an Ebitengine window around a Tracker, with wireframe
// meshes, tweens from fx and rigid bodies from physics. config loads the
// per-exercise YAML settings. trail is the pointer image trail effect.
package hoverpick
