package hoverpick

// Vec2 is a 2D vector. Pointer positions use it in normalized device
// coordinates, where both axes run from -1 to 1 and +Y is up.
type Vec2 struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral color.
var ColorWhite = Color{1, 1, 1, 1}

// HexColor builds an opaque Color from a 0xRRGGBB value.
func HexColor(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// EventType identifies a kind of tracker event.
type EventType uint8

const (
	EventEnter  EventType = iota // pointer started hovering a target
	EventLeave                   // pointer stopped hovering a target
	EventSelect                  // discrete click while a target is hovered
)

// String returns the lowercase name of the event type.
func (e EventType) String() string {
	switch e {
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventSelect:
		return "select"
	default:
		return "unknown"
	}
}

// TargetRef is the identity of a target captured by value. The hover slot
// holds one of these, so a leave can still name a target that has since been
// removed from its TargetSet.
type TargetRef struct {
	ID       uint32
	Name     string
	EntityID uint32
	UserData any
}

// IsZero reports whether r refers to no target.
func (r TargetRef) IsZero() bool {
	return r.ID == 0
}
