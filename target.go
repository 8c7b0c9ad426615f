package hoverpick

// targetIDCounter is not atomic; targets are created on the frame goroutine.
var targetIDCounter uint32

func nextTargetID() uint32 {
	targetIDCounter++
	return targetIDCounter
}

// Target is a pickable entity. Its identity is ID, assigned once by
// NewTarget and never reused.
type Target struct {
	ID   uint32
	Name string

	// Shape is tested by ShapeCaster. Custom RayCaster implementations may
	// ignore it.
	Shape Shape

	// Metadata
	UserData any
	EntityID uint32

	// Per-target reactions, fired after the tracker-level handlers.
	OnEnter  func(HoverContext)
	OnLeave  func(HoverContext)
	OnSelect func(SelectContext)
}

// NewTarget creates a target with a fresh identity.
func NewTarget(name string, shape Shape) *Target {
	return &Target{
		ID:    nextTargetID(),
		Name:  name,
		Shape: shape,
	}
}

// Ref captures the target's identity by value.
func (t *Target) Ref() TargetRef {
	return TargetRef{
		ID:       t.ID,
		Name:     t.Name,
		EntityID: t.EntityID,
		UserData: t.UserData,
	}
}

// TargetSet is an ordered collection of targets. Registration order breaks
// ties between hits at equal distance.
type TargetSet struct {
	targets []*Target
}

// NewTargetSet creates a set holding the given targets in order.
func NewTargetSet(targets ...*Target) *TargetSet {
	s := &TargetSet{}
	for _, t := range targets {
		s.Add(t)
	}
	return s
}

// Add appends t to the set. Adding a nil target or one already present is a
// no-op.
func (s *TargetSet) Add(t *Target) {
	if t == nil || s.Contains(t) {
		return
	}
	s.targets = append(s.targets, t)
}

// Remove deletes t from the set, keeping the order of the others. It reports
// whether t was present.
func (s *TargetSet) Remove(t *Target) bool {
	for i, c := range s.targets {
		if c == t {
			copy(s.targets[i:], s.targets[i+1:])
			s.targets[len(s.targets)-1] = nil
			s.targets = s.targets[:len(s.targets)-1]
			return true
		}
	}
	return false
}

// Contains reports whether t is registered.
func (s *TargetSet) Contains(t *Target) bool {
	for _, c := range s.targets {
		if c == t {
			return true
		}
	}
	return false
}

// ByName returns the first registered target with the given name.
func (s *TargetSet) ByName(name string) *Target {
	for _, t := range s.targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Clear removes every target.
func (s *TargetSet) Clear() {
	for i := range s.targets {
		s.targets[i] = nil
	}
	s.targets = s.targets[:0]
}

// Len returns the number of registered targets.
func (s *TargetSet) Len() int {
	return len(s.targets)
}

// Targets returns the registered targets in order. The returned slice MUST NOT be mutated.
func (s *TargetSet) Targets() []*Target {
	return s.targets
}
