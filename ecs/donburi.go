package ecs

import (
	"github.com/phanxgames/hoverpick"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PickEventType is the Donburi event type for tracker events.
var PickEventType = events.NewEventType[hoverpick.PickEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on PickEventType; consumers drain them with
// ProcessEvents once per frame.
func NewDonburiStore(world donburi.World) hoverpick.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event hoverpick.PickEvent) {
	PickEventType.Publish(s.world, event)
}
