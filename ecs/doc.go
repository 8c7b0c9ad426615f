// Package ecs provides ECS adapters for hoverpick's tracker events.
//
// The primary adapter is [NewDonburiStore], which bridges tracker events
// (enter, leave, select) into a [Donburi] world as typed events.
// Subscribe to [PickEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	tracker.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
