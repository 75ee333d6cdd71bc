// Package ecs provides ECS adapters for raybox's controller events.
//
// The primary adapter is [NewDonburiStore], which bridges raybox interaction
// events (select, drag, delete, add, rotate) into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	game.Controller.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
