package ecs

import (
	"github.com/phanxgames/raybox"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for raybox interaction
// events. Subscribe to this in your ECS systems to receive scene edits.
var InteractionEventType = events.NewEventType[raybox.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) raybox.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event raybox.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
