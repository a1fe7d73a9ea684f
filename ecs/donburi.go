package ecs

import (
	"github.com/phanxgames/sidescroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for sprite collisions.
var CollisionEventType = events.NewEventType[sidescroll.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Collisions are published to CollisionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sidescroll.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event sidescroll.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
