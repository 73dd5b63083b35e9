package ecs

import (
	"github.com/phanxgames/phineas"
	"github.com/phanxgames/phineas/collision"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for phineas input events.
// Subscribe to this in your ECS systems to receive pointer, key and wheel
// events.
var InputEventType = events.NewEventType[phineas.InputEvent]()

// CollisionEvent reports one collision found by a collision.World. First
// and Second are ordered as Pair declares them.
type CollisionEvent struct {
	First, Second any
	Pair          collision.TypePair
}

// CollisionEventType is the Donburi event type for collisions published by
// PublishCollisions.
var CollisionEventType = events.NewEventType[CollisionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Input events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) phineas.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event phineas.InputEvent) {
	InputEventType.Publish(s.world, event)
}

// PublishCollisions attaches a listener to test that publishes every
// collision it hears about to CollisionEventType in world. Remove the
// returned handle to stop publishing.
func PublishCollisions[A, B any](world donburi.World, test *collision.Test[A, B]) collision.Handle {
	pair := test.Pair()
	return test.Attach(func(first A, second B) {
		CollisionEventType.Publish(world, CollisionEvent{First: first, Second: second, Pair: pair})
	})
}
