// Package ecs provides ECS adapters for phineas input and collision events.
//
// [NewDonburiStore] bridges phineas input events (pointer, key, wheel) into a
// [Donburi] world as typed events. Subscribe to [InputEventType] in your ECS
// systems to receive them. [PublishCollisions] does the same for the
// collisions found by a collision test, through [CollisionEventType].
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	game.SetEntityStore(store)
//
//	hits := collision.RegisterFunc(game.World(), phineas.BoundsOverlap[*Ball, *Wall]())
//	ecs.PublishCollisions(world, hits)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
