// Package phineas is a small 2D game engine core for [Ebitengine].
//
// Phineas keeps track of every live entity, draws them in depth order, feeds
// them input and step events, and tells interested parties when entities of
// two given types collide.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	game := phineas.NewGame(phineas.DefaultConfig(), nil)
//	game.AddEntity(phineas.NewBox(10, 10, 80, 40, phineas.ColorWhite))
//	if err := phineas.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// # Entities and capabilities
//
// An entity is any value; what the engine does with it depends on which
// capability interfaces it implements: [Drawable], [StepListener],
// [KeyListener], [HoverListener], [ClickListener], [GlobalClickListener],
// [GlobalMoveListener] and [ScrollListener]. A [Compound] entity contributes
// its components as well.
//
// [Game.AddEntity] and [Game.RemoveEntity] are staged: they take effect at
// the start of the next tick, removals first. That makes them safe to call
// from inside any listener. The [Registry] can also be changed directly, and
// [Registry.Apply] groups several changes into one atomic update.
//
// # Built-in entities
//
// [Box], [Line] and [Text] are ready-made drawables that also implement
// [Boundable] and [Placeable]. A [MoveableLayer] moves a group of Placeables
// together, and a [CompoundDrawable] draws several drawables as one.
// [FPSOverlay] and [Tween] cover debugging and simple animation.
//
// # Depth
//
// Drawables with a higher [Drawable.Depth] are drawn first, so lower depths
// appear on top. Drawables with equal depth are drawn in the order they were
// added. Depth is read when a drawable is added; call [Registry.Redepth]
// after changing it.
//
// # Collisions
//
// Collision tests live in the collision subpackage and are registered with
// the game's [collision.World]. Built-in strategies [BoundsOverlap] and
// [CirclesOverlap] cover the common cases:
//
//	collision.RegisterFunc(game.World(), phineas.BoundsOverlap[*Ball, *Wall](),
//		func(b *Ball, w *Wall) { b.Bounce(w) })
//	game.SetBroadphase(func() []any { return candidates })
//
// Input and collision events can be mirrored into a [Donburi] world with the
// ecs subpackage.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package phineas
