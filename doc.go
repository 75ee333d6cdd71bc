// Package raybox is an interactive 2D light-ray sandbox for [Ebitengine].
//
// A [Scene] holds point light sources and obstacles. Obstacles are either
// segment mirrors or discs, and each is reflective or absorptive. Every frame
// each source emits a fan of rays; a [Tracer] follows each ray through the
// scene, reflecting off mirrors and discs until it is absorbed, runs out of
// length, or exceeds the bounce limit.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := raybox.NewScene()
//	scene.Reset(1280, 720)
//	raybox.Run(scene, raybox.RunConfig{
//		Title: "Raybox", Width: 1280, Height: 720,
//	})
//
// For full control, build a [Game] with [NewGame] and pass it to
// [ebiten.RunGame] yourself.
//
// # Tracing
//
// The tracer is usable without a window. [NewRayPath] returns a lazy cursor
// over one ray's path:
//
//	p := raybox.NewRayPath(scene, raybox.RayFromAngle(origin, 0), cfg)
//	for p.Next() {
//		seg := p.Segment()
//		// seg.Start, seg.End, seg.Bounce, seg.Reason
//	}
//
// [Tracer.TraceScene] fans rays out of every source according to a
// [TraceConfig] and appends all path segments to a reusable slice.
//
// # Editing
//
// A [Controller] turns pointer and keyboard commands into scene edits:
// select, drag with a preserved grab offset, delete, rotate, and toggle
// material. [Game] feeds it from the mouse and from injected input (see
// [Game.InjectClick] and [LoadTestScript]).
//
// # ECS integration
//
// Set an [EntityStore] on the controller to receive [InteractionEvent]
// values. The ecs subpackage provides a Donburi-backed store.
//
// [Ebitengine]: https://ebitengine.org
package raybox
