// Package sidescroll is a tile-map side-scrolling engine for [Ebitengine].
//
// A [World] is built from a CMF map file: a fixed binary header naming a
// background and a tileset texture, followed by one byte per 16x16 tile.
// Entities described in XML carry animated [Sprite]s and are updated, fed
// input and drawn by the world every frame.
//
// # Quick start
//
// Resources live under one directory laid out as Cmfs/<name>.cmf,
// Entities/<name>.xml and Textures/<name>.bmp (or .png):
//
//	ctx := sidescroll.NewEngineContext(sidescroll.NewDirStore("data"), nil, log)
//	world, err := sidescroll.CreateWorld(ctx, "level1")
//	// ...
//	hiro, err := sidescroll.NewCharacter(ctx, "hiro")
//	// ...
//	world.AddEntity(hiro)
//	world.Camera().Follow(hiro, 16, 16, 0.15)
//
//	game := sidescroll.NewGame(ctx, world)
//	err = sidescroll.Run(game, sidescroll.RunConfig{Title: "level1"})
//
// # Frames
//
// Each [Game.Update] measures the milliseconds since the previous one with a
// [FrameTimer], delivers the frame's key events to every entity, then
// updates the camera and the entities by that delta and detects sprite
// collisions. [Game.Draw] renders the background with half-speed parallax,
// the tiles inside the viewport and the entities, in that order.
//
// Collisions can be forwarded to an ECS through an [EventSink]; see the ecs
// subpackage for a [Donburi] adapter.
//
// # Maps
//
// [MapDocument] loads, edits and saves CMF files. The cmd/cmftool command
// exposes the same operations on the command line.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sidescroll
