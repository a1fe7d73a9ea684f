// Package ecs provides ECS adapters for sidescroll worlds.
//
// The primary adapter is [NewDonburiSink], which publishes the collisions a
// [sidescroll.World] detects each update into a [Donburi] world as typed
// events. Subscribe to [CollisionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	world.SetEventSink(ecs.NewDonburiSink(ecsWorld))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
