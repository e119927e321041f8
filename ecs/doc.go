// Package ecs provides ECS adapters for glowfx show events.
//
// The primary adapter is [NewDonburiSink], which bridges fireworks launches
// and explosions into a [Donburi] world as typed events. Subscribe to
// [ShowEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	show.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
