// Package ecs provides ECS adapters for cellgrid's pointer events.
//
// [NewDonburiSink] bridges grid events (move, click, right click) into a
// [Donburi] world as typed events. Subscribe to [GridEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	grid.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
