// Package ecs forwards popup lifecycle events into an ECS world.
//
// [NewDonburiSink] publishes every [popup.LifecycleEvent] of a document to a
// [Donburi] world as a typed event. Subscribe to [LifecycleEventType] in your
// systems to react to popups opening, moving and closing.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	doc.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
