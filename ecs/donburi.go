package ecs

import (
	"github.com/phanxgames/popup"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for popup lifecycle events.
var LifecycleEventType = events.NewEventType[popup.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on LifecycleEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) popup.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event popup.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
