package ecs

import (
	"github.com/phanxgames/glowfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShowEventType is the Donburi event type for fireworks show events.
// Subscribe to this in your ECS systems to receive launches and explosions.
var ShowEventType = events.NewEventType[glowfx.ShowEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Show events
// are published to ShowEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) glowfx.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event glowfx.ShowEvent) {
	ShowEventType.Publish(s.world, event)
}
