package glowfx

// EventType identifies a kind of show event.
type EventType uint8

const (
	EventLaunch  EventType = iota // a rocket left its start point
	EventExplode                  // a rocket reached its target and burst
)

// ShowEvent describes something that happened during a tick.
type ShowEvent struct {
	Type EventType
	// X and Y are the launch point for EventLaunch and the burst point for
	// EventExplode.
	X, Y float64
	// Hue is the base hue at the time of the event, in degrees.
	Hue float64
	// Count is the number of particles created by an EventExplode.
	Count int
}

// EventSink receives show events synchronously from Engine.Tick.
// The ecs module provides a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event ShowEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(event ShowEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event ShowEvent) { f(event) }
