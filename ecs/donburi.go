package ecs

import (
	"github.com/phanxgames/cellgrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GridEventType is the Donburi event type for cellgrid events.
var GridEventType = events.NewEventType[cellgrid.Event]()

type donburiSink struct {
	world  donburi.World
	filter func(cellgrid.Event) bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to GridEventType and consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) cellgrid.EventSink {
	return &donburiSink{world: world}
}

// NewFilteredDonburiSink is like NewDonburiSink but only publishes events
// accepted by keep, for example to drop the stream of move events.
func NewFilteredDonburiSink(world donburi.World, keep func(cellgrid.Event) bool) cellgrid.EventSink {
	return &donburiSink{world: world, filter: keep}
}

func (s *donburiSink) EmitEvent(event cellgrid.Event) {
	if s.filter != nil && !s.filter(event) {
		return
	}
	GridEventType.Publish(s.world, event)
}
