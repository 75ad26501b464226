package ecs

import (
	"github.com/JH12333/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SimulationData is the component payload holding a growth simulation.
type SimulationData struct {
	Sim *sapling.Simulation
}

// SimulationComponent stores a SimulationData on an entity.
var SimulationComponent = donburi.NewComponentType[SimulationData]()

// GrowthEvent reports the nodes a simulation entity created during one
// step. Published by StepSimulations; consume with GrowthEventType.
type GrowthEvent struct {
	Entity   donburi.Entity
	NewNodes []sapling.NodeID
}

// GrowthEventType is the Donburi event type for growth events.
var GrowthEventType = events.NewEventType[GrowthEvent]()

// StepSimulations advances every simulation entity by one step and
// publishes a GrowthEvent for each step that created nodes. Events are
// queued; call GrowthEventType.ProcessEvents (or events.ProcessAllEvents)
// to deliver them.
func StepSimulations(world donburi.World) {
	SimulationComponent.Each(world, func(entry *donburi.Entry) {
		data := SimulationComponent.Get(entry)
		if data.Sim == nil {
			return
		}
		newIDs := data.Sim.Step()
		if len(newIDs) > 0 {
			GrowthEventType.Publish(world, GrowthEvent{
				Entity:   entry.Entity(),
				NewNodes: newIDs,
			})
		}
	})
}
