// Package ecs provides ECS adapters for running sapling simulations
// inside a [Donburi] world.
//
// Attach a simulation to an entity with [SimulationComponent] and advance
// every simulation entity once per tick with [StepSimulations]. Steps that
// create nodes publish a [GrowthEvent]; subscribe to [GrowthEventType] in
// your systems to react to new branches (spawn sprites, play sounds, ...).
//
// Usage:
//
//	entity := world.Create(ecs.SimulationComponent)
//	ecs.SimulationComponent.SetValue(world.Entry(entity), ecs.SimulationData{
//		Sim: sapling.NewSimulation(sapling.DefaultConfig()),
//	})
//
//	ecs.GrowthEventType.Subscribe(world, onGrowth)
//	// each tick:
//	ecs.StepSimulations(world)
//	ecs.GrowthEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
