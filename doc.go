// Package sapling implements a 2D space-colonization growth simulation.
//
// A branching structure (the [Tree]) expands toward a cloud of target
// points (the [AttractorSet]): each step, alive attractors pull on a
// nearby branch node, the pulls are averaged per node in an
// [InfluenceBuffer], nodes sprout children toward the averaged
// direction, and attractors that end up close enough to the structure
// are consumed.
//
// # Quick start
//
// The simplest way to run a simulation is [Simulation], which owns the
// tree, the attractors, and the scratch buffer for you:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	sim := sapling.NewSimulation(sapling.DefaultConfig())
//	sim.Attractors.Extend(sapling.RandomInOval(
//		sapling.Vec2{Y: 120}, sapling.Vec2{X: 100, Y: 100}, 1000, rng))
//	for range 200 {
//		sim.Step()
//	}
//
// For full control, own the pieces yourself and call the three phases
// in order once per tick:
//
//	tree := sapling.NewTree(sapling.Vec2{}, 1)
//	set := sapling.RandomInRect(sapling.Vec2{}, sapling.Vec2{X: 200, Y: 200}, 5000, rng)
//	buf := sapling.NewInfluenceBuffer(tree.Len())
//	cfg := sapling.DefaultConfig()
//
//	sapling.Attract(tree, set, cfg, buf)
//	newIDs := sapling.Grow(tree, buf, cfg)
//	sapling.Kill(tree, set, cfg)
//
// # Phase pipeline
//
// [Attract] rebuilds the influence buffer from the alive attractors and
// records which node each attractor currently pulls on. [Grow] turns the
// averaged pull directions (plus a constant [Config.Tropism] bias) into
// new child nodes. [Kill] marks attractors within the kill radius as
// consumed. The phases are stateless functions; the fixed order matters
// because growth reads the buffer attraction just built, and the kill
// check runs against the post-growth tree.
//
// The core is deterministic: randomness only enters through the
// attractor generators ([RandomInRect], [RandomInOval]), which take an
// explicit rand source.
//
// # Integration
//
// The sapling/ecs submodule adapts simulations to [Donburi] worlds, and
// demos/viewer is an interactive [Ebitengine] playground with pan/zoom,
// spawn tools, and YAML presets.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sapling
