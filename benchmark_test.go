package sapling

import (
	"math/rand/v2"
	"testing"
)

// setupBenchTree builds a tree of n nodes scattered over a square, chained
// as children so parent/child bookkeeping is exercised too.
func setupBenchTree(n int, rng *rand.Rand) *Tree {
	tree := NewTree(Vec2{}, 1)
	for i := 1; i < n; i++ {
		pos := Vec2{
			X: (rng.Float64()*2 - 1) * 200,
			Y: (rng.Float64()*2 - 1) * 200,
		}
		tree.AddChild(NodeID(rng.IntN(tree.Len())), pos, 1)
	}
	return tree
}

func BenchmarkKthNearestNode_1000Nodes(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	tree := setupBenchTree(1000, rng)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tree.KthNearestNode(Vec2{X: float64(i % 100), Y: 50}, 3)
	}
}

func BenchmarkAttract_1000Attractors_1000Nodes(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	tree := setupBenchTree(1000, rng)
	set := RandomInRect(Vec2{}, Vec2{200, 200}, 1000, rng)
	cfg := DefaultConfig()
	buf := NewInfluenceBuffer(tree.Len())

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Attract(tree, set, cfg, buf)
	}
}

func BenchmarkStep_GrowingTree(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	sim := NewSimulation(DefaultConfig())
	sim.Attractors.Extend(RandomInOval(Vec2{0, 120}, Vec2{100, 100}, 2000, rng))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sim.Step()
	}
}
