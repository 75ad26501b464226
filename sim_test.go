package sapling

import "testing"

func TestStepRunsAllThreePhases(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	sim.Config.InfluenceRadius = 20
	sim.Config.KillRadius = 1 // too small to kill the attractor below
	sim.Config.StepLen = 2
	sim.Config.Tropism = Vec2{}
	sim.Attractors.Extend(AttractorsFromPositions([]Vec2{{10, 0}}))

	newIDs := sim.Step()

	if len(newIDs) != 1 || newIDs[0] != 1 {
		t.Fatalf("new ids = %v, want [1]", newIDs)
	}
	assertVec2(t, "child pos", sim.Tree.Nodes[1].Pos, Vec2{2, 0})
	if !sim.Attractors.Points[0].Alive {
		t.Error("attractor killed despite tiny kill radius")
	}
	if sim.Attractors.Points[0].Owner == nil {
		t.Error("attractor has no owner after attraction")
	}
	if sim.StepCount() != 1 {
		t.Errorf("StepCount() = %d, want 1", sim.StepCount())
	}
}

func TestStepKillsReachedAttractors(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	sim.Config.InfluenceRadius = 20
	sim.Config.KillRadius = 5
	sim.Config.StepLen = 2
	sim.Config.Tropism = Vec2{}
	sim.Attractors.Extend(AttractorsFromPositions([]Vec2{{4, 0}}))

	// Step 1 grows toward the attractor; kill runs against the post-growth
	// tree, so the new node at (2, 0) is within range.
	sim.Step()
	if sim.Attractors.Points[0].Alive {
		t.Error("attractor should be consumed after growth brings a node close")
	}
}

func TestResetRestoresSingleRoot(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	sim.Attractors.Extend(AttractorsFromPositions([]Vec2{{10, 0}}))
	sim.Tree.AddFreeNode(Vec2{5, 5}, 1)
	sim.Step()

	sim.Reset()

	if sim.Tree.Len() != 1 {
		t.Errorf("tree len = %d, want 1", sim.Tree.Len())
	}
	if sim.Tree.Nodes[0].Parent != nil {
		t.Error("root has a parent after reset")
	}
	if sim.Attractors.Len() != 0 {
		t.Errorf("attractors = %d, want 0", sim.Attractors.Len())
	}
	if sim.Buffer().Len() != 1 {
		t.Errorf("buffer len = %d, want 1", sim.Buffer().Len())
	}
	if sim.StepCount() != 0 {
		t.Errorf("StepCount() = %d, want 0", sim.StepCount())
	}
}

func TestClearRemovesEverything(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	sim.Attractors.Extend(AttractorsFromPositions([]Vec2{{10, 0}}))

	sim.Clear()

	if sim.Tree.Len() != 0 || sim.Attractors.Len() != 0 || sim.Buffer().Len() != 0 {
		t.Errorf("clear left tree=%d attractors=%d buffer=%d",
			sim.Tree.Len(), sim.Attractors.Len(), sim.Buffer().Len())
	}

	// Stepping a cleared simulation must be a harmless no-op.
	if newIDs := sim.Step(); len(newIDs) != 0 {
		t.Errorf("cleared sim grew nodes: %v", newIDs)
	}
}

func TestSimulationConsumesAttractorCloud(t *testing.T) {
	// End-to-end smoke test: a root under an oval cloud should grow into it
	// and eat a good share of the attractors.
	sim := NewSimulation(DefaultConfig())
	sim.Attractors.Extend(RandomInOval(Vec2{0, 120}, Vec2{100, 100}, 1000, testRNG()))

	start := sim.Attractors.AliveCount()
	for range 300 {
		sim.Step()
	}

	if sim.Tree.Len() <= 1 {
		t.Fatal("tree never grew")
	}
	alive := sim.Attractors.AliveCount()
	if alive >= start {
		t.Errorf("alive attractors did not decrease: %d -> %d", start, alive)
	}
	if sim.Attractors.Len() != 1000 {
		t.Errorf("attractor entries = %d, want 1000 (dead ones stay)", sim.Attractors.Len())
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	run := func() *Tree {
		sim := NewSimulation(DefaultConfig())
		sim.Attractors.Extend(RandomInOval(Vec2{0, 120}, Vec2{100, 100}, 200, testRNG()))
		for range 50 {
			sim.Step()
		}
		return sim.Tree
	}

	a, b := run(), run()
	if a.Len() != b.Len() {
		t.Fatalf("tree lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Nodes {
		if a.Nodes[i].Pos != b.Nodes[i].Pos {
			t.Fatalf("node %d diverged: %v vs %v", i, a.Nodes[i].Pos, b.Nodes[i].Pos)
		}
	}
}
