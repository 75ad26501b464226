package sapling

// Simulation bundles the state a driver owns (tree, attractors, config,
// and the scratch influence buffer) and advances it one step at a time.
// It is a convenience; the phase functions work just as well on pieces you
// own yourself.
type Simulation struct {
	Tree       *Tree
	Attractors *AttractorSet

	// Config may be changed freely between calls to Step.
	Config Config

	buf   *InfluenceBuffer
	steps int
}

// NewSimulation creates a simulation with a single root node of radius 1
// at the origin and no attractors.
func NewSimulation(cfg Config) *Simulation {
	tree := NewTree(Vec2{}, 1)
	return &Simulation{
		Tree:       tree,
		Attractors: &AttractorSet{},
		Config:     cfg,
		buf:        NewInfluenceBuffer(tree.Len()),
	}
}

// Step advances the simulation one discrete step (attract, then grow,
// then kill) and returns the ids of nodes created by the growth phase.
func (s *Simulation) Step() []NodeID {
	Attract(s.Tree, s.Attractors, s.Config, s.buf)
	newIDs := Grow(s.Tree, s.buf, s.Config)
	Kill(s.Tree, s.Attractors, s.Config)
	s.steps++
	return newIDs
}

// Reset replaces the tree with a fresh single root at the origin and drops
// all attractors. The config is kept.
func (s *Simulation) Reset() {
	s.Tree = NewTree(Vec2{}, 1)
	s.Attractors = &AttractorSet{}
	s.buf.EnsureLen(s.Tree.Len())
	s.steps = 0
}

// Clear empties the tree and the attractor set entirely, leaving a blank
// canvas for spawning roots and attractor clusters by hand.
func (s *Simulation) Clear() {
	s.Tree = &Tree{}
	s.Attractors = &AttractorSet{}
	s.buf.EnsureLen(0)
	s.steps = 0
}

// StepCount returns the number of completed steps since creation or the
// last Reset/Clear.
func (s *Simulation) StepCount() int {
	return s.steps
}

// Buffer returns the influence buffer populated by the most recent step.
// It is rebuilt at the start of every step; treat it as read-only.
func (s *Simulation) Buffer() *InfluenceBuffer {
	return s.buf
}
