package sapling

// childEpsilon is the distance below which a candidate child counts as a
// duplicate of an existing sibling and is dropped. Without it, several
// attractors converging on one node spawn overlapping branches forever.
const childEpsilon = 0.1

// Attract rebuilds buf from the current attractor population and assigns
// attractor ownership. For every alive attractor, the node at rank
// cfg.AttractFromKN is looked up; if it lies strictly inside the influence
// radius, the normalized node→attractor direction is accumulated for that
// node and the attractor's Owner is set to it, otherwise Owner is cleared.
// Dead attractors are skipped untouched.
//
// buf is resized and cleared to the tree's node count first, so callers
// can reuse one buffer across steps. On an empty tree the phase is a
// no-op apart from that resize.
func Attract(tree *Tree, set *AttractorSet, cfg Config, buf *InfluenceBuffer) {
	r2 := cfg.InfluenceRadius * cfg.InfluenceRadius
	buf.EnsureLen(tree.Len())

	for i := range set.Points {
		a := &set.Points[i]
		if !a.Alive {
			continue
		}
		id, d2, ok := tree.KthNearestNode(a.Pos, cfg.AttractFromKN)
		if !ok || d2 >= r2 {
			a.Owner = nil
			continue
		}
		buf.Add(id, a.Pos.Sub(tree.Nodes[id].Pos).Normalized())
		owner := id
		a.Owner = &owner
	}
}

type growCandidate struct {
	parent NodeID
	pos    Vec2
	radius float64
}

// Grow sprouts one child per influenced node: the mean pull direction is
// normalized, biased by cfg.Tropism, renormalized, and walked cfg.StepLen
// units from the node; the child inherits its parent's radius. Candidates
// landing within childEpsilon of an existing sibling are dropped.
//
// All candidates are collected before any mutation, then committed in the
// order the influenced indices were produced. Returns the new ids in that
// order; an uninfluenced buffer grows nothing.
func Grow(tree *Tree, buf *InfluenceBuffer, cfg Config) []NodeID {
	var candidates []growCandidate
	for id := range buf.InfluencedIndices() {
		dir := buf.AvgDir(id)
		if dir.LengthSquared() > 0 {
			dir = dir.Normalized()
		}
		dir = dir.Add(cfg.Tropism).Normalized()

		pos := tree.Nodes[id].Pos.Add(dir.Scale(cfg.StepLen))
		if tree.HasChildNear(id, pos, childEpsilon) {
			continue
		}
		candidates = append(candidates, growCandidate{id, pos, tree.Nodes[id].Radius})
	}

	newIDs := make([]NodeID, 0, len(candidates))
	for _, c := range candidates {
		newIDs = append(newIDs, tree.AddChild(c.parent, c.pos, c.radius))
	}
	return newIDs
}

// Kill consumes attractors the structure has reached: every alive
// attractor whose rank-cfg.KillFromKN node lies strictly inside the kill
// radius is marked dead. Death is one-way; dead attractors are never
// revisited. On an empty tree the phase is a no-op.
func Kill(tree *Tree, set *AttractorSet, cfg Config) {
	r2 := cfg.KillRadius * cfg.KillRadius
	for i := range set.Points {
		a := &set.Points[i]
		if !a.Alive {
			continue
		}
		if _, d2, ok := tree.KthNearestNode(a.Pos, cfg.KillFromKN); ok && d2 < r2 {
			a.Alive = false
		}
	}
}
