package sapling

// NodeID identifies a node within the Tree that produced it. IDs are dense
// zero-based indices into the tree's node storage; since nodes are never
// removed or reordered, an ID stays valid for the lifetime of its Tree.
// IDs from one Tree are meaningless in another.
type NodeID int

// TreeNode is one point of the growing structure.
type TreeNode struct {
	Pos    Vec2
	Radius float64
	// Parent is nil for roots and free nodes.
	Parent   *NodeID
	Children []NodeID
}

// Tree is an append-only, index-addressed graph of growth nodes. It
// exclusively owns all node storage; nodes are only ever appended, never
// deleted. For every node c with parent p, p's child list contains c
// exactly once and c.Parent points back at p.
type Tree struct {
	Nodes []TreeNode
}

// NewTree creates a tree with a single parentless root node at index 0.
func NewTree(rootPos Vec2, rootRadius float64) *Tree {
	return &Tree{
		Nodes: []TreeNode{{Pos: rootPos, Radius: rootRadius}},
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// AddFreeNode appends a parentless node and returns its id. Free nodes act
// as extra roots; the growth phase treats them like any other node.
func (t *Tree) AddFreeNode(pos Vec2, radius float64) NodeID {
	id := NodeID(len(t.Nodes))
	t.Nodes = append(t.Nodes, TreeNode{Pos: pos, Radius: radius})
	return id
}

// AddChild appends a node under parent and returns the new id. The parent
// must be a valid existing id; an invalid id is caller misuse and panics.
func (t *Tree) AddChild(parent NodeID, pos Vec2, radius float64) NodeID {
	id := NodeID(len(t.Nodes))
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, id)
	p := parent
	t.Nodes = append(t.Nodes, TreeNode{Pos: pos, Radius: radius, Parent: &p})
	return id
}

// HasChildNear reports whether any direct child of parent lies strictly
// within epsilon of pos. The growth phase uses this to suppress redundant
// children at convergence points.
func (t *Tree) HasChildNear(parent NodeID, pos Vec2, epsilon float64) bool {
	e2 := epsilon * epsilon
	for _, c := range t.Nodes[parent].Children {
		if t.Nodes[c].Pos.Sub(pos).LengthSquared() < e2 {
			return true
		}
	}
	return false
}

// NearestNode returns the id of the node closest to pos and the squared
// distance to it. ok is false only when the tree is empty. Ties go to the
// lowest index.
func (t *Tree) NearestNode(pos Vec2) (id NodeID, distSq float64, ok bool) {
	if len(t.Nodes) == 0 {
		return 0, 0, false
	}
	best := NodeID(0)
	bestD2 := t.Nodes[0].Pos.Sub(pos).LengthSquared()
	for i := 1; i < len(t.Nodes); i++ {
		if d2 := t.Nodes[i].Pos.Sub(pos).LengthSquared(); d2 < bestD2 {
			best = NodeID(i)
			bestD2 = d2
		}
	}
	return best, bestD2, true
}

// KthNearestNode returns the node at closeness rank k (0 = nearest) and
// the squared distance to it. A k at or beyond the node count is clamped
// to the farthest node rather than failing. ok is false only when the
// tree is empty.
//
// The rank is found by quickselect over squared distances, so the cost is
// linear in the node count rather than the n·log n of a full sort. This
// query dominates the per-step cost of the attraction and kill phases.
func (t *Tree) KthNearestNode(pos Vec2, k int) (id NodeID, distSq float64, ok bool) {
	n := len(t.Nodes)
	if n == 0 {
		return 0, 0, false
	}
	if k >= n {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}

	dists := make([]nodeDist, n)
	for i, node := range t.Nodes {
		dists[i] = nodeDist{NodeID(i), node.Pos.Sub(pos).LengthSquared()}
	}
	quickselect(dists, k)
	return dists[k].id, dists[k].d2, true
}

type nodeDist struct {
	id NodeID
	d2 float64
}

// quickselect partially orders dists so the element at rank k sits in its
// final sorted position; the ordering on either side of k is unspecified.
// Squared distances of finite positions are never NaN, so plain < is a
// total order here.
func quickselect(dists []nodeDist, k int) {
	lo, hi := 0, len(dists)-1
	for lo < hi {
		p := partition(dists, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

// partition picks a median-of-three pivot (guards against quadratic
// behavior on already-ordered input) and Lomuto-partitions dists[lo:hi+1]
// around it, returning the pivot's final index.
func partition(dists []nodeDist, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if dists[mid].d2 < dists[lo].d2 {
		dists[mid], dists[lo] = dists[lo], dists[mid]
	}
	if dists[hi].d2 < dists[lo].d2 {
		dists[hi], dists[lo] = dists[lo], dists[hi]
	}
	if dists[hi].d2 < dists[mid].d2 {
		dists[hi], dists[mid] = dists[mid], dists[hi]
	}
	dists[mid], dists[hi] = dists[hi], dists[mid]

	pivot := dists[hi].d2
	i := lo
	for j := lo; j < hi; j++ {
		if dists[j].d2 < pivot {
			dists[i], dists[j] = dists[j], dists[i]
			i++
		}
	}
	dists[i], dists[hi] = dists[hi], dists[i]
	return i
}
