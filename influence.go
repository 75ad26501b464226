package sapling

import (
	"fmt"
	"iter"
)

// InfluenceBuffer accumulates pull directions per tree node: for each
// NodeID it stores the sum of contributed direction vectors and the number
// of contributions, so the average pull can be read back per node.
//
// The buffer is scratch state: the attraction phase rebuilds it every step
// via [InfluenceBuffer.EnsureLen], the growth phase reads it, and nothing
// carries over. Reusing one buffer across steps only saves allocations.
type InfluenceBuffer struct {
	dirs   []Vec2
	counts []int
}

// NewInfluenceBuffer creates an all-zero buffer with one slot per node.
func NewInfluenceBuffer(n int) *InfluenceBuffer {
	return &InfluenceBuffer{
		dirs:   make([]Vec2, n),
		counts: make([]int, n),
	}
}

// Len returns the number of node slots.
func (b *InfluenceBuffer) Len() int {
	return len(b.dirs)
}

// EnsureLen resizes the buffer to exactly n slots and clears every slot,
// whether or not the length changed. Callers never need a separate Clear
// before reuse.
func (b *InfluenceBuffer) EnsureLen(n int) {
	if n > cap(b.dirs) {
		b.dirs = append(b.dirs[:cap(b.dirs)], make([]Vec2, n-cap(b.dirs))...)
	}
	if n > cap(b.counts) {
		b.counts = append(b.counts[:cap(b.counts)], make([]int, n-cap(b.counts))...)
	}
	b.dirs = b.dirs[:n]
	b.counts = b.counts[:n]
	b.Clear()
}

// Clear zeroes all accumulated directions and counts without changing the
// length.
func (b *InfluenceBuffer) Clear() {
	for i := range b.dirs {
		b.dirs[i] = Vec2{}
	}
	for i := range b.counts {
		b.counts[i] = 0
	}
}

// Add accumulates one directional contribution for id and bumps its count.
// Panics if id is out of bounds.
func (b *InfluenceBuffer) Add(id NodeID, dir Vec2) {
	b.dirs[id] = b.dirs[id].Add(dir)
	b.counts[id]++
}

// AvgDir returns the arithmetic mean of the directions contributed to id,
// or the zero vector if id has no contributions.
func (b *InfluenceBuffer) AvgDir(id NodeID) Vec2 {
	c := b.counts[id]
	if c == 0 {
		return Vec2{}
	}
	return b.dirs[id].Scale(1 / float64(c))
}

// Count returns the number of contributions accumulated for id.
func (b *InfluenceBuffer) Count(id NodeID) int {
	return b.counts[id]
}

// IsInfluenced reports whether id has at least one contribution.
func (b *InfluenceBuffer) IsInfluenced(id NodeID) bool {
	return b.counts[id] > 0
}

// InfluencedIndices returns a one-shot sequence over the ids with a
// nonzero count, in ascending order. The buffer must not be mutated while
// iterating.
func (b *InfluenceBuffer) InfluencedIndices() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i, c := range b.counts {
			if c > 0 && !yield(NodeID(i)) {
				return
			}
		}
	}
}

// MergeFrom adds other's accumulated directions and counts into b,
// slot by slot. The pointwise sum is commutative and associative, so
// partitioned accumulation followed by merging matches single-buffer
// accumulation (up to floating-point rounding in the direction sums).
// Panics if the lengths differ.
func (b *InfluenceBuffer) MergeFrom(other *InfluenceBuffer) {
	if len(b.dirs) != len(other.dirs) {
		panic(fmt.Sprintf("sapling: MergeFrom on mismatched lengths %d and %d",
			len(b.dirs), len(other.dirs)))
	}
	for i := range b.dirs {
		b.dirs[i] = b.dirs[i].Add(other.dirs[i])
		b.counts[i] += other.counts[i]
	}
}
