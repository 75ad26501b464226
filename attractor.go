package sapling

import (
	"math"
	"math/rand/v2"
)

// Attractor is a target point that pulls growth toward it and is consumed
// once the structure gets close enough. Alive starts true and only ever
// transitions to false. Owner is the node the attractor currently pulls
// on, recomputed every attraction phase; nil when out of range.
type Attractor struct {
	Pos   Vec2
	Alive bool
	Owner *NodeID
}

// AttractorSet is an unordered collection of attractors. The phases mutate
// liveness and ownership in place; dead attractors stay in the set, inert.
type AttractorSet struct {
	Points []Attractor
}

// AttractorsFromPositions creates one alive, unowned attractor per
// position.
func AttractorsFromPositions(positions []Vec2) *AttractorSet {
	points := make([]Attractor, len(positions))
	for i, pos := range positions {
		points[i] = Attractor{Pos: pos, Alive: true}
	}
	return &AttractorSet{Points: points}
}

// RandomInRect creates n attractors sampled uniformly inside the
// axis-aligned rectangle spanning center ± halfExtents, with each axis
// drawn independently from rng.
func RandomInRect(center, halfExtents Vec2, n int, rng *rand.Rand) *AttractorSet {
	positions := make([]Vec2, n)
	for i := range positions {
		positions[i] = Vec2{
			X: center.X + (rng.Float64()*2-1)*halfExtents.X,
			Y: center.Y + (rng.Float64()*2-1)*halfExtents.Y,
		}
	}
	return AttractorsFromPositions(positions)
}

// RandomInOval creates n attractors sampled uniformly inside the
// axis-aligned oval with the given x/y radii around center. The radial
// coordinate is sqrt of a uniform draw, which makes the samples uniform by
// area; a plain uniform radius would cluster points toward the center and
// bias everything downstream that depends on attractor density.
func RandomInOval(center, radii Vec2, n int, rng *rand.Rand) *AttractorSet {
	positions := make([]Vec2, n)
	for i := range positions {
		angle := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(rng.Float64())
		positions[i] = Vec2{
			X: center.X + math.Cos(angle)*r*radii.X,
			Y: center.Y + math.Sin(angle)*r*radii.Y,
		}
	}
	return AttractorsFromPositions(positions)
}

// Len returns the total number of attractors, dead ones included.
func (s *AttractorSet) Len() int {
	return len(s.Points)
}

// AliveCount returns the number of attractors not yet consumed.
func (s *AttractorSet) AliveCount() int {
	n := 0
	for i := range s.Points {
		if s.Points[i].Alive {
			n++
		}
	}
	return n
}

// Extend appends all of other's attractors to s. Spawning more attractors
// mid-simulation is the common use.
func (s *AttractorSet) Extend(other *AttractorSet) {
	s.Points = append(s.Points, other.Points...)
}
