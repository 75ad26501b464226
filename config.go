package sapling

// Config bundles the tunable growth parameters. The phases treat a Config
// as immutable for the duration of a step; drivers are free to change it
// between steps. The yaml tags let drivers load presets from disk — the
// core itself never touches files.
type Config struct {
	// AttractFromKN selects the closeness rank the attraction phase pulls
	// on: 0 means each attractor influences its nearest node, 1 the second
	// nearest, and so on.
	AttractFromKN int `yaml:"attract_from_kn"`

	// KillFromKN selects the closeness rank the kill phase measures
	// against (0 = nearest node).
	KillFromKN int `yaml:"kill_from_kn"`

	// InfluenceRadius is the maximum distance at which an attractor pulls
	// on a node. Attractors farther than this from their rank-selected
	// node contribute nothing and have no owner.
	InfluenceRadius float64 `yaml:"influence_radius"`

	// KillRadius is the distance below which an attractor is consumed.
	KillRadius float64 `yaml:"kill_radius"`

	// StepLen is the distance a branch advances per growth step.
	StepLen float64 `yaml:"step_len"`

	// Tropism is a constant bias (e.g. a gravity-like pull) added to every
	// growth direction before renormalization.
	Tropism Vec2 `yaml:"tropism"`
}

// DefaultConfig returns a tuning that grows a recognizable tree from a
// root below an attractor cloud: generous influence radius, downward
// tropism, both rank selectors at the nearest node.
func DefaultConfig() Config {
	return Config{
		AttractFromKN:   0,
		KillFromKN:      0,
		InfluenceRadius: 60,
		KillRadius:      30,
		StepLen:         5,
		Tropism:         Vec2{X: 0, Y: -0.7},
	}
}
