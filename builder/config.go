package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Segment length from the straight-line distance of its endpoints.
	weightFn WeightFn
	// Distance between neighboring lattice points.
	spacing float64
	// Emit a single forward arc per segment instead of two.
	oneWay bool
}

const defaultSpacing = 1.0

// newBuilderConfig applies options over the defaults, later options winning.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DistanceWeightFn,
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
