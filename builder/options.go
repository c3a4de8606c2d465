package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the segment length generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithSpacing sets the distance between lattice points.
// Panics unless d is finite and > 0.
func WithSpacing(d float64) BuilderOption {
	if !(d > 0) || math.IsInf(d, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%g): must be finite and > 0", d))
	}
	return func(c *builderConfig) { c.spacing = d }
}

// WithOneWay emits only the forward arc of every segment.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) { c.oneWay = true }
}
