package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces the length of a segment whose endpoints are dist apart.
// rng is nil unless WithSeed or WithRand was given.
type WeightFn func(rng *rand.Rand, dist float64) float64

// DistanceWeightFn uses the straight-line distance as the length.
func DistanceWeightFn(_ *rand.Rand, dist float64) float64 {
	return dist
}

// ConstantWeightFn ignores geometry and returns value. Panics on value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand, _ float64) float64 {
		return value
	}
}

// JitterWeightFn stretches the distance by a uniform factor in [1, 1+spread],
// modelling roads that wind between their endpoints. Without an RNG the plain
// distance is returned. Panics on spread < 0.
func JitterWeightFn(spread float64) WeightFn {
	if spread < 0 || math.IsNaN(spread) || math.IsInf(spread, 0) {
		panic(fmt.Sprintf("JitterWeightFn: spread must be finite and ≥ 0, got %g", spread))
	}

	return func(rng *rand.Rand, dist float64) float64 {
		if rng == nil {
			return dist
		}
		return dist * (1 + rng.Float64()*spread)
	}
}

// WithConstantWeight gives every segment the same length.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithJitter stretches segment lengths randomly; see JitterWeightFn.
func WithJitter(spread float64) BuilderOption {
	return WithWeightFn(JitterWeightFn(spread))
}
