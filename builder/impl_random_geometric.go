package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/greedyroute/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minGeometricNodes     = 1
)

// RandomGeometric scatters n points uniformly over a square of side
// spacing*sqrt(n) and joins every pair closer than radius. Pairs are
// emitted in (i, j>i) order.
//
// Requires an RNG (WithSeed or WithRand).
//
// Errors: ErrTooFewVertices, ErrBadRadius, ErrNeedRandSource.
// Complexity: O(n²) pair checks.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minGeometricNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minGeometricNodes, ErrTooFewVertices)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrBadRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		side := cfg.spacing * math.Sqrt(float64(n))
		pts := make([]r2.Vec, n)
		for i := range pts {
			pts[i] = r2.Vec{X: cfg.rng.Float64() * side, Y: cfg.rng.Float64() * side}
			if err := placeVertex(g, methodRandomGeometric, cfg.idFn(i), pts[i]); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r2.Norm(r2.Sub(pts[i], pts[j])) >= radius {
					continue
				}
				if err := addSegment(g, cfg, methodRandomGeometric, cfg.idFn(i), cfg.idFn(j), pts[i], pts[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
