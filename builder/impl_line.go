package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/greedyroute/core"
)

const (
	methodLine   = "Line"
	minLineNodes = 2
)

// Line builds n vertices at (i*spacing, 0), i = 0..n-1, joined in order.
// Segments are emitted for i = 1..n-1, so vertex i-1 lists i as its first
// successor.
//
// Errors: ErrTooFewVertices when n < 2.
func Line(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewVertices)
		}

		pos := func(i int) r2.Vec { return r2.Vec{X: float64(i) * cfg.spacing} }
		for i := 0; i < n; i++ {
			if err := placeVertex(g, methodLine, cfg.idFn(i), pos(i)); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addSegment(g, cfg, methodLine, cfg.idFn(i-1), cfg.idFn(i), pos(i-1), pos(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
