package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/greedyroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c", fixed and independent of WithIDScheme
)

// GridID returns the vertex ID Grid assigns to row r, column c.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid builds a rows×cols 4-neighborhood lattice. Vertex "r,c" sits at
// (c*spacing, r*spacing). Cells are visited row-major; each emits its right
// segment, then its lower one.
//
// Errors: ErrTooFewVertices when rows or cols < 1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		pos := func(r, c int) r2.Vec {
			return r2.Vec{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := placeVertex(g, methodGrid, GridID(r, c), pos(r, c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addSegment(g, cfg, methodGrid, u, GridID(r, c+1), pos(r, c), pos(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addSegment(g, cfg, methodGrid, u, GridID(r+1, c), pos(r, c), pos(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
