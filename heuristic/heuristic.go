// Package heuristic provides distance estimates between road-network
// vertices used to order a best-first search frontier.
//
// The Euclidean estimate works in whatever space the vertex coordinates live
// in (projected meters or raw lon/lat degrees), while edge lengths are
// network meters. It therefore ranks proximity faithfully but is not a lower
// bound on route length.
package heuristic

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/greedyroute/core"
)

var (
	// ErrVertexNotFound indicates a vertex absent from the graph.
	ErrVertexNotFound = errors.New("heuristic: vertex not found")

	// ErrNoCoordinates indicates a vertex without coordinates.
	ErrNoCoordinates = errors.New("heuristic: vertex has no coordinates")
)

// Func estimates the distance between vertices a and b.
type Func func(a, b string) (float64, error)

// Euclidean returns the straight-line distance between the coordinates of
// two vertices of g. Coordinates are read on every call; g must not change
// vertex positions while a search runs.
func Euclidean(g *core.Graph) Func {
	return func(a, b string) (float64, error) {
		pa, err := position(g, a)
		if err != nil {
			return 0, err
		}
		pb, err := position(g, b)
		if err != nil {
			return 0, err
		}

		return r2.Norm(r2.Sub(pa, pb)), nil
	}
}

// Zero is the constant estimate 0. Best-first search under Zero degrades to
// expanding vertices in discovery order.
func Zero(string, string) (float64, error) { return 0, nil }

func position(g *core.Graph, id string) (r2.Vec, error) {
	x, y, ok := g.Coordinates(id)
	if ok {
		return r2.Vec{X: x, Y: y}, nil
	}
	if !g.HasVertex(id) {
		return r2.Vec{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return r2.Vec{}, fmt.Errorf("%w: %q", ErrNoCoordinates, id)
}
