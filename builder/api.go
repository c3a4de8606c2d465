package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/greedyroute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// The graph must be weighted when a constructor emits non-zero lengths.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildRoadGraph is BuildGraph over a raw road graph (core.NewRoadGraph).
func BuildRoadGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()},
		bopts, cons...)
}

// placeVertex adds id at p.
func placeVertex(g *core.Graph, method, id string, p r2.Vec) error {
	if err := g.AddVertex(id, core.WithCoordinates(p.X, p.Y)); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// addSegment links u and v with a length drawn once from cfg.weightFn, as
// one arc (WithOneWay or an undirected graph) or as an arc pair.
func addSegment(g *core.Graph, cfg builderConfig, method, u, v string, pu, pv r2.Vec) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng, r2.Norm(r2.Sub(pu, pv)))
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if cfg.oneWay || !g.Directed() {
		return nil
	}
	if _, err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
	}

	return nil
}
