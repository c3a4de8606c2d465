// File: path.go
// Role: fewest-hops paths and connected components built on BFS.

package bfs

import (
	"github.com/katalvlaran/greedyroute/core"
)

// ShortestPath returns the path from start to goal with the fewest edges.
// g must be unweighted; use core.UnweightedView on a road network.
//
// Errors: those of BFS, and ErrNoPath when goal is unreachable or absent.
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) ([]string, error) {
	res, err := BFS(g, start, append(opts, WithTarget(goal))...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(goal)
}

// Components partitions the vertices of g into connected components, each
// reported in visit order. Components are listed in order of their smallest
// vertex ID. On a directed graph the components follow edge direction, so
// callers wanting weak components pass an undirected graph.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := make([]string, 0, len(res.Order))
		for _, v := range res.Order {
			if !seen[v] {
				seen[v] = true
				comp = append(comp, v)
			}
		}
		out = append(out, comp)
	}

	return out, nil
}
