// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID and edge sequence numbers, so the clone
//     iterates neighbors in exactly the order of its source.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// flagOptions rebuilds the GraphOption list matching g's configuration.
// weighted selects whether the weighted capability is carried over.
func flagOptions(g *Graph, weighted bool) []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if weighted && g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

// copyVertex duplicates v; Metadata is shared.
func copyVertex(v *Vertex) *Vertex {
	return &Vertex{ID: v.ID, X: v.X, Y: v.Y, HasCoords: v.HasCoords, Metadata: v.Metadata, seq: v.seq}
}

// linkEdge stores e in dst and wires its adjacency buckets.
// dst must not be visible to other goroutines yet.
func linkEdge(dst *Graph, e *Edge) {
	dst.edges[e.ID] = e
	ensureAdjacency(dst, e.From, e.To)
	dst.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(dst, e.To, e.From)
		dst.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Carries over nextEdgeID so that future AddEdge calls on the clone continue the same
// textual sequence and never collide with edges copied later.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(flagOptions(g, true)...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	clone.nextVertex = g.nextVertex
	for id, v := range g.vertices {
		clone.vertices[id] = copyVertex(v)
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Edge IDs, lengths and insertion order are preserved.
//
// The alternative-route generator clones the simplified network before
// removing a vertex, so the shared network is never mutated by a request.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		ne := *e
		linkEdge(clone, &ne)
	}

	return clone
}
