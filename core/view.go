// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex/edge IDs, directedness and insertion order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// viewEdgeWeightZero is the canonical weight value used by views that enforce unweighted semantics.
const viewEdgeWeightZero float64 = 0

// UnweightedView returns a new Graph with identical topology but with all edge
// weights set to zero and the weighted flag turned off. The input graph is not
// mutated. Edge IDs, directedness and neighbor order are preserved, so a
// breadth-first search over the view yields the fewest-hops route of g.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UnweightedView(g *Graph) *Graph {
	g.muVert.RLock()
	out := NewGraph(flagOptions(g, false)...)
	out.nextVertex = g.nextVertex
	for id, v := range g.vertices {
		out.vertices[id] = copyVertex(v)
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range g.edges {
		ne := *e
		ne.Weight = viewEdgeWeightZero
		ne.Unmeasured = false
		linkEdge(out, &ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(flagOptions(g, true)...)
	out.nextVertex = g.nextVertex
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = copyVertex(v)
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := *e
		linkEdge(out, &ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
