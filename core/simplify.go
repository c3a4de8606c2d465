// File: simplify.go
// Role: Collapse a raw road multigraph into the simple directed network used for routing.

package core

// arcKey identifies an ordered vertex pair.
type arcKey struct{ from, to string }

// Simplify builds the simplified network of raw: a directed, weighted graph
// with at most one arc per ordered pair (u, v).
//
// Rules:
//   - A directed edge u→v contributes the arc u→v.
//   - An undirected edge contributes both u→v and v→u.
//   - Among parallel contributions the minimum Length() wins; an unmeasured
//     edge contributes DefaultLength.
//   - A self-loop u→u is an ordered pair like any other and keeps its
//     shortest instance.
//   - Every vertex of raw is kept, with coordinates, metadata and insertion order.
//
// Arcs are inserted in the order their pair was first seen in raw, so
// neighbor order on the result follows the loader's edge order.
//
// Errors: ErrNilGraph.
// Complexity: O(V + E).
func Simplify(raw *Graph) (*Graph, error) {
	if raw == nil {
		return nil, ErrNilGraph
	}

	out := NewGraph(WithDirected(true), WithWeighted(), WithLoops())

	raw.muVert.RLock()
	out.nextVertex = raw.nextVertex
	for id, v := range raw.vertices {
		out.vertices[id] = copyVertex(v)
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	raw.muVert.RUnlock()

	order := make([]arcKey, 0, raw.EdgeCount())
	best := make(map[arcKey]float64, raw.EdgeCount())
	offer := func(k arcKey, length float64) {
		cur, seen := best[k]
		if !seen {
			order = append(order, k)
			best[k] = length
			return
		}
		if length < cur {
			best[k] = length
		}
	}
	for _, e := range raw.Edges() {
		offer(arcKey{e.From, e.To}, e.Length())
		if !e.Directed {
			offer(arcKey{e.To, e.From}, e.Length())
		}
	}

	for _, k := range order {
		if _, err := out.AddEdge(k.from, k.to, best[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
