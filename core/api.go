// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of configuration flags, catalog sizes
// and the coordinate envelope of a Graph.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool

	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
	UnmeasuredEdgeCount int

	// CoordCount is the number of vertices carrying coordinates; the envelope
	// and center below are meaningful only when CoordCount > 0.
	CoordCount int
	MinX, MinY float64
	MaxX, MaxY float64
	// CenterX/CenterY is the arithmetic mean of all vertex coordinates,
	// the point a map view is initially centered on.
	CenterX, CenterY float64
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the graph-wide default directedness applied to newly created edges.
// Per-edge overrides require mixed-mode (MixedEdges()==true).
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted via
// WithEdgeDirected during AddEdge.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a deterministic, read-only snapshot of configuration flags,
// catalog sizes and the coordinate envelope.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags, vertex count and coordinates, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and scan edges, then release.
//
// Both locks are never held together, which keeps Stats free of lock-order hazards.
//
// Complexity: Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	// First phase: configuration flags, vertex count and envelope under muVert.
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	var sumX, sumY float64
	for _, v := range g.vertices {
		if !v.HasCoords {
			continue
		}
		if stats.CoordCount == 0 {
			stats.MinX, stats.MaxX = v.X, v.X
			stats.MinY, stats.MaxY = v.Y, v.Y
		}
		stats.CoordCount++
		sumX += v.X
		sumY += v.Y
		stats.MinX = min(stats.MinX, v.X)
		stats.MaxX = max(stats.MaxX, v.X)
		stats.MinY = min(stats.MinY, v.Y)
		stats.MaxY = max(stats.MaxY, v.Y)
	}
	g.muVert.RUnlock()
	if stats.CoordCount > 0 {
		stats.CenterX = sumX / float64(stats.CoordCount)
		stats.CenterY = sumY / float64(stats.CoordCount)
	}

	// Second phase: edge counters under muEdgeAdj.
	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
		if e.Unmeasured {
			stats.UnmeasuredEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
