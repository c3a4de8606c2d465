// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - VerticesInOrder() returns IDs in first-insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing and applies the given options.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, allocate the Vertex if missing, then apply opts.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap adjacency buckets.
//
// Behavior highlights:
//   - Idempotent for the ID: re-adding an existing vertex never duplicates it.
//   - Options are applied to an existing vertex too, so a loader can attach
//     coordinates to a vertex that AddEdge created implicitly.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: Time O(1) amortized.
// Notes: lock order is muVert -> muEdgeAdj to avoid lock inversion.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		g.nextVertex++
		v = &Vertex{ID: id, Metadata: make(map[string]interface{}), seq: g.nextVertex}
		g.vertices[id] = v
	}
	for _, opt := range opts {
		opt(v)
	}
	if exists {
		return nil
	}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex exists.
// Empty ID is never present.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID. The Metadata map is
// copied shallowly, so callers may not alter the stored attributes through it.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(|Metadata|).
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}
	out := *v
	out.Metadata = make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		out.Metadata[k] = val
	}

	return out, nil
}

// Coordinates returns the (x, y) of a vertex and whether it has any.
// A missing vertex reports ok == false.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Coordinates(id string) (x, y float64, ok bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, found := g.vertices[id]
	if !found || !v.HasCoords {
		return 0, 0, false
	}

	return v.X, v.Y, true
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Validate non-empty ID.
//   - Stage 2: Acquire muVert then muEdgeAdj write locks.
//   - Stage 3: Verify existence (ErrVertexNotFound).
//   - Stage 4: Remove every edge where From==id or To==id, then the vertex itself.
//   - Stage 5: Prune empty adjacency buckets.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(E) scan plus cleanup.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// Complexity: O(V log V). Concurrency: muVert read lock.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VerticesInOrder returns all vertex IDs in the order they were first added.
// Loaders add vertices as they read them, so this is the source file order.
// Copies made by Clone, views and Simplify keep the order of their source.
//
// Complexity: O(V log V). Concurrency: muVert read lock.
func (g *Graph) VerticesInOrder() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	vs := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].seq < vs[j].seq })

	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}

	return ids
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
