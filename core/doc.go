// Package core provides the thread-safe in-memory road-network graph that every
// routing package in this module operates on.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Planar coordinates per vertex (WithCoordinates)
//   - Edges without a measured length (WithUnmeasured), which report DefaultLength
//
// Storage is a nested map adjacencyList[from][to][edgeID] guarded by two
// sync.RWMutex locks: muVert for vertices, muEdgeAdj for edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
//
// Ordering:
//
//	Vertices()     lexicographic by ID
//	Edges()        insertion order
//	Neighbors()    insertion order of the connecting edges
//	NeighborIDs()  unique, ordered by the first connecting edge
//
// Insertion order is the graph's only notion of "natural" order: searches
// break ties by it, so two runs over the same loaded network agree exactly.
//
// Raw vs. simplified networks:
//
// A loader builds a raw network with NewRoadGraph (directed, parallel edges
// and loops allowed). Simplify collapses it into a directed graph with at most
// one arc per ordered pair, loops included, keeping the shortest parallel
// edge. All routing runs on the simplified form; EdgeBetween resolves the
// length of a step.
//
// Errors:
//
//	ErrNilGraph             - nil graph passed to a package-level function
//	ErrEmptyVertexID        - zero-length vertex ID
//	ErrVertexNotFound       - missing vertex
//	ErrEdgeNotFound         - missing edge
//	ErrBadWeight            - negative/NaN/Inf weight, or non-zero weight on unweighted graph
//	ErrLoopNotAllowed       - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed - per-edge override without mixed-mode
package core
