// File: types.go
// Role: Vertex, Edge, Graph, option types, sentinel errors and constructors.

package core

import (
	"errors"
	"sync"
)

// DefaultLength is the length assumed for an edge whose length was never measured.
const DefaultLength float64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed to a package-level function.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN weight, or a non-zero weight
	// provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents an intersection (node) of the road network.
//
// ID uniquely identifies this Vertex within its Graph and is stable for the
// lifetime of one loaded graph. X and Y are planar (or lon/lat) coordinates,
// valid only when HasCoords is true. Metadata carries loader attributes
// (e.g. OSM id, street count) and is shared between clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X is the horizontal coordinate (projected x or longitude).
	X float64

	// Y is the vertical coordinate (projected y or latitude).
	Y float64

	// HasCoords reports whether X and Y were supplied.
	HasCoords bool

	// Metadata stores arbitrary loader data. It is not deep-copied by Clone.
	Metadata map[string]interface{}

	// seq is the order in which the vertex was first added.
	seq uint64
}

// Edge represents a road segment between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a non-negative Weight
// (network length) and a Directed flag. Unmeasured marks an edge whose source
// supplied no length; Length() then reports DefaultLength.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the stored network length of the edge.
	Weight float64

	// Unmeasured is true when the source graph carried no length for this edge.
	Unmeasured bool

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// seq is the insertion sequence number; it drives every ordering guarantee.
	seq uint64
}

// Length returns the edge length used by weighted queries: Weight, or
// DefaultLength when the edge is unmeasured.
func (e *Edge) Length() float64 {
	if e.Unmeasured {
		return DefaultLength
	}

	return e.Weight
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// VertexOption configures attributes of a vertex when added.
type VertexOption func(*Vertex)

// WithCoordinates sets the vertex position used by heuristics and rendering.
func WithCoordinates(x, y float64) VertexOption {
	return func(v *Vertex) {
		v.X, v.Y = x, y
		v.HasCoords = true
	}
}

// WithMetadata stores one key/value attribute on the vertex.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) {
		if v.Metadata == nil {
			v.Metadata = make(map[string]interface{})
		}
		v.Metadata[key] = value
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Only legal on graphs built with WithMixedEdges.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithUnmeasured marks the edge as carrying no length; Length() reports DefaultLength.
func WithUnmeasured() EdgeOption {
	return func(e *Edge) { e.Unmeasured = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
// muVert protects vertices map; muEdgeAdj protects edges map and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation and ordering.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow mixed directed edges

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	nextVertex uint64             // vertex insertion counter, guarded by muVert
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewRoadGraph creates an empty raw road-network graph: directed, weighted,
// with parallel edges and self-loops permitted.
func NewRoadGraph() *Graph {
	return NewGraph(WithDirected(true), WithWeighted(), WithMultiEdges(), WithLoops())
}
