// Package routing composes the search packages into one request:
// ComputeRoutes runs the greedy search and the alternative generator over a
// loaded Network and assembles the routes a viewer displays. Session keeps
// the state of one interactive area as an immutable value.
package routing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/paths"
)

var (
	// ErrGraphEmpty: the network has no vertices or no edges.
	ErrGraphEmpty = errors.New("routing: graph is empty")

	// ErrNodeNotFound: start or end is not a vertex of the network.
	ErrNodeNotFound = errors.New("routing: node not found")

	// ErrNoPathFound marks a single strategy that did not reach its goal.
	// It never aborts ComputeRoutes.
	ErrNoPathFound = paths.ErrNoPath

	// ErrSelectionOutOfRange: Select was given an index without a route.
	ErrSelectionOutOfRange = errors.New("routing: selection out of range")

	// ErrSessionNotFound: the Store holds no session with that ID.
	ErrSessionNotFound = errors.New("routing: session not found")
)

// Network is a loaded road network in both of its forms. Raw drives the
// greedy search and coordinate lookups; Simplified drives every
// length-based query. Neither is modified after NewNetwork returns.
type Network struct {
	Raw        *core.Graph
	Simplified *core.Graph
	labels     map[string]string
}

// NewNetwork validates raw and derives its simplified form.
//
// Errors: ErrGraphEmpty for a nil graph or one without vertices or edges.
func NewNetwork(raw *core.Graph) (*Network, error) {
	if raw == nil || raw.VertexCount() == 0 || raw.EdgeCount() == 0 {
		return nil, ErrGraphEmpty
	}
	simple, err := core.Simplify(raw)
	if err != nil {
		return nil, fmt.Errorf("routing: simplify: %w", err)
	}

	return &Network{Raw: raw, Simplified: simple, labels: NodeLabels(raw)}, nil
}

// HasNode reports whether id is a vertex of the network.
func (n *Network) HasNode(id string) bool { return n.Raw.HasVertex(id) }

// Label returns the short display label of a vertex ("N001", ...), or id itself
// for an unknown vertex.
func (n *Network) Label(id string) string {
	if l, ok := n.labels[id]; ok {
		return l
	}

	return id
}

// Point is a vertex position handed to viewers.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a vertex as listed to viewers.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Point
}

// Nodes lists every vertex with its label and position, in ID order.
func (n *Network) Nodes() []Node {
	ids := n.Raw.Vertices()
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		x, y, _ := n.Raw.Coordinates(id)
		out = append(out, Node{ID: id, Label: n.Label(id), Point: Point{X: x, Y: y}})
	}

	return out
}

// NodeLabels assigns "N001", "N002", ... to the vertices of g in the order
// the loader added them.
func NodeLabels(g *core.Graph) map[string]string {
	ids := g.VerticesInOrder()
	labels := make(map[string]string, len(ids))
	for i, id := range ids {
		labels[id] = fmt.Sprintf("N%03d", i+1)
	}

	return labels
}
