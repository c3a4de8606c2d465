// Package bfs provides breadth-first search over an unweighted core.Graph,
// returning hop-count depths, parent links and visit order.
//
// In this module BFS supplies the "fewest hops" alternative route, run on
// core.UnweightedView of the simplified network, and the connected
// components used to prune a loaded network to its largest piece.
//
// Determinism
//
//	Neighbors are enqueued in core.NeighborIDs order (edge insertion order),
//	so two runs over the same graph visit vertices identically.
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithTarget(id):          stop once id is dequeued.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph, ErrNeighbors,
//     ErrNoPath.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
