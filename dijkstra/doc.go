// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// road networks of package core, using Edge.Length() as edge cost.
//
// Two entry points:
//
//   - Dijkstra(g, opts...) computes distances (and optionally predecessors)
//     from one source to every reachable vertex.
//   - ShortestPath(g, src, dst, opts...) returns one minimum-length path, stopping as
//     soon as dst is settled.
//
// Options:
//
//   - Source(id):               starting vertex, required.
//   - WithTarget(id):           stop once id is settled.
//   - WithReturnPath():         return the predecessor map.
//   - WithContext(ctx):         cancellation.
//
// Determinism:
//
//	Equal distances are popped in push order and neighbors are relaxed in
//	edge insertion order; a label is replaced only by a strictly shorter one.
//	Among several shortest paths the one discovered first is returned.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key.
//   - Space: O(V + E).
package dijkstra
