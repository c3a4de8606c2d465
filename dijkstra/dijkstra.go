// File: dijkstra.go
// Role: single-source shortest distances over core.Edge.Length().

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/greedyroute/core"
)

// Dijkstra computes shortest distances from Options.Source to every reachable
// vertex of g, using Edge.Length() as the cost of each edge.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable or not settled
//     before an early stop at Target).
//   - prev: predecessor map if ReturnPath was requested (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  validation errors (ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
//     ErrVertexNotFound), the context error, or wrapped neighbor lookup failures.
//
// Ties between equal distances are broken by push order, and neighbors are
// relaxed in edge insertion order, so results are reproducible.
//
// Complexity: Time O((V + E) log V), Space O(V + E).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Target)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     uint64 // push counter for FIFO tie-breaking
}

// init sets every distance to +Inf and seeds the heap with the source.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process pops vertices in distance order until the heap is empty, the
// target is settled, or the context is done.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry from lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == r.options.Target {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances of u's successors. Only strictly shorter
// distances replace an existing label.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.To
		if !e.Directed && e.To == u {
			v = e.From
		}
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Length()
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// nodeItem is a heap entry: a vertex, its tentative distance, and push order.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
