// Package greedy implements greedy best-first search: the frontier is ordered
// solely by the heuristic distance to the goal, edge lengths are ignored, and
// the predecessor of a vertex is whichever settled vertex discovered it last.
//
// The search is not optimal and may wind; it is meant to be shown next to
// shortest-path alternatives, together with its exploration trace.
//
// Determinism: equal heuristic values are popped in push order and neighbors
// are discovered in core.NeighborIDs order, so repeated searches over the same
// graph produce identical paths and traces.
package greedy

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/heuristic"
)

// Search runs greedy best-first search from start to goal on g.
//
// Loop:
//  1. Pop the frontier entry with the smallest estimate (FIFO among equals).
//  2. Goal popped: stop.
//  3. Already settled: discard.
//  4. Otherwise settle it and, for each unsettled successor, overwrite its
//     predecessor, append the step to the trace and push it keyed by its
//     estimate to goal.
//
// An unreachable goal is not an error: Result.Found is false and the trace
// of everything explored is returned.
//
// Errors: ErrNilGraph, ErrStartNotFound, ErrGoalNotFound, ErrHeuristic
// (wrapping the estimate failure), the context error, or a wrapped
// neighbor lookup failure.
func Search(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Heuristic == nil {
		o.Heuristic = heuristic.Euclidean(g)
	}

	s := &searcher{
		g:       g,
		goal:    goal,
		h:       o.Heuristic,
		prev:    make(map[string]string),
		settled: make(map[string]bool),
		res:     &Result{},
	}
	if err := s.push(start); err != nil {
		return nil, err
	}

	reached := false
	for s.pq.Len() > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		cur := heap.Pop(&s.pq).(*frontierItem).id
		if cur == goal {
			reached = true
			break
		}
		if s.settled[cur] {
			continue
		}
		if err := s.expand(cur); err != nil {
			return nil, err
		}
	}

	if reached {
		s.res.Path = s.reconstruct(start)
		s.res.Found = s.res.Path != nil
	}

	return s.res, nil
}

// searcher holds the working sets of one search.
type searcher struct {
	g       *core.Graph
	goal    string
	h       heuristic.Func
	pq      frontier
	seq     uint64
	prev    map[string]string
	settled map[string]bool
	res     *Result
}

func (s *searcher) push(id string) error {
	est, err := s.h(id, s.goal)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHeuristic, err)
	}
	heap.Push(&s.pq, &frontierItem{id: id, est: est, seq: s.seq})
	s.seq++

	return nil
}

func (s *searcher) expand(cur string) error {
	s.settled[cur] = true
	s.res.Order = append(s.res.Order, cur)

	nbrs, err := s.g.NeighborIDs(cur)
	if err != nil {
		return fmt.Errorf("greedy: neighbors of %q: %w", cur, err)
	}
	for _, nbr := range nbrs {
		if s.settled[nbr] {
			continue
		}
		s.prev[nbr] = cur
		s.res.Trace = append(s.res.Trace, Step{From: cur, To: nbr})
		if err := s.push(nbr); err != nil {
			return err
		}
	}

	return nil
}

// reconstruct walks predecessor links back from the goal. It returns nil if
// the chain breaks before start or runs longer than the settled set allows.
func (s *searcher) reconstruct(start string) []string {
	rev := []string{s.goal}
	for cur := s.goal; cur != start; {
		p, ok := s.prev[cur]
		if !ok || len(rev) > len(s.settled)+1 {
			return nil
		}
		rev = append(rev, p)
		cur = p
	}

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}

// frontierItem is a heap entry keyed by (est, seq).
type frontierItem struct {
	id  string
	est float64
	seq uint64
}

// frontier is a min-heap of *frontierItem.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].est != f[j].est {
		return f[i].est < f[j].est
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
