// Package alternatives produces a small set of materially different routes
// between two vertices of a simplified road network.
//
// Three strategies run in a fixed order:
//
//  1. ShortestWeight: minimum total length (Dijkstra).
//  2. FewestHops: minimum edge count (BFS on an unweighted view).
//  3. AvoidMidpoint: minimum total length on a copy of the network with the
//     middle vertex of the first accepted route removed; runs only when that
//     route has more than three vertices.
//
// Strategies 2 and 3 are accepted only if their route is neither identical to
// nor more than SimilarityThreshold Jaccard-similar to any accepted route.
// Each strategy reports an Attempt; no failure inside a strategy aborts the
// call. Accepted routes are ranked by total length and truncated.
package alternatives

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/greedyroute/bfs"
	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/dijkstra"
	"github.com/katalvlaran/greedyroute/paths"
)

// midpointMinNodes is the vertex count the first route must exceed before
// AvoidMidpoint runs.
const midpointMinNodes = 3

// Generate returns the ranked alternative routes from start to goal on the
// simplified network g. g is never modified.
//
// A request with start == goal yields the single trivial candidate [start]
// of length 0; the other strategies are reported as NotApplicable.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrBadMaxCount, ErrBadThreshold,
// or the context error when Options.Ctx is done before all strategies ran.
func Generate(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, id := range []string{start, goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	gen := &generator{g: g, start: start, goal: goal, opts: o, res: &Result{}, accepted: paths.NewSet()}
	if start == goal {
		gen.trivial()
	} else {
		gen.shortestWeight()
		gen.fewestHops()
		gen.avoidMidpoint()
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(gen.res.Candidates, func(i, j int) bool {
		return gen.res.Candidates[i].Length < gen.res.Candidates[j].Length
	})
	if len(gen.res.Candidates) > o.MaxCount {
		gen.res.Candidates = gen.res.Candidates[:o.MaxCount]
	}

	return gen.res, nil
}

// generator carries one Generate call.
type generator struct {
	g           *core.Graph
	start, goal string
	opts        Options
	res         *Result
	accepted    *paths.Set
}

func (gen *generator) record(a Attempt) {
	gen.res.Attempts = append(gen.res.Attempts, a)
}

// offer applies the novelty rule and accepts the path if it passes.
func (gen *generator) offer(src paths.Source, p []string, removed string) {
	a := Attempt{Strategy: src, Path: p, Removed: removed}
	switch gen.accepted.Judge(p, gen.opts.SimilarityThreshold) {
	case paths.Duplicate:
		a.Outcome = Duplicate
	case paths.TooSimilar:
		a.Outcome = TooSimilar
	default:
		length, err := paths.Weight(gen.g, p)
		if err != nil {
			a.Outcome, a.Err = NoPath, err
			break
		}
		a.Outcome = Accepted
		gen.accepted.Add(p)
		gen.res.Candidates = append(gen.res.Candidates, Candidate{Path: p, Length: length, Strategy: src})
	}
	gen.record(a)
}

func (gen *generator) noPath(src paths.Source, removed string, err error) {
	gen.record(Attempt{
		Strategy: src,
		Outcome:  NoPath,
		Removed:  removed,
		Err:      fmt.Errorf("%w: %w", paths.ErrNoPath, err),
	})
}

func (gen *generator) trivial() {
	p := []string{gen.start}
	gen.accepted.Add(p)
	gen.res.Candidates = append(gen.res.Candidates, Candidate{Path: p, Strategy: paths.ShortestWeight})
	gen.record(Attempt{Strategy: paths.ShortestWeight, Outcome: Accepted, Path: p})
	gen.record(Attempt{Strategy: paths.FewestHops, Outcome: NotApplicable})
	gen.record(Attempt{Strategy: paths.AvoidMidpoint, Outcome: NotApplicable})
}

func (gen *generator) shortestWeight() {
	p, _, err := dijkstra.ShortestPath(gen.g, gen.start, gen.goal, dijkstra.WithContext(gen.opts.Ctx))
	if err != nil {
		gen.noPath(paths.ShortestWeight, "", err)
		return
	}
	gen.offer(paths.ShortestWeight, p, "")
}

func (gen *generator) fewestHops() {
	p, err := bfs.ShortestPath(core.UnweightedView(gen.g), gen.start, gen.goal, bfs.WithContext(gen.opts.Ctx))
	if err != nil {
		gen.noPath(paths.FewestHops, "", err)
		return
	}
	gen.offer(paths.FewestHops, p, "")
}

func (gen *generator) avoidMidpoint() {
	if gen.accepted.Len() == 0 || len(gen.accepted.At(0)) <= midpointMinNodes {
		gen.record(Attempt{Strategy: paths.AvoidMidpoint, Outcome: NotApplicable})
		return
	}
	first := gen.accepted.At(0)
	mid := first[len(first)/2]

	detour := gen.g.Clone()
	if err := detour.RemoveVertex(mid); err != nil {
		gen.record(Attempt{Strategy: paths.AvoidMidpoint, Outcome: NodeMissing, Removed: mid, Err: err})
		return
	}
	p, _, err := dijkstra.ShortestPath(detour, gen.start, gen.goal, dijkstra.WithContext(gen.opts.Ctx))
	if err != nil {
		gen.noPath(paths.AvoidMidpoint, mid, err)
		return
	}
	gen.offer(paths.AvoidMidpoint, p, mid)
}
