// Package assembler folds the greedy route into the ranked alternative
// routes and trims the list to its display size.
//
// The greedy route is a bonus option: it is appended after the ranked
// alternatives, never re-ranked, and only when it differs enough from all of
// them. Its acceptance threshold is configured independently of the
// alternative generator's own similarity threshold.
package assembler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/greedyroute/alternatives"
	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/paths"
)

// Defaults.
const (
	DefaultMaxCount            = 3
	DefaultAcceptanceThreshold = 0.7
)

var (
	ErrNilGraph     = errors.New("assembler: graph is nil")
	ErrBadMaxCount  = errors.New("assembler: max count must be positive")
	ErrBadThreshold = errors.New("assembler: acceptance threshold must be within [0, 1]")
)

// GreedyOutcome says what became of the greedy route.
type GreedyOutcome string

const (
	GreedyNotFound   GreedyOutcome = "not_found"
	GreedyIncluded   GreedyOutcome = "included"
	GreedyDuplicate  GreedyOutcome = "duplicate"
	GreedyTooSimilar GreedyOutcome = "too_similar"
	GreedyTruncated  GreedyOutcome = "truncated"
	GreedyBroken     GreedyOutcome = "broken"
)

// Route is one entry of the final list.
type Route struct {
	Path   []string     `json:"path"`
	Length float64      `json:"length"`
	Source paths.Source `json:"source"`
	Greedy bool         `json:"greedy"`
}

// Steps is the number of edges along the route.
func (r Route) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// AverageStep is Length divided by Steps, or 0 for a single-vertex route.
func (r Route) AverageStep() float64 {
	if r.Steps() == 0 {
		return 0
	}

	return r.Length / float64(r.Steps())
}

// Legs returns the length of every step, measured on g.
func (r Route) Legs(g *core.Graph) ([]float64, error) {
	return paths.Legs(g, r.Path)
}

// Result is the final ordered route list plus the fate of the greedy route.
type Result struct {
	Routes        []Route
	GreedyFound   bool
	GreedyOutcome GreedyOutcome
	// GreedyIndex is the greedy route's position in Routes, or -1.
	GreedyIndex int
	// GreedyMatch is the position in Routes of the route the greedy path
	// duplicates verbatim, or -1.
	GreedyMatch int
}

// GreedyIncluded reports whether the greedy route is part of Routes.
func (r *Result) GreedyIncluded() bool { return r.GreedyIndex >= 0 }

// Options configures Assemble.
type Options struct {
	MaxCount            int
	AcceptanceThreshold float64

	err error
}

// Option mutates Options; invalid values are reported by Assemble.
type Option func(*Options)

// DefaultOptions returns MaxCount 3 and acceptance threshold 0.7.
func DefaultOptions() Options {
	return Options{MaxCount: DefaultMaxCount, AcceptanceThreshold: DefaultAcceptanceThreshold}
}

// WithMaxCount bounds the final list length.
func WithMaxCount(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxCount, n)
			return
		}
		o.MaxCount = n
	}
}

// WithAcceptanceThreshold sets the highest Jaccard similarity the greedy
// route may have with any alternative and still be shown.
func WithAcceptanceThreshold(th float64) Option {
	return func(o *Options) {
		if !(th >= 0 && th <= 1) {
			o.err = fmt.Errorf("%w: %v", ErrBadThreshold, th)
			return
		}
		o.AcceptanceThreshold = th
	}
}

// Assemble builds the final route list from ranked candidates and the greedy
// path (nil or empty when the greedy search failed). g is the simplified
// network used to measure the greedy route.
//
// The greedy route is appended iff it is non-empty, not verbatim among the
// candidates, and no more than AcceptanceThreshold similar to each of them.
// The list is then truncated to MaxCount without re-sorting.
func Assemble(g *core.Graph, greedyPath []string, candidates []alternatives.Candidate, opts ...Option) (*Result, error) {
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

	res := &Result{
		Routes:        make([]Route, 0, len(candidates)+1),
		GreedyFound:   len(greedyPath) > 0,
		GreedyOutcome: GreedyNotFound,
		GreedyIndex:   -1,
		GreedyMatch:   -1,
	}
	existing := paths.NewSet()
	for _, c := range candidates {
		res.Routes = append(res.Routes, Route{Path: c.Path, Length: c.Length, Source: c.Strategy})
		existing.Add(c.Path)
	}

	if res.GreedyFound {
		switch existing.Judge(greedyPath, o.AcceptanceThreshold) {
		case paths.Duplicate:
			res.GreedyOutcome = GreedyDuplicate
			res.GreedyMatch, _ = existing.Lookup(greedyPath)
		case paths.TooSimilar:
			res.GreedyOutcome = GreedyTooSimilar
		default:
			length, err := paths.Weight(g, greedyPath)
			if err != nil {
				res.GreedyOutcome = GreedyBroken
				break
			}
			res.Routes = append(res.Routes, Route{Path: greedyPath, Length: length, Source: paths.Greedy, Greedy: true})
			res.GreedyOutcome = GreedyIncluded
			res.GreedyIndex = len(res.Routes) - 1
		}
	}

	if len(res.Routes) > o.MaxCount {
		res.Routes = res.Routes[:o.MaxCount]
		if res.GreedyIndex >= o.MaxCount {
			res.GreedyIndex = -1
			res.GreedyOutcome = GreedyTruncated
		}
		if res.GreedyMatch >= o.MaxCount {
			res.GreedyMatch = -1
		}
	}

	return res, nil
}
