package routing

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/alternatives"
	"github.com/katalvlaran/greedyroute/assembler"
	"github.com/katalvlaran/greedyroute/greedy"
	"github.com/katalvlaran/greedyroute/paths"
)

// Options configures ComputeRoutes.
type Options struct {
	Ctx context.Context
	// MaxAlternatives bounds both the generated candidates and the final list.
	MaxAlternatives int
	// AlternativeSimilarity is the generator's Jaccard threshold.
	AlternativeSimilarity float64
	// GreedyAcceptance is the threshold for folding the greedy route in.
	GreedyAcceptance float64
	Logger           *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns 3 alternatives, similarity 0.3, greedy acceptance 0.7
// and slog.Default().
func DefaultOptions() Options {
	return Options{
		Ctx:                   context.Background(),
		MaxAlternatives:       alternatives.DefaultMaxCount,
		AlternativeSimilarity: alternatives.DefaultSimilarityThreshold,
		GreedyAcceptance:      assembler.DefaultAcceptanceThreshold,
	}
}

// WithContext bounds the greedy search; the caller's timeout covers the whole request.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxAlternatives sets the display budget.
func WithMaxAlternatives(n int) Option {
	return func(o *Options) { o.MaxAlternatives = n }
}

// WithAlternativeSimilarity sets the generator's similarity threshold.
func WithAlternativeSimilarity(th float64) Option {
	return func(o *Options) { o.AlternativeSimilarity = th }
}

// WithGreedyAcceptance sets the greedy route's acceptance threshold.
func WithGreedyAcceptance(th float64) Option {
	return func(o *Options) { o.GreedyAcceptance = th }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// GreedyReport describes the greedy search of one request.
type GreedyReport struct {
	Path    []string                `json:"path,omitempty"`
	Found   bool                    `json:"found"`
	Outcome assembler.GreedyOutcome `json:"outcome"`
	// Index is the greedy route's position in Result.Routes, or -1.
	Index int `json:"index"`
	// Match is the position of the route the greedy path duplicates, or -1.
	Match int `json:"match"`
	// Err explains a missing path: ErrNoPathFound or a search failure.
	Err error `json:"-"`
}

// Result is everything a viewer needs for one computed request.
type Result struct {
	Start      string                 `json:"start"`
	End        string                 `json:"end"`
	Routes     []assembler.Route      `json:"routes"`
	Greedy     GreedyReport           `json:"greedy"`
	Trace      []greedy.Step          `json:"trace"`
	Attempts   []alternatives.Attempt `json:"attempts"`
	Degenerate bool                   `json:"degenerate"`
	// Coordinates holds the position of every vertex in Routes and Trace.
	Coordinates map[string]Point `json:"coordinates"`
	Elapsed     time.Duration    `json:"elapsed"`
}

// Empty reports a request that ran but produced no usable route.
func (r *Result) Empty() bool { return len(r.Routes) == 0 }

// ComputeRoutes computes the displayed routes from start to end.
//
// Steps:
//  1. Validate the network (ErrGraphEmpty) and both endpoints (ErrNodeNotFound).
//  2. start == end: return the single-vertex route, flagged Degenerate.
//  3. Greedy search on the raw network; failure is recorded, not returned.
//  4. Alternatives on the simplified network.
//  5. Fold the greedy route in and attach coordinates.
//
// Only ErrGraphEmpty, ErrNodeNotFound, invalid options and context
// cancellation abort the request.
func ComputeRoutes(net *Network, start, end string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}

	if net == nil {
		return nil, ErrGraphEmpty
	}
	for _, id := range []string{start, end} {
		if !net.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	began := time.Now()
	res := &Result{Start: start, End: end}
	genOpts := []alternatives.Option{
		alternatives.WithMaxCount(o.MaxAlternatives),
		alternatives.WithSimilarityThreshold(o.AlternativeSimilarity),
		alternatives.WithContext(o.Ctx),
	}
	asmOpts := []assembler.Option{
		assembler.WithMaxCount(o.MaxAlternatives),
		assembler.WithAcceptanceThreshold(o.GreedyAcceptance),
	}

	var greedyPath []string
	var candidates []alternatives.Candidate
	if start == end {
		res.Degenerate = true
		greedyPath = []string{start}
		candidates = []alternatives.Candidate{{Path: []string{start}, Strategy: paths.ShortestWeight}}
		log.Debug("degenerate route request", "node", start)
	} else {
		gr, err := greedy.Search(net.Raw, start, end, greedy.WithContext(o.Ctx))
		switch {
		case err != nil && o.Ctx.Err() != nil:
			return nil, err
		case err != nil:
			res.Greedy.Err = err
			log.Warn("greedy search failed", "start", start, "end", end, "err", err)
		default:
			res.Trace = gr.Trace
			greedyPath = gr.Path
			if !gr.Found {
				res.Greedy.Err = fmt.Errorf("%w: greedy %q -> %q", ErrNoPathFound, start, end)
			}
		}

		alts, err := alternatives.Generate(net.Simplified, start, end, genOpts...)
		if err != nil {
			return nil, fmt.Errorf("routing: alternatives: %w", err)
		}
		candidates = alts.Candidates
		res.Attempts = alts.Attempts
		for _, a := range alts.Attempts {
			log.Debug("alternative attempt", "strategy", a.Strategy, "outcome", a.Outcome)
		}
	}

	asm, err := assembler.Assemble(net.Simplified, greedyPath, candidates, asmOpts...)
	if err != nil {
		return nil, fmt.Errorf("routing: assemble: %w", err)
	}
	res.Routes = asm.Routes
	res.Greedy.Path = greedyPath
	res.Greedy.Found = asm.GreedyFound
	res.Greedy.Outcome = asm.GreedyOutcome
	res.Greedy.Index = asm.GreedyIndex
	res.Greedy.Match = asm.GreedyMatch
	res.Coordinates = collectCoordinates(net, res)
	res.Elapsed = time.Since(began)

	log.Info("routes computed",
		"start", start, "end", end,
		"routes", len(res.Routes),
		"greedy", string(res.Greedy.Outcome),
		"trace", len(res.Trace),
		"elapsed", res.Elapsed)

	return res, nil
}

func collectCoordinates(net *Network, res *Result) map[string]Point {
	out := make(map[string]Point)
	add := func(id string) {
		if _, done := out[id]; done {
			return
		}
		if x, y, ok := net.Raw.Coordinates(id); ok {
			out[id] = Point{X: x, Y: y}
		}
	}
	for _, r := range res.Routes {
		for _, id := range r.Path {
			add(id)
		}
	}
	for _, s := range res.Trace {
		add(s.From)
		add(s.To)
	}
	for _, id := range res.Greedy.Path {
		add(id)
	}

	return out
}
