// File: types.go
// Role: options, sentinel errors and the Result of greedy best-first search.

package greedy

import (
	"context"
	"errors"

	"github.com/katalvlaran/greedyroute/heuristic"
)

// Sentinel errors for Search.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("greedy: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("greedy: start vertex not found")

	// ErrGoalNotFound is returned when the goal vertex is absent.
	ErrGoalNotFound = errors.New("greedy: goal vertex not found")

	// ErrHeuristic wraps a failure of the heuristic function.
	ErrHeuristic = errors.New("greedy: heuristic failed")
)

// Step is one discovered edge (From → To) of the exploration trace.
type Step struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Result is the outcome of one search.
//
// Path is nil when the goal was not reached; Trace and Order are populated
// regardless, so the exploration can be shown even for a failed search.
type Result struct {
	// Path lists vertex IDs from start to goal inclusive.
	Path []string
	// Trace records every (current, neighbor) discovery in order.
	Trace []Step
	// Order lists expanded vertices in expansion order.
	Order []string
	// Found reports whether Path is a valid start→goal path.
	Found bool
}

// Options configures Search.
type Options struct {
	// Ctx is checked once per frontier pop.
	Ctx context.Context
	// Heuristic ranks frontier vertices; nil selects heuristic.Euclidean on the searched graph.
	Heuristic heuristic.Func
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context and the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the distance estimate.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
