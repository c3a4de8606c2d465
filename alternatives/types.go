// File: types.go
// Role: options, outcomes and result types of the alternative route generator.

package alternatives

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/greedyroute/paths"
)

// Default limits.
const (
	DefaultMaxCount            = 3
	DefaultSimilarityThreshold = 0.3
)

// Sentinel errors that abort a whole Generate call.
var (
	ErrNilGraph       = errors.New("alternatives: graph is nil")
	ErrVertexNotFound = errors.New("alternatives: vertex not found")
	ErrBadMaxCount    = errors.New("alternatives: max count must be positive")
	ErrBadThreshold   = errors.New("alternatives: similarity threshold must be within [0, 1]")
)

// Outcome explains what happened to one strategy attempt.
type Outcome string

const (
	// Accepted: the path was added to the candidates.
	Accepted Outcome = "accepted"
	// NoPath: the strategy found no route between the endpoints.
	NoPath Outcome = "no_path"
	// Duplicate: the path equals an accepted candidate.
	Duplicate Outcome = "duplicate"
	// TooSimilar: the path overlaps an accepted candidate beyond the threshold.
	TooSimilar Outcome = "too_similar"
	// NotApplicable: the strategy's precondition did not hold.
	NotApplicable Outcome = "not_applicable"
	// NodeMissing: the vertex to remove was already gone from the copy.
	NodeMissing Outcome = "node_missing"
)

// Attempt is the record of one strategy run.
type Attempt struct {
	Strategy paths.Source `json:"strategy"`
	Outcome  Outcome      `json:"outcome"`
	// Path is the route the strategy produced, even if it was rejected.
	Path []string `json:"path,omitempty"`
	// Removed is the vertex taken out of the network copy (AvoidMidpoint only).
	Removed string `json:"removed,omitempty"`
	// Err is the underlying failure for NoPath and NodeMissing.
	Err error `json:"-"`
}

// Candidate is one accepted route with its total length on the searched graph.
type Candidate struct {
	Path     []string     `json:"path"`
	Length   float64      `json:"length"`
	Strategy paths.Source `json:"strategy"`
}

// Result holds accepted candidates, ascending by Length, and every attempt
// in execution order.
type Result struct {
	Candidates []Candidate
	Attempts   []Attempt
}

// Paths returns the candidate vertex sequences in ranked order.
func (r *Result) Paths() [][]string {
	out := make([][]string, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = c.Path
	}

	return out
}

// Options configures Generate.
type Options struct {
	MaxCount            int
	SimilarityThreshold float64
	// Ctx cancels the underlying searches; a cancelled call returns its error.
	Ctx context.Context

	err error
}

// Option mutates Options; an invalid value is reported by Generate.
type Option func(*Options)

// DefaultOptions returns up to three candidates at similarity 0.3.
func DefaultOptions() Options {
	return Options{
		MaxCount:            DefaultMaxCount,
		SimilarityThreshold: DefaultSimilarityThreshold,
		Ctx:                 context.Background(),
	}
}

// WithContext sets the context handed to every search. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCount bounds the number of returned candidates.
func WithMaxCount(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxCount, n)
			return
		}
		o.MaxCount = n
	}
}

// WithSimilarityThreshold sets the highest Jaccard similarity a new candidate
// may have with any accepted one.
func WithSimilarityThreshold(th float64) Option {
	return func(o *Options) {
		if !(th >= 0 && th <= 1) {
			o.err = fmt.Errorf("%w: %v", ErrBadThreshold, th)
			return
		}
		o.SimilarityThreshold = th
	}
}
