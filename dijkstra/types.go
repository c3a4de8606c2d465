// File: types.go
// Role: Options, functional option constructors and sentinel errors for Dijkstra.

package dijkstra

import (
	"context"
	"errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     – starting vertex ID (must be non-empty and present in the graph).
// Target     – optional vertex; the search stops once its distance is final.
// ReturnPath – if true, return the predecessor map; otherwise prev map is nil.
// Ctx        – checked before every settled vertex; cancellation aborts the run.
type Options struct {
	Source     string
	Target     string
	ReturnPath bool
	Ctx        context.Context
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the search as soon as the target's distance is settled.
// Distances of vertices not yet settled at that moment stay +Inf.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithContext sets the context that can cancel a long search. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options for the given source with no target,
// no predecessor map and a background context.
func DefaultOptions(source string) Options {
	return Options{Source: source, Ctx: context.Background()}
}
