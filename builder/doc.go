// Package builder generates synthetic road networks for demos, benchmarks
// and tests.
//
// A Constructor adds vertices (with planar coordinates) and arcs to a graph;
// BuildRoadGraph creates a raw road graph (core.NewRoadGraph) and runs the
// constructors in order. Every road segment is emitted as two arcs unless
// WithOneWay is set.
//
// Topologies:
//
//	Line(n)                   n vertices spaced along the x axis
//	Grid(rows, cols)          4-neighborhood lattice, IDs "r,c"
//	RandomGeometric(n, r)     n random points joined when closer than r
//
// Configuration is passed through functional options:
//
//	WithIDScheme / WithSymbolIDs / WithPrefixIDs   vertex naming
//	WithSpacing                                    distance between lattice points
//	WithSeed / WithRand                            randomness source
//	WithWeightFn / WithJitter / WithConstantWeight segment lengths
//
// Option constructors panic on meaningless input; constructors return
// sentinel errors (ErrTooFewVertices, ErrNeedRandSource, ...) and never panic.
//
// Given the same options and seed a constructor yields an identical graph,
// including edge insertion order.
package builder
