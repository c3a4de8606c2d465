package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedyroute/builder"
	"github.com/katalvlaran/greedyroute/core"
)

func TestLine(t *testing.T) {
	g, err := builder.BuildRoadGraph([]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithSpacing(2)}, builder.Line(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 6, g.EdgeCount())

	succ, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, succ, "B←A is inserted before B→C")

	x, _, ok := g.Coordinates("D")
	require.True(t, ok)
	assert.Equal(t, 6.0, x)

	e, err := g.EdgeBetween("C", "D")
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.Length())
}

func TestLine_OneWay(t *testing.T) {
	g, err := builder.BuildRoadGraph([]builder.BuilderOption{builder.WithOneWay()}, builder.Line(3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("0", "1"))
	assert.False(t, g.HasEdge("1", "0"))
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildRoadGraph(nil, builder.Grid(3, 4))
	require.NoError(t, err)

	assert.Equal(t, 12, g.VertexCount())
	// 3*3 horizontal + 2*4 vertical segments, two arcs each.
	assert.Equal(t, 2*(9+8), g.EdgeCount())

	x, y, ok := g.Coordinates(builder.GridID(2, 3))
	require.True(t, ok)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 2.0, y)

	succ, err := g.NeighborIDs("1,1")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "1,0", "1,2", "2,1"}, succ)
}

func TestGrid_Undirected(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("1,1", "0,1"))
}

func TestRandomGeometric_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildRoadGraph(
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithJitter(0.2)},
			builder.RandomGeometric(30, 2.5))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()

	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
		assert.Equal(t, ea[i].Weight, eb[i].Weight)
	}

	for _, e := range ea {
		fx, fy, _ := a.Coordinates(e.From)
		tx, ty, _ := a.Coordinates(e.To)
		dx, dy := fx-tx, fy-ty
		d2 := dx*dx + dy*dy
		assert.Less(t, d2, 2.5*2.5)
		assert.GreaterOrEqual(t, e.Weight*e.Weight, d2-1e-9, "jitter never shortens a segment")
	}
}

func TestConstructorErrors(t *testing.T) {
	_, err := builder.BuildRoadGraph(nil, builder.Line(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildRoadGraph(nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildRoadGraph(nil, builder.RandomGeometric(5, 1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildRoadGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGeometric(5, 0))
	assert.ErrorIs(t, err, builder.ErrBadRadius)

	_, err = builder.BuildRoadGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, 3.0, builder.DistanceWeightFn(nil, 3))
	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(nil, 3))
	assert.Equal(t, 3.0, builder.JitterWeightFn(0.5)(nil, 3))

	w := builder.JitterWeightFn(0.5)(rand.New(rand.NewSource(3)), 2)
	assert.GreaterOrEqual(t, w, 2.0)
	assert.LessOrEqual(t, w, 3.0)

	g, err := builder.BuildRoadGraph([]builder.BuilderOption{builder.WithConstantWeight(5)}, builder.Line(2))
	require.NoError(t, err)
	e, err := g.EdgeBetween("0", "1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, e.Length())
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.SymbolIDFn(26))
	assert.Equal(t, "n7", builder.PrefixIDFn("n")(7))
	assert.Equal(t, "12", builder.DefaultIDFn(12))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.JitterWeightFn(-0.1) })
	assert.Panics(t, func() { builder.SymbolIDFn(-1) })
}
