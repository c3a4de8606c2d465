package greedy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/greedy"
	"github.com/katalvlaran/greedyroute/heuristic"
)

type arc struct{ from, to string }

// buildPlaced creates a raw road graph with the given vertex positions and directed arcs.
func buildPlaced(t *testing.T, pos map[string][2]float64, arcs []arc) *core.Graph {
	t.Helper()
	g := core.NewRoadGraph()
	for id, p := range pos {
		require.NoError(t, g.AddVertex(id, core.WithCoordinates(p[0], p[1])))
	}
	for _, a := range arcs {
		_, err := g.AddEdge(a.from, a.to, 1)
		require.NoError(t, err)
	}

	return g
}

// buildLine creates A–B–C–D–E with arcs in both directions and unit spacing.
func buildLine(t *testing.T) *core.Graph {
	t.Helper()
	ids := []string{"A", "B", "C", "D", "E"}
	pos := make(map[string][2]float64, len(ids))
	var arcs []arc
	for i, id := range ids {
		pos[id] = [2]float64{float64(i), 0}
		if i > 0 {
			arcs = append(arcs, arc{ids[i-1], id}, arc{id, ids[i-1]})
		}
	}

	return buildPlaced(t, pos, arcs)
}

func TestSearch_Validation(t *testing.T) {
	_, err := greedy.Search(nil, "A", "B")
	assert.ErrorIs(t, err, greedy.ErrNilGraph)

	g := buildLine(t)
	_, err = greedy.Search(g, "Z", "A")
	assert.ErrorIs(t, err, greedy.ErrStartNotFound)
	_, err = greedy.Search(g, "A", "Z")
	assert.ErrorIs(t, err, greedy.ErrGoalNotFound)
}

func TestSearch_UniquePath(t *testing.T) {
	res, err := greedy.Search(buildLine(t), "A", "E")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Path)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, []greedy.Step{
		{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"}, {From: "D", To: "E"},
	}, res.Trace)
}

func TestSearch_SelfLoopsNeverTraced(t *testing.T) {
	raw := buildLine(t)
	for _, id := range []string{"A", "C"} {
		_, err := raw.AddEdge(id, id, 1)
		require.NoError(t, err)
	}
	g, err := core.Simplify(raw)
	require.NoError(t, err)
	require.True(t, g.HasEdge("C", "C"))

	res, err := greedy.Search(g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Path)
	for _, st := range res.Trace {
		assert.NotEqual(t, st.From, st.To, "loop %v must not be discovered", st)
	}
}

func TestSearch_StartIsGoal(t *testing.T) {
	res, err := greedy.Search(buildLine(t), "C", "C")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"C"}, res.Path)
	assert.Empty(t, res.Trace)
}

func TestSearch_UnreachableGoal(t *testing.T) {
	g := buildLine(t)
	require.NoError(t, g.AddVertex("island", core.WithCoordinates(2, 5)))

	res, err := greedy.Search(g, "A", "island")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Len(t, res.Trace, 4, "all four forward discoveries are traced")
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, res.Order)
}

func TestSearch_LastDiscoveredPredecessorWins(t *testing.T) {
	g := buildPlaced(t,
		map[string][2]float64{"S": {0, 0}, "A": {6, 0}, "B": {5, 1}, "C": {0, 5}, "G": {10, 0}},
		[]arc{{"S", "A"}, {"S", "B"}, {"A", "C"}, {"B", "C"}, {"C", "G"}},
	)

	res, err := greedy.Search(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "C", "G"}, res.Path)
	assert.Equal(t, []greedy.Step{
		{From: "S", To: "A"}, {From: "S", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "C"}, {From: "C", To: "G"},
	}, res.Trace)
}

func TestSearch_TiesResolvedByDiscoveryOrder(t *testing.T) {
	g := buildPlaced(t,
		map[string][2]float64{"S": {0, 0}, "Z": {0, 0}, "Y": {0, 0}, "X": {0, 0}},
		[]arc{{"S", "Z"}, {"S", "Y"}, {"S", "X"}},
	)

	res, err := greedy.Search(g, "S", "X", greedy.WithHeuristic(heuristic.Zero))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Z", "Y"}, res.Order)
	assert.Equal(t, []string{"S", "X"}, res.Path)
}

func TestSearch_Deterministic(t *testing.T) {
	g := buildPlaced(t,
		map[string][2]float64{"S": {0, 0}, "A": {6, 0}, "B": {5, 1}, "C": {0, 5}, "G": {10, 0}},
		[]arc{{"S", "A"}, {"S", "B"}, {"A", "C"}, {"B", "C"}, {"C", "G"}, {"A", "G"}},
	)

	first, err := greedy.Search(g, "S", "G")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := greedy.Search(g, "S", "G")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearch_HeuristicFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := greedy.Search(buildLine(t), "A", "E", greedy.WithHeuristic(func(string, string) (float64, error) {
		return 0, boom
	}))
	assert.ErrorIs(t, err, greedy.ErrHeuristic)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := greedy.Search(buildLine(t), "A", "E", greedy.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
