package routing_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/alternatives"
	"github.com/katalvlaran/greedyroute/assembler"
	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/routing"
)

// lineNetwork is A–B–C–D–E with unit lengths in both directions, placed on the x axis.
func lineNetwork(t *testing.T) *core.Graph {
	t.Helper()
	ids := []string{"A", "B", "C", "D", "E"}
	g := core.NewRoadGraph()
	for i, id := range ids {
		require.NoError(t, g.AddVertex(id, core.WithCoordinates(float64(i), 0)))
		if i == 0 {
			continue
		}
		_, err := g.AddEdge(ids[i-1], id, 1)
		require.NoError(t, err)
		_, err = g.AddEdge(id, ids[i-1], 1)
		require.NoError(t, err)
	}

	return g
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestNewNetwork_Empty(t *testing.T) {
	_, err := routing.NewNetwork(nil)
	assert.ErrorIs(t, err, routing.ErrGraphEmpty)

	_, err = routing.NewNetwork(core.NewRoadGraph())
	assert.ErrorIs(t, err, routing.ErrGraphEmpty)

	onlyNodes := core.NewRoadGraph()
	require.NoError(t, onlyNodes.AddVertex("A"))
	_, err = routing.NewNetwork(onlyNodes)
	assert.ErrorIs(t, err, routing.ErrGraphEmpty)
}

func TestComputeRoutes_LineScenario(t *testing.T) {
	net, err := routing.NewNetwork(lineNetwork(t))
	require.NoError(t, err)

	res, err := routing.ComputeRoutes(net, "A", "E", routing.WithLogger(quietLogger()))
	require.NoError(t, err)

	require.Len(t, res.Routes, 1)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Routes[0].Path)
	assert.Equal(t, 4.0, res.Routes[0].Length)
	assert.Equal(t, 1.0, res.Routes[0].AverageStep())

	// The greedy route equals the shortest one and is therefore not repeated.
	assert.True(t, res.Greedy.Found)
	assert.Equal(t, assembler.GreedyDuplicate, res.Greedy.Outcome)
	assert.Equal(t, -1, res.Greedy.Index)
	assert.Equal(t, 0, res.Greedy.Match)
	assert.Len(t, res.Trace, 4)

	require.Len(t, res.Attempts, 3)
	assert.Equal(t, alternatives.Duplicate, res.Attempts[1].Outcome)
	assert.Equal(t, alternatives.NoPath, res.Attempts[2].Outcome)
	assert.Equal(t, "C", res.Attempts[2].Removed)
	assert.ErrorIs(t, res.Attempts[2].Err, routing.ErrNoPathFound)

	assert.Len(t, res.Coordinates, 5)
	assert.Equal(t, routing.Point{X: 4, Y: 0}, res.Coordinates["E"])
	assert.False(t, res.Empty())
}

func TestComputeRoutes_NodeNotFound(t *testing.T) {
	net, err := routing.NewNetwork(lineNetwork(t))
	require.NoError(t, err)

	_, err = routing.ComputeRoutes(net, "A", "Q")
	assert.ErrorIs(t, err, routing.ErrNodeNotFound)
	_, err = routing.ComputeRoutes(net, "Q", "A")
	assert.ErrorIs(t, err, routing.ErrNodeNotFound)
	_, err = routing.ComputeRoutes(nil, "A", "B")
	assert.ErrorIs(t, err, routing.ErrGraphEmpty)
}

func TestComputeRoutes_Degenerate(t *testing.T) {
	net, err := routing.NewNetwork(lineNetwork(t))
	require.NoError(t, err)

	res, err := routing.ComputeRoutes(net, "C", "C", routing.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.True(t, res.Degenerate)
	require.Len(t, res.Routes, 1)
	assert.Equal(t, []string{"C"}, res.Routes[0].Path)
	assert.Zero(t, res.Routes[0].Length)
	assert.Zero(t, res.Routes[0].AverageStep())
	assert.Empty(t, res.Trace)
}

func TestComputeRoutes_UnreachableIsEmptyNotError(t *testing.T) {
	g := lineNetwork(t)
	require.NoError(t, g.AddVertex("island", core.WithCoordinates(9, 9)))
	net, err := routing.NewNetwork(g)
	require.NoError(t, err)

	res, err := routing.ComputeRoutes(net, "A", "island", routing.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.False(t, res.Greedy.Found)
	assert.ErrorIs(t, res.Greedy.Err, routing.ErrNoPathFound)
	assert.NotEmpty(t, res.Trace)
}

func TestComputeRoutes_GreedyWithoutCoordinatesStillRoutes(t *testing.T) {
	g := core.NewRoadGraph()
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	net, err := routing.NewNetwork(g)
	require.NoError(t, err)

	res, err := routing.ComputeRoutes(net, "A", "B", routing.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Len(t, res.Routes, 1)
	assert.Error(t, res.Greedy.Err)
	assert.False(t, res.Greedy.Found)
}

func TestComputeRoutes_Cancelled(t *testing.T) {
	net, err := routing.NewNetwork(lineNetwork(t))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = routing.ComputeRoutes(net, "A", "E", routing.WithContext(ctx), routing.WithLogger(quietLogger()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeRoutes_BadOptions(t *testing.T) {
	net, err := routing.NewNetwork(lineNetwork(t))
	require.NoError(t, err)

	_, err = routing.ComputeRoutes(net, "A", "E", routing.WithMaxAlternatives(0))
	assert.ErrorIs(t, err, alternatives.ErrBadMaxCount)
}

func TestSession_Lifecycle(t *testing.T) {
	s, err := routing.NewSession("line", lineNetwork(t))
	require.NoError(t, err)
	assert.Equal(t, -1, s.Selected)
	assert.Nil(t, s.Result)

	computed, err := s.Compute("A", "E", routing.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Nil(t, s.Result, "original session is untouched")
	assert.Equal(t, s.ID, computed.ID)
	assert.Equal(t, 0, computed.Selected)

	_, err = computed.Select(1)
	assert.ErrorIs(t, err, routing.ErrSelectionOutOfRange)
	sel, err := computed.Select(0)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.Selected)

	reset := computed.Reset()
	assert.Nil(t, reset.Result)
	assert.Equal(t, -1, reset.Selected)
	assert.NotNil(t, computed.Result)

	_, err = reset.Select(0)
	assert.ErrorIs(t, err, routing.ErrSelectionOutOfRange)

	_, err = routing.NewSession("void", core.NewRoadGraph())
	assert.ErrorIs(t, err, routing.ErrGraphEmpty)
}

func TestStore(t *testing.T) {
	st := routing.NewStore()
	s, err := routing.NewSession("line", lineNetwork(t))
	require.NoError(t, err)
	st.Put(s)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	next, err := st.Update(s.ID, func(cur *routing.Session) (*routing.Session, error) {
		return cur.Compute("A", "C", routing.WithLogger(quietLogger()))
	})
	require.NoError(t, err)
	got, err = st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, next, got)

	_, err = st.Update(s.ID, func(cur *routing.Session) (*routing.Session, error) {
		return cur.Select(7)
	})
	assert.ErrorIs(t, err, routing.ErrSelectionOutOfRange)
	got, _ = st.Get(s.ID)
	assert.Same(t, next, got, "failed update keeps the stored session")

	require.NoError(t, st.Delete(s.ID))
	_, err = st.Get(s.ID)
	assert.ErrorIs(t, err, routing.ErrSessionNotFound)
	assert.ErrorIs(t, st.Delete(uuid.New()), routing.ErrSessionNotFound)
}

func TestNodeLabels(t *testing.T) {
	net, err := routing.NewNetwork(lineNetwork(t))
	require.NoError(t, err)

	assert.Equal(t, "N001", net.Label("A"))
	assert.Equal(t, "N005", net.Label("E"))
	assert.Equal(t, "zz", net.Label("zz"))

	nodes := net.Nodes()
	require.Len(t, nodes, 5)
	assert.Equal(t, routing.Node{ID: "B", Label: "N002", Point: routing.Point{X: 1}}, nodes[1])
}

func TestNodeLabels_FollowLoadOrder(t *testing.T) {
	g := core.NewRoadGraph()
	for _, id := range []string{"9", "10", "2"} {
		require.NoError(t, g.AddVertex(id, core.WithCoordinates(0, 0)))
	}
	_, err := g.AddEdge("9", "10", 1)
	require.NoError(t, err)

	labels := routing.NodeLabels(g)
	assert.Equal(t, map[string]string{"9": "N001", "10": "N002", "2": "N003"}, labels)
}
