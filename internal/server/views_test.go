package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/assembler"
	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/paths"
	"github.com/katalvlaran/greedyroute/routing"
)

func sessionWithRoute(t *testing.T, route []string) *routing.Session {
	t.Helper()
	g := core.NewRoadGraph()
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	sess, err := routing.NewSession("test", g)
	require.NoError(t, err)

	next := *sess
	next.Result = &routing.Result{
		Start:  route[0],
		End:    route[len(route)-1],
		Routes: []assembler.Route{{Path: route, Length: 5}},
		Greedy: routing.GreedyReport{Index: -1, Match: -1},
	}
	next.Selected = 0

	return &next
}

func TestSessionView_Legs(t *testing.T) {
	v, err := newSessionView(sessionWithRoute(t, []string{"A", "B"}))
	require.NoError(t, err)
	require.NotNil(t, v.Result)
	require.Len(t, v.Result.Routes, 1)
	assert.Equal(t, []float64{5}, v.Result.Routes[0].Legs)
}

func TestSessionView_BrokenRouteFails(t *testing.T) {
	sess := sessionWithRoute(t, []string{"B", "A"})

	_, err := newSessionView(sess)
	assert.ErrorIs(t, err, paths.ErrBrokenPath)

	s := New(StaticAreas{}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	rec := httptest.NewRecorder()
	s.writeSession(rec, http.StatusOK, sess)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "route #1")
}
