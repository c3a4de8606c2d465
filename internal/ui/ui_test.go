package ui_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/builder"
	"github.com/katalvlaran/greedyroute/internal/ui"
	"github.com/katalvlaran/greedyroute/routing"
)

func init() { color.NoColor = true }

func compute(t *testing.T, n int, start, end string) (*routing.Network, *routing.Result) {
	t.Helper()
	g, err := builder.BuildRoadGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Line(n))
	require.NoError(t, err)
	net, err := routing.NewNetwork(g)
	require.NoError(t, err)
	res, err := routing.ComputeRoutes(net, start, end,
		routing.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	return net, res
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	ui.Table(&buf, []string{"A", "LONG"}, [][]string{{"xyz", "1"}, {"q", "22"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  A    LONG", lines[0])
	assert.Equal(t, "  xyz  1", lines[2])
	assert.Equal(t, "  q    22", lines[3])

	buf.Reset()
	ui.Table(&buf, []string{"A"}, nil)
	assert.Empty(t, buf.String())
}

func TestRoutes(t *testing.T) {
	net, res := compute(t, 5, "A", "E")
	var buf bytes.Buffer
	ui.Routes(&buf, net, res)
	ui.Greedy(&buf, res)
	ui.Attempts(&buf, net, res)

	out := buf.String()
	assert.Contains(t, out, "from N001 to N005")
	assert.Contains(t, out, "N001 → N002 → N003 → N004 → N005")
	assert.Contains(t, out, "greedy search: duplicate, 4 edges explored, same as #1\n")
	assert.Contains(t, out, "avoid_midpoint")
}

func TestRoutes_Degenerate(t *testing.T) {
	net, res := compute(t, 3, "B", "B")
	var buf bytes.Buffer
	ui.Routes(&buf, net, res)
	assert.Contains(t, buf.String(), "start and end are the same node")
}

func TestRoutes_LongPathElided(t *testing.T) {
	net, res := compute(t, 12, "A", "L")
	var buf bytes.Buffer
	ui.Routes(&buf, net, res)
	assert.Contains(t, buf.String(), "N004 → …(4)… → N009")
}
