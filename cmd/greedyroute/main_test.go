package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

const squareDoc = `{
  "directed": false,
  "nodes": [
    {"id": 1, "x": 0, "y": 0},
    {"id": 2, "x": 100, "y": 0},
    {"id": 3, "x": 100, "y": 100},
    {"id": 4, "x": 0, "y": 100}
  ],
  "links": [
    {"source": 1, "target": 2, "length": 100},
    {"source": 2, "target": 3, "length": 100},
    {"source": 1, "target": 4, "length": 120},
    {"source": 4, "target": 3, "length": 120}
  ]
}`

func writeGraph(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "square.json")
	require.NoError(t, os.WriteFile(path, []byte(squareDoc), 0o600))
	return path
}

func TestRouteCommand(t *testing.T) {
	out, err := run(t, "route", "--graph", writeGraph(t), "--from", "1", "--to", "3", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "from N001 to N003")
	assert.Contains(t, out, "N001 → N002 → N003")
	assert.Contains(t, out, "N001 → N004 → N003")
	assert.Contains(t, out, "greedy search")
}

func TestRouteCommand_JSON(t *testing.T) {
	out, err := run(t, "route", "--graph", writeGraph(t), "--from", "1", "--to", "3", "--json", "--log-level", "error")
	require.NoError(t, err)

	var res struct {
		Routes []struct {
			Path   []string `json:"path"`
			Length float64  `json:"length"`
		} `json:"routes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Routes)
	assert.Equal(t, []string{"1", "2", "3"}, res.Routes[0].Path)
	assert.Equal(t, 200.0, res.Routes[0].Length)
}

func TestRouteCommand_UnknownNode(t *testing.T) {
	_, err := run(t, "route", "--graph", writeGraph(t), "--from", "1", "--to", "99", "--log-level", "error")
	assert.ErrorContains(t, err, "node not found")
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo", "--rows", "4", "--cols", "4", "--seed", "3", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "demo grid 4×4, seed 3")
	assert.Contains(t, out, "ROUTE")
}

func TestDemoCommand_RandomLayout(t *testing.T) {
	out, err := run(t, "demo", "--layout", "random", "--nodes", "12", "--radius", "1e6", "--seed", "5", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "demo random 12 nodes, radius 1e+06, seed 5")
	assert.Contains(t, out, "ROUTE")

	_, err = run(t, "demo", "--layout", "hex", "--log-level", "error")
	assert.ErrorContains(t, err, `unknown layout "hex"`)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("routing:\n  max_alternatives: 0\n"), 0o600))

	_, err := run(t, "--config", path, "demo")
	assert.Error(t, err)
}
