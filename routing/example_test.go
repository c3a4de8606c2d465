package routing_test

import (
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/routing"
)

func ExampleComputeRoutes() {
	g := core.NewRoadGraph()
	for id, p := range map[string][2]float64{
		"A": {0, 0}, "B": {2, 2}, "C": {2, -1}, "D": {4, 2}, "E": {5, -1}, "F": {6, 0},
	} {
		_ = g.AddVertex(id, core.WithCoordinates(p[0], p[1]))
	}
	for _, s := range []struct {
		u, v string
		len  float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5},
		{"C", "D", 9}, {"C", "E", 10}, {"D", "F", 6}, {"E", "F", 3},
	} {
		_, _ = g.AddEdge(s.u, s.v, s.len)
		_, _ = g.AddEdge(s.v, s.u, s.len)
	}

	net, err := routing.NewNetwork(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := routing.ComputeRoutes(net, "A", "F",
		routing.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, r := range res.Routes {
		fmt.Printf("#%d %-15s %4.0f %v\n", i+1, r.Source, r.Length, r.Path)
	}
	for _, a := range res.Attempts {
		fmt.Printf("%s: %s\n", a.Strategy, a.Outcome)
	}
	fmt.Println("greedy:", res.Greedy.Outcome)
	// Output:
	// #1 shortest_weight   14 [A C B D F]
	// #2 greedy            15 [A C E F]
	// shortest_weight: accepted
	// fewest_hops: too_similar
	// avoid_midpoint: too_similar
	// greedy: included
}
