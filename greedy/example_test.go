package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/greedy"
)

// cityGraph models six intersections A–F joined by two-way streets:
//
//	        [B]-----5-----[D]
//	       / |           /  \
//	    4 /  1         9/    \6
//	     /   |         /      \
//	   [A]-2-[C]------       [F]
//	           \              /
//	            10---[E]---3--
func cityGraph() *core.Graph {
	g := core.NewRoadGraph()
	coords := map[string][2]float64{
		"A": {0, 0}, "B": {2, 2}, "C": {2, -1}, "D": {4, 2}, "E": {5, -1}, "F": {6, 0},
	}
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		_ = g.AddVertex(id, core.WithCoordinates(coords[id][0], coords[id][1]))
	}
	streets := []struct {
		u, v string
		len  float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5},
		{"C", "D", 9}, {"C", "E", 10}, {"D", "F", 6}, {"E", "F", 3},
	}
	for _, s := range streets {
		_, _ = g.AddEdge(s.u, s.v, s.len)
		_, _ = g.AddEdge(s.v, s.u, s.len)
	}

	return g
}

// The search heads straight for F by air distance: from C it jumps to E,
// the closest vertex to F, and ignores that the C–E street is long.
func ExampleSearch() {
	res, err := greedy.Search(cityGraph(), "A", "F")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path: ", res.Path)
	fmt.Println("order:", res.Order)
	fmt.Println("trace:", res.Trace)
	// Output:
	// path:  [A C E F]
	// order: [A C E]
	// trace: [{A B} {A C} {C B} {C D} {C E} {E F}]
}
