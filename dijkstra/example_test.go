package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/dijkstra"
)

// ExampleShortestPath picks the cheaper side of a triangle.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	path, length, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, length)
	// Output:
	// [A B C] 3
}
