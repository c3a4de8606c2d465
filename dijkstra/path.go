// File: path.go
// Role: point-to-point shortest path on top of Dijkstra.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/greedyroute/core"
)

// ShortestPath returns the minimum-total-length path from src to dst and its
// length. A request with src == dst yields the single-node path of length 0.
//
// Extra opts (typically WithContext) are applied after the source, target and
// predecessor options.
//
// Errors: the errors of Dijkstra, and ErrNoPath when dst cannot be reached
// from src.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) ([]string, float64, error) {
	all := append([]Option{Source(src), WithTarget(dst), WithReturnPath()}, opts...)
	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(dist[dst], 1) {
		return nil, 0, fmt.Errorf("%w: %q -> %q", ErrNoPath, src, dst)
	}

	var rev []string
	for cur := dst; cur != src; cur = prev[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, src)

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, dist[dst], nil
}
