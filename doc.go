// Package greedyroute computes and compares vehicle routes over city road
// networks.
//
// A request between two intersections yields up to three routes: the
// shortest by length, the one with the fewest streets, a detour that avoids
// the middle of the shortest route, and the route a greedy best-first search
// finds by always heading for the vertex closest to the goal. Routes that
// overlap too much are dropped so the displayed set stays diverse.
//
// Packages, leaves first:
//
//	core/          thread-safe road graph, Simplify, views
//	heuristic/     straight-line distance between vertex coordinates
//	greedy/        greedy best-first search with exploration trace
//	dijkstra/      minimum-length paths
//	bfs/           minimum-hop paths, weak components
//	paths/         path similarity, fingerprints, lengths
//	alternatives/  the three alternative strategies
//	assembler/     folds the greedy route into the final list
//	routing/       ComputeRoutes, sessions
//	roadnet/       node-link JSON and OpenStreetMap loaders
//	builder/       synthetic line, grid and geometric networks
//
// Application code lives in internal/ (config, server, ui) and the
// greedyroute command in cmd/greedyroute.
//
// Quick example:
//
//	g, _ := roadnet.LoadFile(ctx, "city.json")
//	net, _ := routing.NewNetwork(g)
//	res, _ := routing.ComputeRoutes(net, "101", "245")
//	for _, r := range res.Routes {
//		fmt.Println(r.Source, r.Length, r.Path)
//	}
package greedyroute
