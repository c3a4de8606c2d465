package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/greedyroute/builder"
	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/internal/ui"
	"github.com/katalvlaran/greedyroute/routing"
)

func demoCmd(a *app) *cobra.Command {
	var (
		layout     string
		rows, cols int
		nodes      int
		radius     float64
		seed       int64
		jitter     float64
		spacing    float64
		from, to   string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Route across a synthetic street network",
		Long: `Build a synthetic network and route across it.

The grid layout is a rows×cols street grid whose segment lengths are randomly
stretched; routes run from one corner to the opposite one (or --from/--to, as "r,c").
The random layout scatters --nodes intersections and joins those closer than
--radius meters; routes run from node 0 to the last node.

  greedyroute demo --rows 8 --cols 8 --seed 7
  greedyroute demo --layout random --nodes 40 --radius 250`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				g     *core.Graph
				title string
				err   error
			)
			switch layout {
			case "grid":
				g, err = demoGrid(rows, cols, seed, jitter, spacing)
				title = fmt.Sprintf("demo grid %d×%d, seed %d", rows, cols, seed)
				if from == "" {
					from = builder.GridID(0, 0)
				}
				if to == "" {
					to = builder.GridID(rows-1, cols-1)
				}
			case "random":
				g, err = demoRandom(nodes, radius, seed, jitter, spacing)
				title = fmt.Sprintf("demo random %d nodes, radius %g, seed %d", nodes, radius, seed)
				if from == "" {
					from = builder.DefaultIDFn(0)
				}
				if to == "" {
					to = builder.DefaultIDFn(nodes - 1)
				}
			default:
				return fmt.Errorf("demo: unknown layout %q (want grid or random)", layout)
			}
			if err != nil {
				return err
			}
			net, err := routing.NewNetwork(g)
			if err != nil {
				return err
			}

			opts := append(a.cfg.RoutingOptions(), routing.WithContext(cmd.Context()), routing.WithLogger(a.log))
			res, err := routing.ComputeRoutes(net, from, to, opts...)
			if err != nil {
				return err
			}

			ui.Banner(cmd.OutOrStdout(), title)
			printResult(cmd, net, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&layout, "layout", "grid", "network layout: grid or random")
	cmd.Flags().IntVar(&rows, "rows", 6, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 6, "grid columns")
	cmd.Flags().IntVar(&nodes, "nodes", 40, "intersections of the random layout")
	cmd.Flags().Float64Var(&radius, "radius", 250, "longest street of the random layout in meters")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for segment lengths")
	cmd.Flags().Float64Var(&jitter, "jitter", 0.5, "maximum relative stretch of a segment")
	cmd.Flags().Float64Var(&spacing, "spacing", 100, "distance between intersections in meters")
	cmd.Flags().StringVar(&from, "from", "", "start node (default the first corner or node)")
	cmd.Flags().StringVar(&to, "to", "", "end node (default the opposite corner or last node)")

	return cmd
}

// demoGrid builds the synthetic network shared by demo and serve --demo.
func demoGrid(rows, cols int, seed int64, jitter, spacing float64) (*core.Graph, error) {
	if jitter < 0 || spacing <= 0 {
		return nil, fmt.Errorf("demo: jitter must be ≥ 0 and spacing > 0")
	}

	return builder.BuildRoadGraph([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithSpacing(spacing),
		builder.WithJitter(jitter),
	}, builder.Grid(rows, cols))
}

// demoRandom builds a random geometric network of n intersections.
func demoRandom(n int, radius float64, seed int64, jitter, spacing float64) (*core.Graph, error) {
	if jitter < 0 || spacing <= 0 {
		return nil, fmt.Errorf("demo: jitter must be ≥ 0 and spacing > 0")
	}

	return builder.BuildRoadGraph([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithSpacing(spacing),
		builder.WithJitter(jitter),
	}, builder.RandomGeometric(n, radius))
}
