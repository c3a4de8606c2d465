package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/greedyroute/internal/ui"
	"github.com/katalvlaran/greedyroute/roadnet"
	"github.com/katalvlaran/greedyroute/routing"
)

func routeCmd(a *app) *cobra.Command {
	var (
		graphPath string
		from, to  string
		maxRoutes int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute routes between two nodes of a graph file",
		Long: `Load a road network (.json node-link, .osm/.xml or .pbf) and print the
greedy route together with up to --max alternatives.

  greedyroute route --graph city.json --from 101 --to 245
  greedyroute route --graph extract.osm.pbf --from 2718 --to 3141 --max 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := roadnet.LoadFile(cmd.Context(), graphPath, append(a.cfg.LoaderOptions(), roadnet.WithLogger(a.log))...)
			if err != nil {
				return err
			}
			net, err := routing.NewNetwork(g)
			if err != nil {
				return err
			}

			opts := append(a.cfg.RoutingOptions(), routing.WithContext(cmd.Context()), routing.WithLogger(a.log))
			if maxRoutes > 0 {
				opts = append(opts, routing.WithMaxAlternatives(maxRoutes))
			}
			res, err := routing.ComputeRoutes(net, from, to, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			ui.Banner(out, fmt.Sprintf("%s (%d nodes)", graphPath, g.VertexCount()))
			printResult(cmd, net, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "road network file")
	cmd.Flags().StringVar(&from, "from", "", "start node ID")
	cmd.Flags().StringVar(&to, "to", "", "end node ID")
	cmd.Flags().IntVarP(&maxRoutes, "max", "n", 0, "maximum number of routes (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func printResult(cmd *cobra.Command, net *routing.Network, res *routing.Result) {
	out := cmd.OutOrStdout()
	ui.Routes(out, net, res)
	ui.Greedy(out, res)
	ui.Attempts(out, net, res)
	fmt.Fprintf(out, "\n  %s\n", ui.Subtle.Sprintf("computed in %s", res.Elapsed))
}
