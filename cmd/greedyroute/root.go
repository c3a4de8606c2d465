package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/internal/config"
	"github.com/katalvlaran/greedyroute/internal/ui"
)

var version = "0.3.0"

// app carries what every subcommand needs after flag parsing.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "greedyroute",
		Short: "greedyroute — greedy and alternative routes over road networks",
		Long: ui.Brand.Sprint("greedyroute") + " — compare a greedy best-first route with shortest, fewest-hop and detour alternatives\n" +
			ui.Subtle.Sprint("Load a road network, pick two intersections, inspect the routes"),
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetVersionTemplate("greedyroute {{ .Version }}\n")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (.yaml or .toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		routeCmd(a),
		serveCmd(a),
		demoCmd(a),
	)

	return root
}

// init loads the configuration and installs the logger. Logs go to stderr
// so that command output stays clean.
func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	log, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	a.cfg, a.log = cfg, log

	return nil
}
