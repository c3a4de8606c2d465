package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/greedyroute/internal/server"
	"github.com/katalvlaran/greedyroute/internal/ui"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(a *app) *cobra.Command {
	var (
		addr string
		demo bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing API over HTTP",
		Long: `Serve sessions over the areas listed in the configuration file.

  greedyroute serve --config greedyroute.yaml
  greedyroute serve --demo --addr :9090     # a synthetic "demo" area only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			var areas server.Areas = server.NewFileAreas(a.cfg.Areas, a.cfg.LoaderOptions()...)
			if demo {
				g, err := demoGrid(10, 10, 1, 0.5, 100)
				if err != nil {
					return err
				}
				areas = server.StaticAreas{"demo": g}
			}
			if len(areas.Names()) == 0 {
				return errors.New("serve: no areas configured (set areas in the config file or use --demo)")
			}

			srv := server.New(areas,
				server.WithLogger(a.log),
				server.WithRoutingOptions(a.cfg.RoutingOptions()...))
			httpSrv := srv.HTTPServer(addr, a.cfg.Server.ReadTimeout.Duration, a.cfg.Server.WriteTimeout.Duration)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ui.Banner(cmd.OutOrStdout(), fmt.Sprintf("serving %d area(s) on %s", len(areas.Names()), addr))
			a.log.Info("http server starting", "addr", addr, "areas", areas.Names())

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				a.log.Info("http server stopping")
				return httpSrv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&demo, "demo", false, "serve a synthetic 10×10 grid instead of configured areas")

	return cmd
}
