package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"bonddata/internal/api"
	"bonddata/internal/config"
	"bonddata/internal/curve"
	"bonddata/internal/mcp"
	"bonddata/internal/worker"
	"bonddata/pkg/chinabond/cbweb"
	"bonddata/pkg/logger"
	"bonddata/pkg/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupOpsServer starts the operational HTTP server (metrics, health, pprof)
// and returns a function that stops it.
func setupOpsServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	server := api.NewServer(api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting ops webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops webserver", zap.Error(err))
		}
	}
}

func setupMetrics(ctx context.Context) *metrics.Metrics {
	mp, err := metrics.NewMeterProvider()
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	m, err := metrics.New(mp.Meter("bonddata"))
	if err != nil {
		logger.Fatal(ctx, "could not create metrics", zap.Error(err))
	}

	return m
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the MCP server, ops webserver and background refresh workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopOpsServer := setupOpsServer(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			m := setupMetrics(ctx)

			client := cbweb.New(&http.Client{Timeout: cfg.ChinaBond.Timeout}, cbweb.Options{
				BaseURL:   cfg.ChinaBond.BaseURL,
				UserAgent: cfg.ChinaBond.UserAgent,
			})
			service := curve.New(strg, client, m, curve.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, service, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			mcpServer := mcp.New(service, m, mcp.NewOptions(cfg))
			if err := mcpServer.Run(ctx); err != nil {
				logger.Error(ctx, "MCP server stopped with error", zap.Error(err))
			}

			// transport is gone, drain the rest
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}

			stopOpsServer(shutdownCtx)
		},
	}

	return cmd
}
