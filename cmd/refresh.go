package main

import (
	"context"

	"bonddata/internal/config"
	"bonddata/internal/curve"
	"bonddata/pkg/domain"
	"bonddata/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// refreshCommand constructs the 'refresh' subcommand that enqueues a refresh
// job per curve. The jobs are picked up by the workers of a running 'serve'
// instance.
func refreshCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Enqueues refresh jobs for the yield curve cache",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			curveName, _ := cmd.Flags().GetString("curve")
			windowDays, _ := cmd.Flags().GetInt("window-days")
			if windowDays <= 0 {
				windowDays = cfg.Curve.RefreshWindowDays
			}

			curves := domain.CurveNames()
			if curveName != "" {
				if !domain.CurveName(curveName).Valid() {
					logger.Fatal(ctx, "unknown curve name", zap.String("curve", curveName))
				}
				curves = []domain.CurveName{domain.CurveName(curveName)}
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			options := curve.NewOptions(cfg)
			for _, name := range curves {
				added, err := strg.AddJob(ctx,
					curve.NewRefreshJobArgs(string(name), windowDays, options), nil)
				if err != nil {
					logger.Fatal(ctx, "could not enqueue refresh job",
						zap.String("curve", string(name)), zap.Error(err))
				}

				logger.Info(ctx, "refresh job enqueued",
					zap.String("curve", string(name)),
					zap.Int("windowDays", windowDays),
					zap.Bool("added", added))
			}
		},
	}

	cmd.Flags().String("curve", "", "Refresh a single curve instead of all curves")
	cmd.Flags().Int("window-days", 0, "Trailing window to refresh (defaults to the configured window)")

	return cmd
}
