package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"bonddata/internal/config"
	"bonddata/internal/curve"
	"bonddata/pkg/chinabond/cbweb"
	"bonddata/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCommand constructs the 'fetch' subcommand that serves a single curve
// report from the command line and prints it as JSON. It uses the same cache
// and upstream path as the MCP tool.
func fetchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetches a curve report and prints it as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			curveName, _ := cmd.Flags().GetString("curve")
			terms, _ := cmd.Flags().GetString("terms")
			startDate, _ := cmd.Flags().GetString("start")
			endDate, _ := cmd.Flags().GetString("end")

			query, err := curve.ParseQuery(curveName,
				strings.Split(terms, ","),
				startDate, endDate,
				cfg.Curve.MaxRangeDays)
			if err != nil {
				logger.Fatal(ctx, "invalid query", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			client := cbweb.New(&http.Client{Timeout: cfg.ChinaBond.Timeout}, cbweb.Options{
				BaseURL:   cfg.ChinaBond.BaseURL,
				UserAgent: cfg.ChinaBond.UserAgent,
			})
			service := curve.New(strg, client, nil, curve.NewOptions(cfg))

			report, err := service.Report(ctx, query)
			if err != nil {
				logger.Fatal(ctx, "could not fetch report", zap.Error(err))
			}

			fmt.Println(string(curve.EncodeReport(report))) //nolint: forbidigo
		},
	}

	cmd.Flags().String("curve", string(curve.DefaultCurve), "Curve name")
	cmd.Flags().String("terms", string(curve.DefaultTerm), "Comma-separated term list")
	cmd.Flags().String("start", curve.DefaultStartDate, "Start date (YYYYMMDD)")
	cmd.Flags().String("end", curve.DefaultEndDate, "End date (YYYYMMDD)")

	return cmd
}
