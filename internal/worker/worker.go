package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bonddata/internal/config"
	"bonddata/internal/curve"
	"bonddata/pkg/domain"
	"bonddata/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background refresh schedule.
type Options struct {
	// RefreshInterval is how often each curve is re-fetched.
	RefreshInterval time.Duration
	// RefreshWindowDays is the trailing window each periodic refresh covers.
	RefreshWindowDays int
	// MaxAttempts is the retry limit applied to enqueued refresh jobs.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RefreshInterval:   cfg.Curve.RefreshInterval,
		RefreshWindowDays: cfg.Curve.RefreshWindowDays,
		MaxAttempts:       cfg.Curve.MaxAttempts,
	}
}

// Start registers the refresh worker plus one periodic refresh job per known
// curve and starts the river client on the given pool.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	service curve.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewCurveRefreshWorker(service))

	var periodic []*river.PeriodicJob
	for _, name := range domain.CurveNames() {
		args := curve.NewRefreshJobArgs(string(name), options.RefreshWindowDays,
			curve.Options{MaxAttempts: options.MaxAttempts})
		periodic = append(periodic, river.NewPeriodicJob(
			river.PeriodicInterval(options.RefreshInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return args, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
