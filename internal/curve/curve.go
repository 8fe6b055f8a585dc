package curve

import (
	"context"
	"fmt"
	"time"

	"bonddata/internal/config"
	"bonddata/pkg/chinabond"
	"bonddata/pkg/domain"
	"bonddata/pkg/logger"
	"bonddata/pkg/metrics"
	"bonddata/pkg/serrors"
	"bonddata/pkg/storage"

	"go.uber.org/zap"
)

// Options configure caching and range limits for the curve service.
// These settings are typically derived from application configuration.
type Options struct {
	// CacheTTL is the duration during which cached observations are served
	// without consulting the upstream provider again.
	CacheTTL time.Duration
	// MaxRangeDays caps the inclusive query range. Zero disables the cap.
	MaxRangeDays int
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing a refresh job before marking it failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CacheTTL:     cfg.Curve.CacheTTL,
		MaxRangeDays: cfg.Curve.MaxRangeDays,
		MaxAttempts:  cfg.Curve.MaxAttempts,
	}
}

// service is the concrete implementation of the Service interface. It
// coordinates the yield cache in storage with fetches from the upstream
// provider.
type service struct {
	options Options
	storage storage.Storage
	client  chinabond.Client
	metrics *metrics.Metrics
}

// New creates a new Service backed by the provided storage and upstream
// client. metrics may be nil.
func New(store storage.Storage, client chinabond.Client, m *metrics.Metrics, options Options) Service {
	return &service{
		options: options,
		storage: store,
		client:  client,
		metrics: m,
	}
}

// Report serves a full curve report for the query. Cached observations are
// used when the newest row for the range was fetched within CacheTTL;
// otherwise the range is re-fetched from the provider and the cache updated.
// If the provider fails but stale rows exist, the stale rows are served.
func (s *service) Report(ctx context.Context, query Query) (*domain.CurveReport, error) {
	rows, err := s.storage.YieldsByRange(ctx, query.Curve, query.Terms, query.Start, query.End)
	if err != nil {
		return nil, fmt.Errorf("could not read cached yields: %w", err)
	}

	if !s.fresh(rows) {
		if err := s.fetchAndStore(ctx, query.Curve, query.Start, query.End); err != nil {
			if len(rows) == 0 {
				return nil, err
			}
			// provider is down but we still hold an older copy of the range.
			logger.Get(ctx).Warn("serving stale cached yields, upstream fetch failed",
				zap.String("curve", string(query.Curve)),
				zap.Error(err))
		} else {
			rows, err = s.storage.YieldsByRange(ctx, query.Curve, query.Terms, query.Start, query.End)
			if err != nil {
				return nil, fmt.Errorf("could not read refreshed yields: %w", err)
			}
		}
	}

	return buildReport(query, rows)
}

// Refresh re-fetches the trailing windowDays of the curve and upserts the
// observations, keeping the cache warm for recent queries.
func (s *service) Refresh(ctx context.Context, curve domain.CurveName, windowDays int) error {
	if !curve.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown curve name: %q", curve)
	}
	if windowDays < 1 {
		windowDays = 1
	}

	end := midnightUTC(time.Now())
	start := end.AddDate(0, 0, -(windowDays - 1))

	return s.fetchAndStore(ctx, curve, start, end)
}

// fresh reports whether the cached rows can be served without hitting the
// provider: at least one row, and the newest fetch within CacheTTL.
func (s *service) fresh(rows []domain.Yield) bool {
	if len(rows) == 0 {
		return false
	}

	var newest time.Time
	for _, row := range rows {
		if row.FetchedAt.After(newest) {
			newest = row.FetchedAt
		}
	}

	return time.Since(newest) < s.options.CacheTTL
}

// fetchAndStore pulls the full curve for the range from the provider and
// upserts every observation. All tenors are stored even if the triggering
// query asked for fewer, later queries for other tenors then hit the cache.
func (s *service) fetchAndStore(ctx context.Context, curve domain.CurveName, start, end time.Time) error {
	began := time.Now()
	fetched, err := s.client.Yields(ctx, curve, start, end)
	s.metrics.UpstreamRequest(ctx, string(curve), time.Since(began), err != nil)
	if err != nil {
		return fmt.Errorf("could not fetch yields: %w", err)
	}
	if len(fetched) == 0 {
		return nil
	}

	if err := s.storage.UpsertYields(ctx, fetched...); err != nil {
		return fmt.Errorf("could not store yields: %w", err)
	}

	return nil
}

// buildReport assembles the response from date-ascending cache rows.
func buildReport(query Query, rows []domain.Yield) (*domain.CurveReport, error) {
	if len(rows) == 0 {
		return nil, serrors.With(serrors.ErrNotFound,
			"No data available for the specified date range: %s to %s",
			query.Start.Format(domain.DateFormat), query.End.Format(domain.DateFormat))
	}

	byTerm := make(map[domain.Term][]domain.DailyYield, len(query.Terms))
	minDate, maxDate := rows[0].Date, rows[0].Date
	for _, row := range rows {
		if row.Date.Before(minDate) {
			minDate = row.Date
		}
		if row.Date.After(maxDate) {
			maxDate = row.Date
		}
		byTerm[row.Term] = append(byTerm[row.Term], domain.DailyYield{
			Date:  row.Date.Format(domain.DateFormat),
			Yield: row.Value,
		})
	}

	series := make(map[domain.Term]domain.TermSeries, len(query.Terms))
	for _, term := range query.Terms {
		daily := byTerm[term]
		if len(daily) == 0 {
			return nil, serrors.With(serrors.ErrNotFound,
				"no observations for term %q in the specified date range", term)
		}

		st, err := seriesStats(daily)
		if err != nil {
			return nil, fmt.Errorf("could not compute statistics for term %s: %w", term, err)
		}
		series[term] = domain.TermSeries{DailyData: daily, Statistics: st}
	}

	report := &domain.CurveReport{
		Metadata: domain.ReportMetadata{
			CurveName: query.Curve,
			TimeRange: [2]string{
				minDate.Format(domain.MetadataDateFormat),
				maxDate.Format(domain.MetadataDateFormat),
			},
			Currency: domain.Currency,
		},
		Series:    series,
		TermOrder: query.Terms,
	}

	if len(query.Terms) > 1 {
		corr, err := correlations(query.Terms, series)
		if err != nil {
			return nil, err
		}
		if corr != nil {
			report.Analysis = &domain.Analysis{Correlation: corr}
		}
	}

	return report, nil
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
