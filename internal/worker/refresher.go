package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bonddata/internal/curve"
	"bonddata/pkg/domain"
	"bonddata/pkg/logger"
	"bonddata/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitSnooze is how long a refresh job sleeps after the provider
// throttles or refuses us before river retries it.
const rateLimitSnooze = 5 * time.Minute

// CurveRefreshWorker is a River worker that re-fetches a curve's trailing
// window from the upstream provider through the curve service, keeping the
// yield cache warm.
//
// Error handling: a bad-request error means the job arguments can never
// succeed, so the job is canceled. Rate limiting and provider outages are
// transient, so the job is snoozed and retried later. Other errors are logged
// and returned for river's normal retry backoff.
type CurveRefreshWorker struct {
	river.WorkerDefaults[curve.RefreshJobArgs]

	service curve.Service
}

// NewCurveRefreshWorker constructs a CurveRefreshWorker using the provided
// curve service.
func NewCurveRefreshWorker(service curve.Service) *CurveRefreshWorker {
	return &CurveRefreshWorker{service: service}
}

// Work executes a single refresh job and maps errors to the appropriate River
// actions.
func (w *CurveRefreshWorker) Work(ctx context.Context, job *river.Job[curve.RefreshJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("curve", job.Args.Curve),
		zap.Int("windowDays", job.Args.WindowDays))

	err := w.service.Refresh(ctx, domain.CurveName(job.Args.Curve), job.Args.WindowDays)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error refreshing curve", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) || errors.Is(err, serrors.ErrUnavailable) {
			return river.JobSnooze(rateLimitSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not refresh curve: %w", err)
	}

	logger.Info(ctx, "curve refreshed successfully")

	return nil
}
