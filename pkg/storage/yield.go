package storage

import (
	"context"
	"time"

	"bonddata/pkg/domain"
)

// YieldStorage defines the persistence operations for the yield cache.
// The cache is append-mostly: observations are immutable facts, so writes are
// idempotent upserts keyed by (curve, term, date).
type YieldStorage interface {
	// UpsertYields inserts the given observations, refreshing yield and
	// fetched_at for rows that already exist.
	UpsertYields(ctx context.Context, yields ...domain.Yield) error

	// YieldsByRange returns all cached observations for the curve with
	// quote dates inside the inclusive [start, end] range, restricted to the
	// given terms when terms is non-empty. Rows are ordered by date then term
	// and carry their fetched_at timestamps.
	YieldsByRange(ctx context.Context,
		curve domain.CurveName,
		terms []domain.Term,
		start, end time.Time) ([]domain.Yield, error)
}
