// Package chinabond defines the interface and data types used to fetch yield
// curve observations from a backing provider.
package chinabond

import (
	"context"
	"time"

	"bonddata/pkg/domain"
)

// Client is the abstraction for yield-curve data providers. Implementations
// fetch daily observations for a curve over an inclusive date range.
//
//go:generate mockgen -package mockchinabond -source=interface.go -destination=mock/mockchinabond.go *
type Client interface {
	// Yields returns every observation for the given curve between start and
	// end (inclusive). Days without trading produce no observations; an empty
	// slice with a nil error is a valid outcome.
	Yields(ctx context.Context, curve domain.CurveName, start, end time.Time) ([]domain.Yield, error)
}
