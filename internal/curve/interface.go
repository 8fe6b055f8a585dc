package curve

import (
	"context"

	"bonddata/pkg/domain"
)

//go:generate mockgen -package mockcurve -source=interface.go -destination=mock/mockcurve.go *
type Service interface {
	// Report serves a full curve report for the given (already validated)
	// query, consulting the cache first and the upstream provider on a miss.
	Report(ctx context.Context, query Query) (*domain.CurveReport, error)
	// Refresh re-fetches the trailing windowDays of the given curve from the
	// upstream provider and upserts the observations into storage.
	Refresh(ctx context.Context, curve domain.CurveName, windowDays int) error
}
