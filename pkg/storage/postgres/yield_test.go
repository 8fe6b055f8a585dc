package postgres_test

import (
	"context"
	"testing"
	"time"

	"bonddata/pkg/domain"

	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestPgSQL_UpsertYields_InsertAndRefresh(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	obs := domain.Yield{
		CurveName: domain.CurveTreasury,
		Term:      domain.Term10Y,
		Date:      date(2025, 1, 2),
		Value:     1.6077,
	}
	require.NoError(t, pg.UpsertYields(ctx, obs))

	rows, err := pg.YieldsByRange(ctx, domain.CurveTreasury, nil, date(2025, 1, 1), date(2025, 1, 5))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1.6077, rows[0].Value)
	require.False(t, rows[0].FetchedAt.IsZero())

	// replaying the same observation with a corrected value must not
	// duplicate the row
	obs.Value = 1.61
	require.NoError(t, pg.UpsertYields(ctx, obs))

	rows, err = pg.YieldsByRange(ctx, domain.CurveTreasury, nil, date(2025, 1, 1), date(2025, 1, 5))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1.61, rows[0].Value)
}

func TestPgSQL_YieldsByRange_Filters(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.UpsertYields(ctx,
		domain.Yield{CurveName: domain.CurveTreasury, Term: domain.Term10Y, Date: date(2025, 1, 2), Value: 1.6},
		domain.Yield{CurveName: domain.CurveTreasury, Term: domain.Term5Y, Date: date(2025, 1, 2), Value: 1.4},
		domain.Yield{CurveName: domain.CurveTreasury, Term: domain.Term10Y, Date: date(2025, 1, 3), Value: 1.61},
		domain.Yield{CurveName: domain.CurveTreasury, Term: domain.Term10Y, Date: date(2025, 2, 1), Value: 1.7},
		domain.Yield{CurveName: domain.CurveBankAAA, Term: domain.Term10Y, Date: date(2025, 1, 2), Value: 2.0},
	))

	// range and curve filters
	rows, err := pg.YieldsByRange(ctx, domain.CurveTreasury, nil, date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// term filter
	rows, err = pg.YieldsByRange(ctx,
		domain.CurveTreasury,
		[]domain.Term{domain.Term5Y},
		date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, domain.Term5Y, rows[0].Term)

	// ordering: date asc, bounds inclusive
	rows, err = pg.YieldsByRange(ctx,
		domain.CurveTreasury,
		[]domain.Term{domain.Term10Y},
		date(2025, 1, 2), date(2025, 2, 1))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, date(2025, 1, 2), rows[0].Date)
	require.Equal(t, date(2025, 2, 1), rows[2].Date)
}

func TestPgSQL_YieldsByRange_Empty(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	rows, err := pg.YieldsByRange(context.Background(),
		domain.CurveTreasury, nil, date(2025, 1, 1), date(2025, 1, 2))
	require.NoError(t, err)
	require.Empty(t, rows)
}
