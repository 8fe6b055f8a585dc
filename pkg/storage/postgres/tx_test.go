package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"bonddata/pkg/domain"
	"bonddata/pkg/storage"
	"bonddata/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countYields(t *testing.T, db *sql.DB) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM yields`)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, ok = inner.DB.(*sql.Tx)
	require.True(t, ok)

	// Beginning again from within the tx must fail
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, txStorage.Rollback())
}

func TestPgSQL_CommitRollback_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CommitsOnSuccess(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.UpsertYields(ctx, domain.Yield{
			CurveName: domain.CurveTreasury,
			Term:      domain.Term10Y,
			Date:      date(2025, 1, 2),
			Value:     1.6,
		})
	})
	require.NoError(t, err)
	require.Equal(t, 1, countYields(t, pg.DB.(*sql.DB)))
}

func TestPgSQL_WithTx_RollsBackOnError(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	boom := errors.New("boom")

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpsertYields(ctx, domain.Yield{
			CurveName: domain.CurveTreasury,
			Term:      domain.Term10Y,
			Date:      date(2025, 1, 2),
			Value:     1.6,
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countYields(t, pg.DB.(*sql.DB)))
}
