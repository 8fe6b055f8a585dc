package postgres

import (
	"context"
	"fmt"
	"time"

	"bonddata/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	yieldsTable = "yields"
)

// UpsertYields inserts observations, refreshing yield and fetched_at on
// conflict. Observations are immutable facts, so replaying a fetch is safe.
func (p *PgSQL) UpsertYields(ctx context.Context, yields ...domain.Yield) error {
	if len(yields) == 0 {
		return nil
	}

	_, err := p.Builder.Insert(yieldsTable).
		Rows(domainYieldsToPg(yields)).
		OnConflict(goqu.DoUpdate("curve_name, term, quote_date", goqu.Record{
			"yield":      goqu.L("excluded.yield"),
			"fetched_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert yields into pg: %w", err)
	}

	return nil
}

// YieldsByRange returns cached observations for the curve inside the
// inclusive [start, end] range, restricted to terms when non-empty, ordered
// by quote date then term.
func (p *PgSQL) YieldsByRange(ctx context.Context,
	curve domain.CurveName,
	terms []domain.Term,
	start, end time.Time) ([]domain.Yield, error) {
	w := []goqu.Expression{
		goqu.I("curve_name").Eq(string(curve)),
		goqu.I("quote_date").Gte(start),
		goqu.I("quote_date").Lte(end),
	}
	if len(terms) > 0 {
		termStrs := make([]string, 0, len(terms))
		for _, t := range terms {
			termStrs = append(termStrs, string(t))
		}
		w = append(w, goqu.I("term").In(termStrs))
	}

	var rows []PgYield
	if err := p.Builder.From(yieldsTable).
		Where(w...).
		Order(goqu.I("quote_date").Asc(), goqu.I("term").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch yields from pg: %w", err)
	}

	return pgYieldsToDomain(rows), nil
}
