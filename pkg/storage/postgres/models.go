package postgres

import (
	"time"

	"bonddata/pkg/domain"
)

// PgYield is the row shape of the yields table.
type PgYield struct {
	CurveName string    `db:"curve_name"`
	Term      string    `db:"term"`
	QuoteDate time.Time `db:"quote_date"`
	Yield     float64   `db:"yield"`

	FetchedAt time.Time `db:"fetched_at" goqu:"skipinsert"`
}

func (p *PgYield) ToDomain() domain.Yield {
	// DATE columns scan with a driver-dependent location; normalize to
	// midnight UTC so date comparisons stay exact.
	y, m, d := p.QuoteDate.Date()

	return domain.Yield{
		CurveName: domain.CurveName(p.CurveName),
		Term:      domain.Term(p.Term),
		Date:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Value:     p.Yield,
		FetchedAt: p.FetchedAt,
	}
}

func (p *PgYield) FromDomain(y domain.Yield) {
	*p = PgYield{
		CurveName: string(y.CurveName),
		Term:      string(y.Term),
		QuoteDate: y.Date,
		Yield:     y.Value,
		FetchedAt: y.FetchedAt,
	}
}

func domainYieldsToPg(yields []domain.Yield) []PgYield {
	out := make([]PgYield, len(yields))
	for i := range out {
		out[i].FromDomain(yields[i])
	}

	return out
}

func pgYieldsToDomain(yields []PgYield) []domain.Yield {
	out := make([]domain.Yield, 0, len(yields))
	for _, y := range yields {
		out = append(out, y.ToDomain())
	}

	return out
}
