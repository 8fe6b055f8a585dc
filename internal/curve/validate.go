package curve

import (
	"time"

	"bonddata/pkg/domain"
	"bonddata/pkg/serrors"
)

// Defaults applied when a tool call omits a parameter.
const (
	DefaultCurve     = domain.CurveTreasury
	DefaultTerm      = domain.Term10Y
	DefaultStartDate = "20250101"
	DefaultEndDate   = "20250105"
)

// Query is a validated curve request: a known curve, a non-empty deduplicated
// term list and an inclusive date range within the configured cap.
type Query struct {
	Curve domain.CurveName
	Terms []domain.Term
	Start time.Time
	End   time.Time
}

// ParseQuery validates raw request parameters and normalizes them into a
// Query. Dates are YYYYMMDD strings; maxRangeDays caps the inclusive range
// (0 disables the cap). All failures carry serrors.ErrBadRequest.
func ParseQuery(curveName string, terms []string, startDate, endDate string, maxRangeDays int) (Query, error) {
	curve := domain.CurveName(curveName)
	if !curve.Valid() {
		return Query{}, serrors.With(serrors.ErrBadRequest, "unknown curve name: %q", curveName)
	}

	if len(terms) == 0 {
		return Query{}, serrors.With(serrors.ErrBadRequest, "term_list must not be empty")
	}

	// dedupe while preserving the requested order, it drives both the series
	// serialization order and the correlation pair keys.
	parsed := make([]domain.Term, 0, len(terms))
	seen := make(map[domain.Term]struct{}, len(terms))
	for _, raw := range terms {
		term := domain.Term(raw)
		if !term.Valid() {
			return Query{}, serrors.With(serrors.ErrBadRequest, "unknown term: %q", raw)
		}
		if curve == domain.CurveMTNAAA && term == domain.Term30Y {
			return Query{}, serrors.With(serrors.ErrBadRequest,
				"curve %q has no %q term", curve, domain.Term30Y)
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		parsed = append(parsed, term)
	}

	start, err := parseDate(startDate)
	if err != nil {
		return Query{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid start_date: %q", startDate)
	}
	end, err := parseDate(endDate)
	if err != nil {
		return Query{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid end_date: %q", endDate)
	}

	if end.Before(start) {
		return Query{}, serrors.With(serrors.ErrBadRequest,
			"start_date %q is after end_date %q", startDate, endDate)
	}

	if maxRangeDays > 0 {
		days := int(end.Sub(start).Hours()/24) + 1
		if days > maxRangeDays {
			return Query{}, serrors.With(serrors.ErrBadRequest,
				"date range spans %d days, maximum is %d", days, maxRangeDays)
		}
	}

	return Query{Curve: curve, Terms: parsed, Start: start, End: end}, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
