package domain

import "time"

// CurveName identifies one of the ChinaBond yield curves this service knows
// how to query. The values are the official Chinese curve names, which are
// also the identifiers the client protocol exposes.
type CurveName string

const (
	// CurveTreasury is the China treasury bond yield curve (中债国债收益率曲线).
	CurveTreasury CurveName = "中债国债收益率曲线"
	// CurveMTNAAA is the AAA medium/short-term note yield curve
	// (中债中短期票据收益率曲线(AAA)). It carries no 30年 term.
	CurveMTNAAA CurveName = "中债中短期票据收益率曲线(AAA)"
	// CurveBankAAA is the AAA commercial bank ordinary bond yield curve
	// (中债商业银行普通债收益率曲线(AAA)).
	CurveBankAAA CurveName = "中债商业银行普通债收益率曲线(AAA)"
)

// CurveNames lists every curve the service can serve, in presentation order.
func CurveNames() []CurveName {
	return []CurveName{CurveTreasury, CurveMTNAAA, CurveBankAAA}
}

// Valid reports whether the curve name is one of the known curves.
func (c CurveName) Valid() bool {
	switch c {
	case CurveTreasury, CurveMTNAAA, CurveBankAAA:
		return true
	}

	return false
}

// Term is a curve tenor such as "3月" or "10年". The upstream provider keys
// observations by tenor length in years; Years converts between the two.
type Term string

const (
	Term3M  Term = "3月"
	Term6M  Term = "6月"
	Term1Y  Term = "1年"
	Term3Y  Term = "3年"
	Term5Y  Term = "5年"
	Term7Y  Term = "7年"
	Term10Y Term = "10年"
	Term30Y Term = "30年"
)

// Terms lists every supported tenor in ascending order.
func Terms() []Term {
	return []Term{Term3M, Term6M, Term1Y, Term3Y, Term5Y, Term7Y, Term10Y, Term30Y}
}

// Valid reports whether the term is one of the supported tenors.
func (t Term) Valid() bool {
	_, ok := termYears[t]

	return ok
}

// termYears maps tenors to the fractional year lengths used by the upstream
// provider's series data.
var termYears = map[Term]float64{ //nolint: gochecknoglobals
	Term3M:  0.25,
	Term6M:  0.5,
	Term1Y:  1,
	Term3Y:  3,
	Term5Y:  5,
	Term7Y:  7,
	Term10Y: 10,
	Term30Y: 30,
}

// Years returns the tenor length in years (e.g. 0.25 for 3月), or 0 for an
// unknown term.
func (t Term) Years() float64 {
	return termYears[t]
}

// TermFromYears resolves an upstream year length back to a Term. The boolean
// is false for year lengths outside the supported tenor set.
func TermFromYears(years float64) (Term, bool) {
	for term, y := range termYears {
		if y == years {
			return term, true
		}
	}

	return "", false
}

// Yield is a single observed yield: one curve, one tenor, one trading day.
// Yields are expressed in percent (1.6077 means 1.6077%).
type Yield struct {
	// CurveName is the curve this observation belongs to.
	CurveName CurveName `json:"curveName"`
	// Term is the tenor of the observation.
	Term Term `json:"term"`
	// Date is the trading day, truncated to midnight UTC.
	Date time.Time `json:"date"`
	// Value is the yield in percent.
	Value float64 `json:"value"`

	// FetchedAt records when this observation was retrieved from the upstream
	// provider. Zero for observations that have not touched storage yet.
	FetchedAt time.Time `json:"-"`
}

// DateFormat is the wire format for dates inside report series ("20250102").
const DateFormat = "20060102"

// MetadataDateFormat is the wire format for the report time range
// ("2025-01-02").
const MetadataDateFormat = "2006-01-02"

// Currency is the currency all served yields are denominated in.
const Currency = "CNY"

// DailyYield is one day of a term series as served to clients.
type DailyYield struct {
	// Date in DateFormat.
	Date string `json:"date"`
	// Yield in percent.
	Yield float64 `json:"yield"`
}

// Extreme pairs an extreme value with the date of its first occurrence.
type Extreme struct {
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

// Quantiles holds the lower and upper quartiles of a series.
type Quantiles struct {
	Q1 float64 `json:"q1"`
	Q3 float64 `json:"q3"`
}

// SeriesStats are the descriptive statistics computed for one term series.
// Mean, median, standard deviation and the quartiles are rounded to 4
// decimals, the population variance to 6.
type SeriesStats struct {
	Max       Extreme   `json:"max"`
	Min       Extreme   `json:"min"`
	Mean      float64   `json:"mean"`
	Median    float64   `json:"median"`
	Variance  float64   `json:"variance"`
	StdDev    float64   `json:"std_dev"`
	Quantiles Quantiles `json:"quantiles"`
}

// TermSeries is the served payload for a single tenor: the raw daily yields
// plus their statistics.
type TermSeries struct {
	DailyData  []DailyYield `json:"daily_data"`
	Statistics SeriesStats  `json:"statistics"`
}

// ReportMetadata describes the report as a whole.
type ReportMetadata struct {
	// CurveName is the queried curve.
	CurveName CurveName `json:"curve_name"`
	// TimeRange is the [min, max] observed dates in MetadataDateFormat.
	TimeRange [2]string `json:"time_range"`
	// Currency is always "CNY".
	Currency string `json:"currency"`
}

// Analysis holds cross-term analytics. It is only present when the query
// requested more than one term.
type Analysis struct {
	// Correlation maps "<term1>_<term2>" (terms in requested order) to the
	// Pearson correlation of the two series over their common dates, rounded
	// to 3 decimals.
	Correlation map[string]float64 `json:"correlation"`
}

// CurveReport is the full response for a curve query.
type CurveReport struct {
	Metadata ReportMetadata `json:"metadata"`
	// Series maps each requested term to its data. TermOrder preserves the
	// request order for serialization.
	Series map[Term]TermSeries `json:"series"`
	// TermOrder lists the series keys in requested order.
	TermOrder []Term `json:"-"`
	// Analysis is nil for single-term queries.
	Analysis *Analysis `json:"analysis,omitempty"`
}
