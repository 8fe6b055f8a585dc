package curve

import (
	"testing"

	"bonddata/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestSeriesStats_TwoPoints(t *testing.T) {
	daily := []domain.DailyYield{
		{Date: "20250102", Yield: 1.6077},
		{Date: "20250103", Yield: 1.6041},
	}

	st, err := seriesStats(daily)
	require.NoError(t, err)

	require.Equal(t, domain.Extreme{Value: 1.6077, Date: "20250102"}, st.Max)
	require.Equal(t, domain.Extreme{Value: 1.6041, Date: "20250103"}, st.Min)
	require.Equal(t, 1.6059, st.Mean)
	require.Equal(t, 1.6059, st.Median)
	require.Equal(t, 0.000003, st.Variance)
	require.Equal(t, 0.0018, st.StdDev)
	require.Equal(t, 1.605, st.Quantiles.Q1)
	require.Equal(t, 1.6068, st.Quantiles.Q3)
}

func TestSeriesStats_SinglePoint(t *testing.T) {
	st, err := seriesStats([]domain.DailyYield{{Date: "20250102", Yield: 1.6}})
	require.NoError(t, err)

	require.Equal(t, 1.6, st.Mean)
	require.Equal(t, 1.6, st.Median)
	require.Equal(t, 0.0, st.Variance)
	require.Equal(t, 0.0, st.StdDev)
	require.Equal(t, 1.6, st.Quantiles.Q1)
	require.Equal(t, 1.6, st.Quantiles.Q3)
	require.Equal(t, "20250102", st.Max.Date)
	require.Equal(t, "20250102", st.Min.Date)
}

func TestSeriesStats_TieKeepsFirstDate(t *testing.T) {
	daily := []domain.DailyYield{
		{Date: "20250102", Yield: 1.6},
		{Date: "20250103", Yield: 1.6},
		{Date: "20250106", Yield: 1.5},
	}

	st, err := seriesStats(daily)
	require.NoError(t, err)
	require.Equal(t, "20250102", st.Max.Date)
	require.Equal(t, "20250106", st.Min.Date)
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	// pos = 0.25*3 = 0.75 -> 1 + 0.75*(2-1)
	require.InDelta(t, 1.75, quantile(sorted, 0.25), 1e-9)
	// pos = 0.5*3 = 1.5 -> 2 + 0.5*(3-2)
	require.InDelta(t, 2.5, quantile(sorted, 0.5), 1e-9)
	require.InDelta(t, 3.25, quantile(sorted, 0.75), 1e-9)
	require.InDelta(t, 1.0, quantile(sorted, 0), 1e-9)
	require.InDelta(t, 4.0, quantile(sorted, 1), 1e-9)
}

func TestCorrelations_PerfectPositiveAndNegative(t *testing.T) {
	up := []domain.DailyYield{
		{Date: "20250102", Yield: 1.0},
		{Date: "20250103", Yield: 2.0},
		{Date: "20250106", Yield: 3.0},
	}
	down := []domain.DailyYield{
		{Date: "20250102", Yield: 3.0},
		{Date: "20250103", Yield: 2.0},
		{Date: "20250106", Yield: 1.0},
	}

	series := map[domain.Term]domain.TermSeries{
		domain.Term5Y:  {DailyData: up},
		domain.Term10Y: {DailyData: down},
	}

	corr, err := correlations([]domain.Term{domain.Term5Y, domain.Term10Y}, series)
	require.NoError(t, err)
	require.Len(t, corr, 1)
	require.Equal(t, -1.0, corr["5年_10年"])

	series[domain.Term10Y] = domain.TermSeries{DailyData: up}
	corr, err = correlations([]domain.Term{domain.Term5Y, domain.Term10Y}, series)
	require.NoError(t, err)
	require.Equal(t, 1.0, corr["5年_10年"])
}

func TestCorrelations_AlignsOnCommonDates(t *testing.T) {
	a := []domain.DailyYield{
		{Date: "20250102", Yield: 1.0},
		{Date: "20250103", Yield: 2.0},
		{Date: "20250106", Yield: 3.0},
	}
	// 20250103 missing, extra trailing date ignored
	b := []domain.DailyYield{
		{Date: "20250102", Yield: 2.0},
		{Date: "20250106", Yield: 6.0},
		{Date: "20250107", Yield: 9.0},
	}

	series := map[domain.Term]domain.TermSeries{
		domain.Term5Y:  {DailyData: a},
		domain.Term10Y: {DailyData: b},
	}

	corr, err := correlations([]domain.Term{domain.Term5Y, domain.Term10Y}, series)
	require.NoError(t, err)
	require.Equal(t, 1.0, corr["5年_10年"])
}

func TestCorrelations_SkipsPairsWithoutOverlap(t *testing.T) {
	series := map[domain.Term]domain.TermSeries{
		domain.Term5Y:  {DailyData: []domain.DailyYield{{Date: "20250102", Yield: 1.0}}},
		domain.Term10Y: {DailyData: []domain.DailyYield{{Date: "20250103", Yield: 2.0}}},
	}

	corr, err := correlations([]domain.Term{domain.Term5Y, domain.Term10Y}, series)
	require.NoError(t, err)
	require.Nil(t, corr)
}
