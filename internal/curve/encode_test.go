package curve_test

import (
	"encoding/json"
	"strings"
	"testing"

	"bonddata/internal/curve"
	"bonddata/pkg/domain"

	"github.com/stretchr/testify/require"
)

func sampleReport(order ...domain.Term) *domain.CurveReport {
	series := make(map[domain.Term]domain.TermSeries, len(order))
	for i, term := range order {
		daily := []domain.DailyYield{
			{Date: "20250102", Yield: 1.6 + float64(i)},
			{Date: "20250103", Yield: 1.7 + float64(i)},
		}
		series[term] = domain.TermSeries{
			DailyData: daily,
			Statistics: domain.SeriesStats{
				Max:       domain.Extreme{Value: daily[1].Yield, Date: "20250103"},
				Min:       domain.Extreme{Value: daily[0].Yield, Date: "20250102"},
				Mean:      1.65,
				Median:    1.65,
				Variance:  0.0025,
				StdDev:    0.05,
				Quantiles: domain.Quantiles{Q1: 1.625, Q3: 1.675},
			},
		}
	}

	return &domain.CurveReport{
		Metadata: domain.ReportMetadata{
			CurveName: domain.CurveTreasury,
			TimeRange: [2]string{"2025-01-02", "2025-01-03"},
			Currency:  domain.Currency,
		},
		Series:    series,
		TermOrder: order,
	}
}

func TestEncodeReport_Structure(t *testing.T) {
	report := sampleReport(domain.Term10Y)

	raw := curve.EncodeReport(report)

	var decoded struct {
		Metadata struct {
			CurveName string    `json:"curve_name"`
			TimeRange [2]string `json:"time_range"`
			Currency  string    `json:"currency"`
		} `json:"metadata"`
		Series map[string]struct {
			DailyData []struct {
				Date  string  `json:"date"`
				Yield float64 `json:"yield"`
			} `json:"daily_data"`
			Statistics domain.SeriesStats `json:"statistics"`
		} `json:"series"`
		Analysis *struct {
			Correlation map[string]float64 `json:"correlation"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Equal(t, string(domain.CurveTreasury), decoded.Metadata.CurveName)
	require.Equal(t, [2]string{"2025-01-02", "2025-01-03"}, decoded.Metadata.TimeRange)
	require.Equal(t, "CNY", decoded.Metadata.Currency)

	series, ok := decoded.Series["10年"]
	require.True(t, ok)
	require.Len(t, series.DailyData, 2)
	require.Equal(t, "20250102", series.DailyData[0].Date)
	require.Equal(t, 1.6, series.DailyData[0].Yield)
	require.Equal(t, 1.65, series.Statistics.Mean)
	require.Equal(t, "20250103", series.Statistics.Max.Date)

	// single term, no analysis block
	require.Nil(t, decoded.Analysis)
}

func TestEncodeReport_PreservesTermOrder(t *testing.T) {
	report := sampleReport(domain.Term10Y, domain.Term3M, domain.Term5Y)

	out := string(curve.EncodeReport(report))
	first := strings.Index(out, `"10年"`)
	second := strings.Index(out, `"3月"`)
	third := strings.Index(out, `"5年"`)
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	require.Less(t, first, second)
	require.Less(t, second, third)
}

func TestEncodeReport_Analysis(t *testing.T) {
	report := sampleReport(domain.Term5Y, domain.Term10Y)
	report.Analysis = &domain.Analysis{Correlation: map[string]float64{"5年_10年": 1}}

	raw := curve.EncodeReport(report)

	var decoded struct {
		Analysis struct {
			Correlation map[string]float64 `json:"correlation"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, 1.0, decoded.Analysis.Correlation["5年_10年"])
}
