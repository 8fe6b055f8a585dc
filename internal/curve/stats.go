package curve

import (
	"fmt"
	"math"
	"sort"

	"bonddata/pkg/domain"

	"github.com/montanaflynn/stats"
)

// seriesStats computes the descriptive statistics for one term series. The
// daily data must be ordered by date ascending; max/min carry the date of the
// first occurrence of the extreme value.
func seriesStats(daily []domain.DailyYield) (domain.SeriesStats, error) {
	values := make(stats.Float64Data, len(daily))
	for i, d := range daily {
		values[i] = d.Yield
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return domain.SeriesStats{}, fmt.Errorf("could not compute mean: %w", err)
	}
	median, err := stats.Median(values)
	if err != nil {
		return domain.SeriesStats{}, fmt.Errorf("could not compute median: %w", err)
	}
	variance, err := stats.PopulationVariance(values)
	if err != nil {
		return domain.SeriesStats{}, fmt.Errorf("could not compute variance: %w", err)
	}
	stdDev, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return domain.SeriesStats{}, fmt.Errorf("could not compute std dev: %w", err)
	}

	maxE := domain.Extreme{Value: math.Inf(-1)}
	minE := domain.Extreme{Value: math.Inf(1)}
	for _, d := range daily {
		if d.Yield > maxE.Value {
			maxE = domain.Extreme{Value: d.Yield, Date: d.Date}
		}
		if d.Yield < minE.Value {
			minE = domain.Extreme{Value: d.Yield, Date: d.Date}
		}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return domain.SeriesStats{
		Max:      maxE,
		Min:      minE,
		Mean:     roundTo(mean, 4),
		Median:   roundTo(median, 4),
		Variance: roundTo(variance, 6),
		StdDev:   roundTo(stdDev, 4),
		Quantiles: domain.Quantiles{
			Q1: roundTo(quantile(sorted, 0.25), 4),
			Q3: roundTo(quantile(sorted, 0.75), 4),
		},
	}, nil
}

// quantile returns the q-th quantile of an ascending-sorted series using
// linear interpolation between the two nearest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}

	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// correlations computes the pairwise Pearson correlation between term series,
// keyed "<term1>_<term2>" in requested order. Each pair is aligned on its
// common dates; pairs with fewer than two common dates are omitted. Returns
// nil when no pair produced a coefficient.
func correlations(order []domain.Term, series map[domain.Term]domain.TermSeries) (map[string]float64, error) {
	out := make(map[string]float64)
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			a, b := alignSeries(series[order[i]].DailyData, series[order[j]].DailyData)
			if len(a) < 2 {
				continue
			}

			corr, err := stats.Correlation(a, b)
			if err != nil {
				return nil, fmt.Errorf("could not correlate %s and %s: %w", order[i], order[j], err)
			}
			out[string(order[i])+"_"+string(order[j])] = roundTo(corr, 3)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

// alignSeries pairs up the yields of two date-ascending series on the dates
// they share.
func alignSeries(x, y []domain.DailyYield) (stats.Float64Data, stats.Float64Data) {
	byDate := make(map[string]float64, len(y))
	for _, d := range y {
		byDate[d.Date] = d.Yield
	}

	var a, b stats.Float64Data
	for _, d := range x {
		if v, ok := byDate[d.Date]; ok {
			a = append(a, d.Yield)
			b = append(b, v)
		}
	}

	return a, b
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)

	return math.Round(v*scale) / scale
}
