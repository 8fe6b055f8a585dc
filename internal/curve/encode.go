package curve

import (
	"bonddata/pkg/domain"

	"github.com/go-faster/jx"
)

// EncodeReport serializes a report to JSON. Encoding by hand keeps the series
// in requested term order, map-based marshaling would sort or randomize the
// keys.
func EncodeReport(report *domain.CurveReport) []byte {
	var e jx.Encoder

	e.Obj(func(e *jx.Encoder) {
		e.Field("metadata", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("curve_name", func(e *jx.Encoder) { e.Str(string(report.Metadata.CurveName)) })
				e.Field("time_range", func(e *jx.Encoder) {
					e.Arr(func(e *jx.Encoder) {
						e.Str(report.Metadata.TimeRange[0])
						e.Str(report.Metadata.TimeRange[1])
					})
				})
				e.Field("currency", func(e *jx.Encoder) { e.Str(report.Metadata.Currency) })
			})
		})

		e.Field("series", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, term := range report.TermOrder {
					series := report.Series[term]
					e.Field(string(term), func(e *jx.Encoder) {
						encodeTermSeries(e, series)
					})
				}
			})
		})

		if report.Analysis != nil {
			e.Field("analysis", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("correlation", func(e *jx.Encoder) {
						e.Obj(func(e *jx.Encoder) {
							// pair keys follow the requested term order
							for i := 0; i < len(report.TermOrder); i++ {
								for j := i + 1; j < len(report.TermOrder); j++ {
									key := string(report.TermOrder[i]) + "_" + string(report.TermOrder[j])
									v, ok := report.Analysis.Correlation[key]
									if !ok {
										continue
									}
									e.Field(key, func(e *jx.Encoder) { e.Float64(v) })
								}
							}
						})
					})
				})
			})
		}
	})

	return e.Bytes()
}

func encodeTermSeries(e *jx.Encoder, series domain.TermSeries) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("daily_data", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, d := range series.DailyData {
					e.Obj(func(e *jx.Encoder) {
						e.Field("date", func(e *jx.Encoder) { e.Str(d.Date) })
						e.Field("yield", func(e *jx.Encoder) { e.Float64(d.Yield) })
					})
				}
			})
		})
		e.Field("statistics", func(e *jx.Encoder) {
			encodeStats(e, series.Statistics)
		})
	})
}

func encodeStats(e *jx.Encoder, st domain.SeriesStats) {
	extreme := func(x domain.Extreme) func(e *jx.Encoder) {
		return func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("value", func(e *jx.Encoder) { e.Float64(x.Value) })
				e.Field("date", func(e *jx.Encoder) { e.Str(x.Date) })
			})
		}
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("max", extreme(st.Max))
		e.Field("min", extreme(st.Min))
		e.Field("mean", func(e *jx.Encoder) { e.Float64(st.Mean) })
		e.Field("median", func(e *jx.Encoder) { e.Float64(st.Median) })
		e.Field("variance", func(e *jx.Encoder) { e.Float64(st.Variance) })
		e.Field("std_dev", func(e *jx.Encoder) { e.Float64(st.StdDev) })
		e.Field("quantiles", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("q1", func(e *jx.Encoder) { e.Float64(st.Quantiles.Q1) })
				e.Field("q3", func(e *jx.Encoder) { e.Float64(st.Quantiles.Q3) })
			})
		})
	})
}
