package analysis

import (
	"math"
	"sort"

	"btc-energy-value/internal/model"

	"github.com/gonum/stat"
)

// SeriesSummary condenses a valuation series for display and comparison.
type SeriesSummary struct {
	Scenario model.ScenarioName `json:"scenario"`

	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
	Count     int `json:"count"`

	MeasuredYears  int `json:"measured_years"`
	ProjectedYears int `json:"projected_years"`

	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MeanPrice float64 `json:"mean_price"`
	P05Price  float64 `json:"p05_price"`
	P95Price  float64 `json:"p95_price"`

	// CAGR is the compound annual growth of the fair price from the first to the
	// last point; 0 when it is undefined (fewer than two points or a
	// non-positive start).
	CAGR float64 `json:"cagr"`
}

// Summarize computes a SeriesSummary. Series are assumed to be in year order.
func Summarize(sc model.ScenarioName, series []model.SeriesPoint) SeriesSummary {
	s := SeriesSummary{Scenario: sc}
	if len(series) == 0 {
		return s
	}
	s.Count = len(series)
	s.StartYear = series[0].Year
	s.EndYear = series[len(series)-1].Year

	vals := make([]float64, 0, len(series))
	for _, p := range series {
		vals = append(vals, p.Price)
		if p.Source == model.ShareMeasured {
			s.MeasuredYears++
		} else {
			s.ProjectedYears++
		}
	}
	s.MeanPrice = stat.Mean(vals, nil)

	sort.Float64s(vals)
	s.MinPrice = vals[0]
	s.MaxPrice = vals[len(vals)-1]
	s.P05Price = stat.Quantile(0.05, stat.Empirical, vals, nil)
	s.P95Price = stat.Quantile(0.95, stat.Empirical, vals, nil)

	s.CAGR = cagr(series[0].Price, series[len(series)-1].Price, s.EndYear-s.StartYear)
	return s
}

func cagr(first, last float64, years int) float64 {
	if years <= 0 || first <= 0 || last <= 0 {
		return 0
	}
	return math.Pow(last/first, 1/float64(years)) - 1
}
