package valuation

import (
	"time"

	"btc-energy-value/internal/model"
)

// Series samples are taken on this month/day of each year.
const (
	SeriesMonth = time.July
	SeriesDay   = 1
)

// SeriesDate is the sampling date for year.
func SeriesDate(year int) time.Time {
	return model.Date(year, SeriesMonth, SeriesDay)
}

// SeriesFrom values one point per calendar year in [startYear, endYear].
// An inverted range yields an empty series.
func (e *Engine) SeriesFrom(startYear, endYear int, sc model.Scenario, in model.ModelInputs, table model.HistoricalTable) []model.SeriesPoint {
	if endYear < startYear {
		return []model.SeriesPoint{}
	}
	out := make([]model.SeriesPoint, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		r := e.ValuateAt(SeriesDate(y), sc, in, table)
		out = append(out, model.SeriesPoint{
			Year:      y,
			Price:     r.FairPricePerBTC,
			Floor:     r.FloorPricePerBTC,
			PriceReal: r.FairPricePerBTCReal,
			Subsidy:   r.Subsidy,
			Share:     r.NetworkShareUsed,
			Source:    r.ShareSource,
		})
	}
	return out
}
