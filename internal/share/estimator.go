// Package share estimates Bitcoin's share of world electricity for a year.
//
// Years with a measured value in the historical table use it as is. Other years
// are projected with a logistic adoption curve that passes through the last
// measured point and approaches the scenario's ceiling share.
package share

import (
	"btc-energy-value/internal/energy"
	"btc-energy-value/internal/model"
)

// Estimate is the result of a share lookup. Curve is only set for projected
// estimates.
type Estimate struct {
	Year   int
	Share  float64
	Source model.ShareSource
	Curve  *Curve
}

// Estimator projects shares. BaseYear is the anchor used when the table is empty.
type Estimator struct {
	BaseYear int
}

// Default anchors empty tables at the world projection's base year.
var Default = Estimator{BaseYear: energy.DefaultWorldBaseYear}

// CapFraction is the ceiling share for a cap percentage under sc.
func CapFraction(capSharePct float64, sc model.Scenario) float64 {
	return capSharePct / 100 * sc.CapUtilizationMultiplier
}

// Anchor returns the year and share the projection is pinned to.
func (e Estimator) Anchor(table model.HistoricalTable) (int, float64) {
	year, ok := table.LastYear()
	if !ok {
		return e.BaseYear, DefaultAnchorShare
	}
	p, ok := table.Lookup(year)
	if !ok {
		return year, DefaultAnchorShare
	}
	return year, p.Share
}

// Fit builds the projection curve for a scenario and cap.
func (e Estimator) Fit(sc model.Scenario, capSharePct float64, table model.HistoricalTable) Curve {
	year, anchorShare := e.Anchor(table)
	return FitCurve(year, anchorShare, CapFraction(capSharePct, sc))
}

// Estimate returns the measured share for year if there is one, else the
// projected share.
func (e Estimator) Estimate(year int, sc model.Scenario, capSharePct float64, table model.HistoricalTable) Estimate {
	if p, ok := table.Lookup(year); ok {
		return Estimate{Year: year, Share: p.Share, Source: model.ShareMeasured}
	}
	c := e.Fit(sc, capSharePct, table)
	return Estimate{
		Year:   year,
		Share:  c.At(float64(year)),
		Source: model.ShareProjected,
		Curve:  &c,
	}
}

// ShareAt returns the share fraction for year.
func (e Estimator) ShareAt(year int, sc model.Scenario, capSharePct float64, table model.HistoricalTable) float64 {
	return e.Estimate(year, sc, capSharePct, table).Share
}

// ShareAt uses the Default estimator.
func ShareAt(year int, sc model.Scenario, capSharePct float64, table model.HistoricalTable) float64 {
	return Default.ShareAt(year, sc, capSharePct, table)
}
