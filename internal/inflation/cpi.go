// Package inflation converts nominal future dollars into base-date dollars.
package inflation

import (
	"math"
	"time"

	"btc-energy-value/internal/model"
)

// Discounter compounds a constant CPI rate from BaseDate.
type Discounter struct {
	Rate     float64 // fraction per year
	BaseDate time.Time
}

// For builds the discounter described by the inputs.
func For(in model.ModelInputs) Discounter {
	return Discounter{Rate: in.CPIPct / 100, BaseDate: in.BaseDate}
}

// Factor returns the cumulative price level at t relative to BaseDate.
func (d Discounter) Factor(t time.Time) float64 {
	return math.Pow(1+d.Rate, model.YearsSince(d.BaseDate, t))
}

// Real converts a nominal amount at t into BaseDate dollars.
func (d Discounter) Real(nominal float64, t time.Time) float64 {
	return nominal / d.Factor(t)
}
