// Package energy projects world electricity consumption and regional prices.
package energy

import (
	"math"
	"time"

	"btc-energy-value/internal/model"
)

// PriceModel projects an electricity price ($/kWh) from a base date at a constant
// annual drift. Zero or negative inputs are passed through unchanged.
type PriceModel struct {
	BaseUSDPerKWh float64
	DriftRate     float64 // fraction per year
	BaseDate      time.Time
}

// PriceModelFor builds the price model described by the inputs.
func PriceModelFor(in model.ModelInputs) PriceModel {
	return PriceModel{
		BaseUSDPerKWh: in.ElecBaseUSDPerKWh,
		DriftRate:     in.ElecDriftPct / 100,
		BaseDate:      in.BaseDate,
	}
}

// USDPerKWh returns the price at t under scenario sc.
func (p PriceModel) USDPerKWh(t time.Time, sc model.Scenario) float64 {
	years := model.YearsSince(p.BaseDate, t)
	return p.BaseUSDPerKWh * math.Pow(1+p.DriftRate, years) * sc.ElectricityPriceMultiplier
}
