// Package valuation turns energy cost into a per-BTC price.
package valuation

import (
	"time"

	"btc-energy-value/internal/energy"
	"btc-energy-value/internal/halving"
	"btc-energy-value/internal/inflation"
	"btc-energy-value/internal/model"
	"btc-energy-value/internal/share"
)

// TargetBlockSeconds is the block interval the model assumes; difficulty
// adjustment variance is not modeled.
const TargetBlockSeconds = 600

// BlocksPerYear is the number of blocks in a 365.2425-day year.
const BlocksPerYear = model.DaysPerYear * 24 * 3600 / TargetBlockSeconds

// Engine composes the schedule, projections and share estimator. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	Schedule  *halving.Schedule
	World     energy.WorldProjector
	Estimator share.Estimator
}

func New() *Engine {
	return &Engine{
		Schedule:  halving.Default,
		World:     energy.DefaultWorld,
		Estimator: share.Default,
	}
}

// ValuateAt prices one BTC at t.
func (e *Engine) ValuateAt(t time.Time, sc model.Scenario, in model.ModelInputs, table model.HistoricalTable) model.ValuationResult {
	subsidy := e.Schedule.SubsidyAt(t)
	effSubsidy := subsidy * (1 + in.FeesPct/100)

	year := t.Year()
	worldTWh := e.World.TWh(year)
	est := e.Estimator.Estimate(year, sc, in.CapSharePct, table)
	btcTWh := worldTWh * est.Share

	energyPerBlockWh := btcTWh * 1e12 / BlocksPerYear
	priceKWh := energy.PriceModelFor(in).USDPerKWh(t, sc)
	costPerBlock := energyPerBlockWh / 1000 * priceKWh * in.OverheadPhi

	floor := costPerBlock / effSubsidy
	fair := floor * sc.MarkupMultiplier
	cpi := inflation.For(in)
	fairReal := cpi.Real(fair, t)

	return model.ValuationResult{
		Date:     t,
		Scenario: sc.Name,

		Subsidy:          subsidy,
		EffectiveSubsidy: effSubsidy,

		NetworkShareUsed:     est.Share,
		ShareSource:          est.Source,
		WorldElectricityTWh:  worldTWh,
		BTCElectricityTWh:    btcTWh,
		ElectricityUSDPerKWh: priceKWh,
		CostPerBlockUSD:      costPerBlock,

		FloorPricePerBTC:    floor,
		FairPricePerBTC:     fair,
		FairPricePerBTCReal: fairReal,

		StackValueUSD:     in.StackBTC * fair,
		StackValueUSDReal: in.StackBTC * fairReal,
	}
}

// Compare values t under every preset, bearish first.
func (e *Engine) Compare(t time.Time, in model.ModelInputs, table model.HistoricalTable) []model.ValuationResult {
	presets := model.Scenarios()
	out := make([]model.ValuationResult, 0, len(presets))
	for _, sc := range presets {
		out = append(out, e.ValuateAt(t, sc, in, table))
	}
	return out
}

// Premium is how far a market price sits above (positive) or below (negative)
// the fair price, as a fraction. A non-positive fair price yields 0.
func Premium(marketPrice, fairPrice float64) float64 {
	if fairPrice <= 0 {
		return 0
	}
	return marketPrice/fairPrice - 1
}
