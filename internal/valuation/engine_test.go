package valuation

import (
	"math"
	"testing"
	"time"

	"btc-energy-value/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInputs() model.ModelInputs {
	in := model.DefaultInputs()
	in.CapSharePct = 1.5
	in.FeesPct = 15
	in.ElecBaseUSDPerKWh = 0.06
	in.OverheadPhi = 1.15
	return in
}

func historyTable() model.HistoricalTable {
	return model.NewHistoricalTable([]model.HistoricalSharePoint{
		{Year: 2016, Share: 0.0006, ElectricityTWh: 14},
		{Year: 2018, Share: 0.0018, ElectricityTWh: 48},
		{Year: 2020, Share: 0.0028, ElectricityTWh: 75},
		{Year: 2022, Share: 0.0040, ElectricityTWh: 115},
		{Year: 2023, Share: 0.0045, ElectricityTWh: 130},
	})
}

func TestValuateAt_ReferenceCase(t *testing.T) {
	in := referenceInputs()
	date := model.Date(2024, time.April, 20)

	r := New().ValuateAt(date, model.Base, in, model.HistoricalTable{})

	// Hand-computed chain.
	blocksPerYear := 365.2425 * 24 * 3600 / 600
	share := 0.001 // empty table: projected branch anchored at 2024 with the default share
	btcTWh := 30000 * share
	energyPerBlockWh := btcTWh * 1e12 / blocksPerYear
	years := model.YearsSince(in.BaseDate, date)
	price := 0.06 * math.Pow(1+in.ElecDriftPct/100, years)
	cost := energyPerBlockWh / 1000 * price * 1.15
	floor := cost / (3.125 * 1.15)
	fair := floor * 1.5
	fairReal := fair / math.Pow(1+in.CPIPct/100, years)

	assert.Equal(t, 3.125, r.Subsidy)
	assert.InEpsilon(t, 3.125*1.15, r.EffectiveSubsidy, 1e-12)
	assert.Equal(t, model.ShareProjected, r.ShareSource)
	assert.InEpsilon(t, share, r.NetworkShareUsed, 1e-6)
	assert.InEpsilon(t, floor, r.FloorPricePerBTC, 1e-6)
	assert.InEpsilon(t, fair, r.FairPricePerBTC, 1e-6)
	assert.InEpsilon(t, fairReal, r.FairPricePerBTCReal, 1e-6)
	assert.InEpsilon(t, fair*in.StackBTC, r.StackValueUSD, 1e-6)
}

func TestValuateAt_UsesMeasuredShare(t *testing.T) {
	table := historyTable()
	r := New().ValuateAt(model.Date(2020, time.July, 1), model.Base, referenceInputs(), table)

	assert.Equal(t, model.ShareMeasured, r.ShareSource)
	assert.Equal(t, 0.0028, r.NetworkShareUsed)
	assert.Equal(t, 6.25, r.Subsidy)
}

func TestValuateAt_FloorAndMarkup(t *testing.T) {
	r := New().ValuateAt(model.Date(2035, time.March, 1), model.Bullish, referenceInputs(), historyTable())
	assert.InEpsilon(t, r.FloorPricePerBTC*model.Bullish.MarkupMultiplier, r.FairPricePerBTC, 1e-12)
	assert.Less(t, r.FairPricePerBTCReal, r.FairPricePerBTC)
	assert.InEpsilon(t, r.CostPerBlockUSD/r.EffectiveSubsidy, r.FloorPricePerBTC, 1e-12)
}

func TestValuateAt_ScenarioOrdering(t *testing.T) {
	e := New()
	in := referenceInputs()
	tables := map[string]model.HistoricalTable{
		"empty":   {},
		"history": historyTable(),
	}
	for name, table := range tables {
		anchor, _ := e.Estimator.Anchor(table)
		for year := anchor; year <= 2120; year++ {
			for _, d := range []time.Time{model.Date(year, time.January, 1), model.Date(year, time.September, 15)} {
				bear := e.ValuateAt(d, model.Bearish, in, table).FairPricePerBTC
				base := e.ValuateAt(d, model.Base, in, table).FairPricePerBTC
				bull := e.ValuateAt(d, model.Bullish, in, table).FairPricePerBTC
				require.GreaterOrEqual(t, bull, base, "%s %s", name, d.Format("2006-01-02"))
				require.GreaterOrEqual(t, base, bear, "%s %s", name, d.Format("2006-01-02"))
			}
		}
	}
}

func TestValuateAt_ZeroCapIsFinite(t *testing.T) {
	in := referenceInputs()
	in.CapSharePct = 0
	r := New().ValuateAt(model.Date(2040, time.January, 1), model.Base, in, historyTable())
	assert.False(t, math.IsNaN(r.FairPricePerBTC))
	assert.False(t, math.IsInf(r.FairPricePerBTC, 0))
}

func TestSeriesFrom_OnePointPerYear(t *testing.T) {
	series := New().SeriesFrom(2009, 2050, model.Base, model.DefaultInputs(), model.HistoricalTable{})
	require.Len(t, series, 42)
	for i, p := range series {
		assert.Equal(t, 2009+i, p.Year)
	}
}

func TestSeriesFrom_MatchesValuateAt(t *testing.T) {
	e := New()
	in := referenceInputs()
	table := historyTable()

	series := e.SeriesFrom(2015, 2030, model.Base, in, table)
	again := e.SeriesFrom(2015, 2030, model.Base, in, table)
	assert.Equal(t, series, again)

	for _, p := range series {
		r := e.ValuateAt(SeriesDate(p.Year), model.Base, in, table)
		assert.Equal(t, r.FairPricePerBTC, p.Price)
		assert.Equal(t, r.FloorPricePerBTC, p.Floor)
		assert.Equal(t, r.ShareSource, p.Source)
	}
}

func TestSeriesFrom_InvertedRange(t *testing.T) {
	series := New().SeriesFrom(2050, 2009, model.Base, model.DefaultInputs(), nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)

	single := New().SeriesFrom(2030, 2030, model.Base, model.DefaultInputs(), nil)
	assert.Len(t, single, 1)
}

func TestCompare(t *testing.T) {
	got := New().Compare(model.Date(2030, time.January, 1), referenceInputs(), historyTable())
	require.Len(t, got, 3)
	assert.Equal(t, model.ScenarioBearish, got[0].Scenario)
	assert.Equal(t, model.ScenarioBase, got[1].Scenario)
	assert.Equal(t, model.ScenarioBullish, got[2].Scenario)
}

func TestPremium(t *testing.T) {
	assert.InDelta(t, 0.5, Premium(150, 100), 1e-12)
	assert.InDelta(t, -0.25, Premium(75, 100), 1e-12)
	assert.Equal(t, 0.0, Premium(100, 0))
	assert.Equal(t, 0.0, Premium(100, -5))
}

func TestBlocksPerYear(t *testing.T) {
	assert.InDelta(t, 52594.2, BlocksPerYear, 1e-9)
}
