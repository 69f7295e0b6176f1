package model

import "time"

// ShareSource tells whether a network share came from measurement or projection.
type ShareSource string

const (
	ShareMeasured  ShareSource = "measured"
	ShareProjected ShareSource = "projected"
)

// ValuationResult is the output of a single valuation call.
// Prices are USD per BTC; *Real fields are CPI-discounted to BaseDate dollars.
type ValuationResult struct {
	Date     time.Time    `json:"date"`
	Scenario ScenarioName `json:"scenario"`

	Subsidy          float64 `json:"subsidy"`
	EffectiveSubsidy float64 `json:"effective_subsidy"`

	NetworkShareUsed     float64     `json:"network_share_used"`
	ShareSource          ShareSource `json:"share_source"`
	WorldElectricityTWh  float64     `json:"world_electricity_twh"`
	BTCElectricityTWh    float64     `json:"btc_electricity_twh"`
	ElectricityUSDPerKWh float64     `json:"electricity_usd_per_kwh"`
	CostPerBlockUSD      float64     `json:"cost_per_block_usd"`

	FloorPricePerBTC    float64 `json:"floor_price_per_btc"`
	FairPricePerBTC     float64 `json:"fair_price_per_btc"`
	FairPricePerBTCReal float64 `json:"fair_price_per_btc_real"`

	StackValueUSD     float64 `json:"stack_value_usd"`
	StackValueUSDReal float64 `json:"stack_value_usd_real"`
}

// SeriesPoint is one yearly sample of a valuation series.
// Price is the nominal fair price; the other prices are carried for charting.
type SeriesPoint struct {
	Year      int         `json:"year"`
	Price     float64     `json:"price"`
	Floor     float64     `json:"floor"`
	PriceReal float64     `json:"price_real"`
	Subsidy   float64     `json:"subsidy"`
	Share     float64     `json:"share"`
	Source    ShareSource `json:"source"`
}
