package models

import "btc-energy-value/internal/config"

// ValuationRequest represents the request body for a single valuation.
type ValuationRequest struct {
	Inputs config.InputsConfig `json:"inputs"`
	// Date overrides inputs.target_date (YYYY-MM-DD).
	Date string `json:"date,omitempty"`
	// Scenario overrides inputs.scenario.
	Scenario string `json:"scenario,omitempty"`
	// MarketPriceUSD, when set, adds the market premium over fair value.
	MarketPriceUSD float64 `json:"market_price_usd,omitempty" binding:"gte=0"`
}

// SeriesRequest represents the request body for a yearly series.
type SeriesRequest struct {
	Inputs    config.InputsConfig `json:"inputs"`
	Scenario  string              `json:"scenario,omitempty"`
	StartYear int                 `json:"start_year" binding:"required"`
	EndYear   int                 `json:"end_year" binding:"required,gtefield=StartYear"`
	// IncludePoints returns the points as well as the summary (default: true).
	IncludePoints *bool `json:"include_points,omitempty"`
}

// CompareRequest values one date under every scenario.
type CompareRequest struct {
	Inputs         config.InputsConfig `json:"inputs"`
	Date           string              `json:"date,omitempty"`
	MarketPriceUSD float64             `json:"market_price_usd,omitempty" binding:"gte=0"`
}

// HalvingsRequest represents query parameters for the era table.
type HalvingsRequest struct {
	Through string `form:"through,omitempty"` // YYYY-MM-DD, default: all eras
}
