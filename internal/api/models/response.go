package models

import (
	"time"

	"btc-energy-value/internal/analysis"
	"btc-energy-value/internal/model"
)

// ValuationResponse represents the response from a valuation.
type ValuationResponse struct {
	Result model.ValuationResult `json:"result"`
	// Premium is market/fair - 1, present when a market price was supplied.
	Premium *float64 `json:"premium,omitempty"`
}

// SeriesResponse represents the response from a series request.
type SeriesResponse struct {
	Scenario model.ScenarioName     `json:"scenario"`
	Summary  analysis.SeriesSummary `json:"summary"`
	Points   []model.SeriesPoint    `json:"points,omitempty"`
}

// CompareResponse represents the response from a scenario comparison.
type CompareResponse struct {
	Date     time.Time                  `json:"date"`
	Rankings []analysis.RankedValuation `json:"rankings"`
}

// HistoryResponse lists the loaded historical table.
type HistoryResponse struct {
	Count  int                          `json:"count"`
	Points []model.HistoricalSharePoint `json:"points"`
}

// EraInfo is one era in the halving table.
type EraInfo struct {
	model.Era
	Known bool `json:"known"`
}

// ScenarioInfo describes a preset.
type ScenarioInfo struct {
	model.Scenario
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
