package model

import "time"

// ModelInputs is the user/scenario state read on every valuation call.
// Units:
// - CapSharePct, FeesPct, ElecDriftPct, CPIPct: percent (1.5 means 1.5%)
// - ElecBaseUSDPerKWh: $/kWh at BaseDate
// - OverheadPhi: multiplier on pure energy cost (cooling, hardware amortization, ...)
// - StackBTC: BTC held, for stack valuation
//
// The model does not validate inputs; callers (config, API) do.
type ModelInputs struct {
	TargetDate        time.Time    `json:"target_date"`
	BaseDate          time.Time    `json:"base_date"`
	Scenario          ScenarioName `json:"scenario"`
	CapSharePct       float64      `json:"cap_share_pct"`
	FeesPct           float64      `json:"fees_pct"`
	ElecBaseUSDPerKWh float64      `json:"elec_base_usd_per_kwh"`
	ElecDriftPct      float64      `json:"elec_drift_pct"`
	CPIPct            float64      `json:"cpi_pct"`
	OverheadPhi       float64      `json:"overhead_phi"`
	StackBTC          float64      `json:"stack_btc"`
}

// DefaultInputs returns the inputs a fresh session starts with.
func DefaultInputs() ModelInputs {
	return ModelInputs{
		TargetDate:        Date(2030, time.January, 1),
		BaseDate:          Date(2024, time.January, 1),
		Scenario:          ScenarioBase,
		CapSharePct:       1.5,
		FeesPct:           15,
		ElecBaseUSDPerKWh: 0.06,
		ElecDriftPct:      2.0,
		CPIPct:            2.5,
		OverheadPhi:       1.15,
		StackBTC:          1.0,
	}
}
