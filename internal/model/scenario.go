package model

import "strings"

// ScenarioName is a stable identifier for a scenario preset.
// Keep these values stable; they are used in config files, CSV output and the API.
type ScenarioName string

const (
	ScenarioBearish ScenarioName = "bearish"
	ScenarioBase    ScenarioName = "base"
	ScenarioBullish ScenarioName = "bullish"
)

// Scenario scales the user inputs into a bearish/base/bullish view.
//   - CapUtilizationMultiplier scales the long-run energy share ceiling.
//   - ElectricityPriceMultiplier scales the projected $/kWh.
//   - MarkupMultiplier turns the cost floor into a fair price.
type Scenario struct {
	Name                       ScenarioName `json:"name" yaml:"name"`
	CapUtilizationMultiplier   float64      `json:"cap_utilization_multiplier" yaml:"cap_utilization_multiplier"`
	ElectricityPriceMultiplier float64      `json:"electricity_price_multiplier" yaml:"electricity_price_multiplier"`
	MarkupMultiplier           float64      `json:"markup_multiplier" yaml:"markup_multiplier"`
}

var (
	Bearish = Scenario{
		Name:                       ScenarioBearish,
		CapUtilizationMultiplier:   0.5,
		ElectricityPriceMultiplier: 0.8,
		MarkupMultiplier:           1.2,
	}
	Base = Scenario{
		Name:                       ScenarioBase,
		CapUtilizationMultiplier:   1.0,
		ElectricityPriceMultiplier: 1.0,
		MarkupMultiplier:           1.5,
	}
	Bullish = Scenario{
		Name:                       ScenarioBullish,
		CapUtilizationMultiplier:   1.5,
		ElectricityPriceMultiplier: 1.25,
		MarkupMultiplier:           2.0,
	}
)

// Scenarios returns the presets ordered from most bearish to most bullish.
func Scenarios() []Scenario {
	return []Scenario{Bearish, Base, Bullish}
}

// ScenarioByName resolves a preset, case-insensitively.
func ScenarioByName(name string) (Scenario, bool) {
	switch ScenarioName(strings.ToLower(strings.TrimSpace(name))) {
	case ScenarioBearish:
		return Bearish, true
	case ScenarioBase:
		return Base, true
	case ScenarioBullish:
		return Bullish, true
	default:
		return Scenario{}, false
	}
}
