package energy

import "math"

// Defaults for the world electricity projection.
const (
	DefaultWorldBaseTWh  = 30000.0
	DefaultWorldBaseYear = 2024
	DefaultWorldGrowth   = 0.025
)

// WorldProjector extrapolates global electricity consumption exponentially from a
// base year, backward and forward. Extreme years produce implausible values;
// there is no bounding.
type WorldProjector struct {
	BaseTWh  float64
	BaseYear int
	Growth   float64 // fraction per year
}

// DefaultWorld is 30,000 TWh in 2024 growing 2.5%/yr.
var DefaultWorld = WorldProjector{
	BaseTWh:  DefaultWorldBaseTWh,
	BaseYear: DefaultWorldBaseYear,
	Growth:   DefaultWorldGrowth,
}

// TWh returns projected world consumption for year.
func (w WorldProjector) TWh(year int) float64 {
	return w.BaseTWh * math.Pow(1+w.Growth, float64(year-w.BaseYear))
}
