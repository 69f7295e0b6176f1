package data

import (
	"sort"

	"btc-energy-value/internal/energy"
	"btc-energy-value/internal/model"
)

// joulesPerTWh converts energy; secondsPerYear uses the 365.2425-day year.
const (
	joulesPerTWh   = 3.6e15
	secondsPerYear = model.DaysPerYear * 24 * 3600
)

// NetworkTWh converts a sustained hashrate (H/s) at an efficiency (J/TH) into
// yearly consumption in TWh.
func NetworkTWh(hashrate, joulesPerTH float64) float64 {
	watts := hashrate * joulesPerTH / 1e12
	return watts * secondsPerYear / joulesPerTWh
}

// BuildShareTable averages hashrate per calendar year up to and including
// throughYear and converts each year into a share of world electricity.
func BuildShareTable(samples []HashrateSample, curve EfficiencyCurve, world energy.WorldProjector, throughYear int) []model.HistoricalSharePoint {
	type acc struct {
		sum float64
		n   int
	}
	byYear := map[int]*acc{}
	for _, s := range samples {
		y := s.Time().Year()
		if y > throughYear || s.AvgHashrate <= 0 {
			continue
		}
		a := byYear[y]
		if a == nil {
			a = &acc{}
			byYear[y] = a
		}
		a.sum += s.AvgHashrate
		a.n++
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]model.HistoricalSharePoint, 0, len(years))
	for _, y := range years {
		a := byYear[y]
		twh := NetworkTWh(a.sum/float64(a.n), curve.JoulesPerTH(y))
		out = append(out, model.HistoricalSharePoint{
			Year:           y,
			Share:          twh / world.TWh(y),
			ElectricityTWh: twh,
		})
	}
	return out
}
