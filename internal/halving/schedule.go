// Package halving maps calendar dates to the Bitcoin block subsidy.
//
// Halvings after the last known checkpoint are placed every 4 calendar years.
// Real halvings happen every 210,000 blocks, so their dates drift with the
// actual block rate; the calendar cadence is an approximation the model keeps.
package halving

import (
	"time"

	"btc-energy-value/internal/model"
)

const (
	// GenesisSubsidy is the subsidy of the first era, in BTC.
	GenesisSubsidy = 50.0

	// IntervalYears is the calendar spacing of derived halvings.
	IntervalYears = 4

	// FutureEras is the number of derived eras after the last known checkpoint
	// (30 eras = 120 years).
	FutureEras = 30
)

// knownEras are the observed halving dates.
var knownEras = []model.Era{
	{Start: model.Date(2009, time.January, 3), SubsidyBTC: 50},
	{Start: model.Date(2012, time.November, 28), SubsidyBTC: 25},
	{Start: model.Date(2016, time.July, 9), SubsidyBTC: 12.5},
	{Start: model.Date(2020, time.May, 11), SubsidyBTC: 6.25},
	{Start: model.Date(2024, time.April, 20), SubsidyBTC: 3.125},
}

// Schedule is an immutable, ascending list of eras.
type Schedule struct {
	eras []model.Era
}

// Default is built once at startup and shared read-only.
var Default = New(FutureEras)

// New builds a schedule from the known checkpoints plus future derived eras.
func New(futureEras int) *Schedule {
	eras := make([]model.Era, 0, len(knownEras)+futureEras)
	eras = append(eras, knownEras...)
	last := knownEras[len(knownEras)-1]
	for i := 0; i < futureEras; i++ {
		last = model.Era{
			Start:      last.Start.AddDate(IntervalYears, 0, 0),
			SubsidyBTC: last.SubsidyBTC / 2,
		}
		eras = append(eras, last)
	}
	return &Schedule{eras: eras}
}

// SubsidyAt returns the subsidy of the last era starting on or before t.
// Dates before genesis get the genesis subsidy.
func (s *Schedule) SubsidyAt(t time.Time) float64 {
	subsidy := GenesisSubsidy
	for _, e := range s.eras {
		if e.Start.After(t) {
			break
		}
		subsidy = e.SubsidyBTC
	}
	return subsidy
}

// Eras returns a copy of the schedule.
func (s *Schedule) Eras() []model.Era {
	out := make([]model.Era, len(s.eras))
	copy(out, s.eras)
	return out
}

// Through returns the eras that start on or before t.
func (s *Schedule) Through(t time.Time) []model.Era {
	out := []model.Era{}
	for _, e := range s.eras {
		if e.Start.After(t) {
			break
		}
		out = append(out, e)
	}
	return out
}

// SubsidyAt uses the Default schedule.
func SubsidyAt(t time.Time) float64 {
	return Default.SubsidyAt(t)
}

// IsKnown reports whether e is one of the observed checkpoints rather than a
// derived era.
func IsKnown(e model.Era) bool {
	for _, k := range knownEras {
		if k.Start.Equal(e.Start) {
			return true
		}
	}
	return false
}
