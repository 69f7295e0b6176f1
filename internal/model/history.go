package model

import (
	"math"
	"sort"
)

// HistoricalSharePoint is Bitcoin's measured share of world electricity in one year.
// Units:
// - Share: fraction 0..1
// - ElectricityTWh: TWh consumed by the network in that year
type HistoricalSharePoint struct {
	Year           int     `json:"year"`
	Share          float64 `json:"share"`
	ElectricityTWh float64 `json:"electricity_twh"`
}

// HistoricalTable maps a calendar year to its measured point.
// It is read-only input to the valuation model; nothing in the model mutates it.
type HistoricalTable map[int]HistoricalSharePoint

// NewHistoricalTable keys points by year. Later duplicates win.
func NewHistoricalTable(points []HistoricalSharePoint) HistoricalTable {
	t := make(HistoricalTable, len(points))
	for _, p := range points {
		t[p.Year] = p
	}
	return t
}

// Lookup returns the measured point for year. Points whose share is not a finite
// number are reported as absent.
func (t HistoricalTable) Lookup(year int) (HistoricalSharePoint, bool) {
	p, ok := t[year]
	if !ok || !isFinite(p.Share) {
		return HistoricalSharePoint{}, false
	}
	return p, true
}

// LastYear returns the latest year present in the table.
func (t HistoricalTable) LastYear() (int, bool) {
	if len(t) == 0 {
		return 0, false
	}
	last := math.MinInt
	for y := range t {
		if y > last {
			last = y
		}
	}
	return last, true
}

// Years returns the table's years in ascending order.
func (t HistoricalTable) Years() []int {
	out := make([]int, 0, len(t))
	for y := range t {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// Points returns the table's points ordered by year.
func (t HistoricalTable) Points() []HistoricalSharePoint {
	years := t.Years()
	out := make([]HistoricalSharePoint, 0, len(years))
	for _, y := range years {
		out = append(out, t[y])
	}
	return out
}

// Without returns a copy of the table with year removed.
func (t HistoricalTable) Without(year int) HistoricalTable {
	out := make(HistoricalTable, len(t))
	for y, p := range t {
		if y != year {
			out[y] = p
		}
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
