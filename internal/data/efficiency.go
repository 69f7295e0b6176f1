package data

import (
	"math"
	"sort"
)

// EfficiencyPoint is the fleet-average mining efficiency in a year, in J/TH.
type EfficiencyPoint struct {
	Year        int
	JoulesPerTH float64
}

// EfficiencyCurve interpolates fleet efficiency between known years.
// Points must be sorted by year.
type EfficiencyCurve []EfficiencyPoint

// DefaultEfficiency tracks the fleet from CPUs through GPUs, FPGAs and
// successive ASIC generations. Values are network averages, not best-in-class.
var DefaultEfficiency = EfficiencyCurve{
	{Year: 2009, JoulesPerTH: 1e8},
	{Year: 2011, JoulesPerTH: 5e5},
	{Year: 2012, JoulesPerTH: 1e5},
	{Year: 2013, JoulesPerTH: 9000},
	{Year: 2014, JoulesPerTH: 1000},
	{Year: 2015, JoulesPerTH: 500},
	{Year: 2016, JoulesPerTH: 250},
	{Year: 2017, JoulesPerTH: 110},
	{Year: 2018, JoulesPerTH: 95},
	{Year: 2019, JoulesPerTH: 70},
	{Year: 2020, JoulesPerTH: 55},
	{Year: 2021, JoulesPerTH: 45},
	{Year: 2022, JoulesPerTH: 38},
	{Year: 2023, JoulesPerTH: 30},
	{Year: 2024, JoulesPerTH: 25},
	{Year: 2025, JoulesPerTH: 22},
}

// JoulesPerTH returns the efficiency for year, interpolating log-linearly
// between points and holding the end values outside the table.
func (c EfficiencyCurve) JoulesPerTH(year int) float64 {
	if len(c) == 0 {
		return math.NaN()
	}
	if year <= c[0].Year {
		return c[0].JoulesPerTH
	}
	last := c[len(c)-1]
	if year >= last.Year {
		return last.JoulesPerTH
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].Year >= year })
	hi := c[i]
	if hi.Year == year {
		return hi.JoulesPerTH
	}
	lo := c[i-1]
	frac := float64(year-lo.Year) / float64(hi.Year-lo.Year)
	return math.Exp(math.Log(lo.JoulesPerTH)*(1-frac) + math.Log(hi.JoulesPerTH)*frac)
}
