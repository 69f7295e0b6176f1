package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoricalTable_Lookup(t *testing.T) {
	table := NewHistoricalTable([]HistoricalSharePoint{
		{Year: 2021, Share: 0.004, ElectricityTWh: 110},
		{Year: 2020, Share: 0.003, ElectricityTWh: 80},
		{Year: 2022, Share: math.NaN()},
	})

	p, ok := table.Lookup(2021)
	require.True(t, ok)
	assert.Equal(t, 0.004, p.Share)

	_, ok = table.Lookup(2022)
	assert.False(t, ok, "NaN share counts as missing")

	_, ok = table.Lookup(2019)
	assert.False(t, ok)
}

func TestHistoricalTable_Ordering(t *testing.T) {
	table := NewHistoricalTable([]HistoricalSharePoint{
		{Year: 2015, Share: 0.001},
		{Year: 2012, Share: 0.0001},
		{Year: 2018, Share: 0.002},
	})

	last, ok := table.LastYear()
	require.True(t, ok)
	assert.Equal(t, 2018, last)
	assert.Equal(t, []int{2012, 2015, 2018}, table.Years())

	pts := table.Points()
	require.Len(t, pts, 3)
	assert.Equal(t, 2012, pts[0].Year)

	without := table.Without(2018)
	assert.Len(t, without, 2)
	assert.Len(t, table, 3)
}

func TestHistoricalTable_Empty(t *testing.T) {
	var table HistoricalTable
	_, ok := table.LastYear()
	assert.False(t, ok)
	assert.Empty(t, table.Years())
}

func TestScenarioByName(t *testing.T) {
	sc, ok := ScenarioByName(" Bullish ")
	require.True(t, ok)
	assert.Equal(t, Bullish, sc)

	_, ok = ScenarioByName("sideways")
	assert.False(t, ok)

	presets := Scenarios()
	require.Len(t, presets, 3)
	for i := 1; i < len(presets); i++ {
		assert.GreaterOrEqual(t, presets[i].CapUtilizationMultiplier, presets[i-1].CapUtilizationMultiplier)
		assert.GreaterOrEqual(t, presets[i].ElectricityPriceMultiplier, presets[i-1].ElectricityPriceMultiplier)
		assert.GreaterOrEqual(t, presets[i].MarkupMultiplier, presets[i-1].MarkupMultiplier)
	}
}

func TestYearsSince(t *testing.T) {
	base := Date(2024, time.January, 1)
	assert.Equal(t, 0.0, YearsSince(base, base))
	assert.InDelta(t, 1.0, YearsSince(base, base.Add(time.Duration(DaysPerYear*24*float64(time.Hour)))), 1e-9)
	assert.Less(t, YearsSince(base, Date(2000, time.January, 1)), 0.0)
	assert.InDelta(t, 476.0, YearsSince(base, Date(2500, time.January, 1)), 0.01)
}
