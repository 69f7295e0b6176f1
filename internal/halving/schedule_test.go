package halving

import (
	"testing"
	"time"

	"btc-energy-value/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsidyAt_KnownCheckpoints(t *testing.T) {
	prev := GenesisSubsidy
	for i, e := range knownEras {
		assert.Equal(t, e.SubsidyBTC, SubsidyAt(e.Start), "era %d start", i)
		assert.Equal(t, e.SubsidyBTC, SubsidyAt(e.Start.Add(24*time.Hour)), "era %d day after", i)
		if i > 0 {
			assert.Equal(t, prev, SubsidyAt(e.Start.Add(-time.Second)), "era %d just before", i)
		}
		prev = e.SubsidyBTC
	}
}

func TestSubsidyAt_BeforeGenesis(t *testing.T) {
	assert.Equal(t, 50.0, SubsidyAt(model.Date(2008, time.October, 31)))
	assert.Equal(t, 50.0, SubsidyAt(model.Date(1900, time.January, 1)))
}

func TestSubsidyAt_CalendarHalvings(t *testing.T) {
	assert.Equal(t, 3.125, SubsidyAt(model.Date(2028, time.April, 19)))
	assert.Equal(t, 1.5625, SubsidyAt(model.Date(2028, time.April, 20)))
	assert.Equal(t, 0.78125, SubsidyAt(model.Date(2032, time.April, 20)))

	last := knownEras[len(knownEras)-1]
	for k := 1; k <= 25; k++ {
		d := last.Start.AddDate(IntervalYears*k, 0, 0)
		before := SubsidyAt(d.Add(-time.Hour))
		after := SubsidyAt(d)
		assert.Equal(t, before/2, after, "halving %d", k)
	}
}

func TestSubsidyAt_NonIncreasing(t *testing.T) {
	prev := SubsidyAt(model.Date(2008, time.January, 1))
	for d := model.Date(2008, time.January, 1); d.Year() < 2160; d = d.AddDate(0, 1, 0) {
		s := SubsidyAt(d)
		require.LessOrEqual(t, s, prev, "at %s", d.Format("2006-01-02"))
		require.Greater(t, s, 0.0)
		prev = s
	}
}

func TestSchedule_CoversCentury(t *testing.T) {
	eras := Default.Eras()
	require.Len(t, eras, len(knownEras)+FutureEras)
	lastKnown := knownEras[len(knownEras)-1].Start
	assert.GreaterOrEqual(t, eras[len(eras)-1].Start.Year()-lastKnown.Year(), 100)

	for i := 1; i < len(eras); i++ {
		assert.True(t, eras[i].Start.After(eras[i-1].Start))
		assert.Equal(t, eras[i-1].SubsidyBTC/2, eras[i].SubsidyBTC)
	}
}

func TestSchedule_ErasIsACopy(t *testing.T) {
	eras := Default.Eras()
	eras[0].SubsidyBTC = 1
	assert.Equal(t, 50.0, Default.Eras()[0].SubsidyBTC)
}

func TestSchedule_Through(t *testing.T) {
	got := Default.Through(model.Date(2021, time.January, 1))
	require.Len(t, got, 4)
	assert.Equal(t, 6.25, got[3].SubsidyBTC)
	assert.Empty(t, Default.Through(model.Date(2000, time.January, 1)))
}

func TestIsKnown(t *testing.T) {
	eras := Default.Eras()
	for i, e := range eras {
		assert.Equal(t, i < len(knownEras), IsKnown(e), "era %d", i)
	}
}
