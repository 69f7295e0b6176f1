package inflation

import (
	"math"
	"testing"
	"time"

	"btc-energy-value/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDiscounter_Factor(t *testing.T) {
	base := model.Date(2024, time.January, 1)
	d := Discounter{Rate: 0.025, BaseDate: base}

	assert.Equal(t, 1.0, d.Factor(base))

	years := 20.0
	at := base.Add(time.Duration(years * model.DaysPerYear * 24 * float64(time.Hour)))
	assert.InDelta(t, math.Pow(1.025, years), d.Factor(at), 1e-12)
}

func TestDiscounter_Real(t *testing.T) {
	base := model.Date(2024, time.January, 1)
	d := Discounter{Rate: 0.03, BaseDate: base}
	at := model.Date(2044, time.January, 1)

	nominal := 100000.0
	r := d.Real(nominal, at)
	assert.Less(t, r, nominal)
	assert.InDelta(t, nominal, r*d.Factor(at), 1e-6)
}

func TestFor(t *testing.T) {
	in := model.DefaultInputs()
	in.CPIPct = 0
	d := For(in)
	assert.Equal(t, 1.0, d.Factor(model.Date(2100, time.June, 1)))
}
