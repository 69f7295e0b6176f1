package share

import "math"

const (
	// Steepness is the logistic growth rate per year.
	Steepness = 0.55

	// Floor keeps the adoption ratio away from 0 and 1 so the logit stays finite.
	Floor = 1e-6

	// DefaultAnchorShare is used when the table has no usable anchor share.
	DefaultAnchorShare = 0.001

	// DefaultRatio stands in for anchor/cap when the cap is not positive.
	DefaultRatio = 0.01
)

// Curve is a logistic adoption curve scaled to Cap and anchored so that
// At(AnchorYear) == Cap * anchor ratio.
type Curve struct {
	Cap        float64 // long-run ceiling share
	Midpoint   float64 // year at which the curve is at Cap/2
	Steepness  float64
	AnchorYear int
	Ratio      float64 // anchor share / cap, clamped into (Floor, 1-Floor)
}

// FitCurve solves for the midpoint that puts the curve through
// (anchorYear, anchorShare): logistic(anchorYear) == a0 requires
// y0 = anchorYear + ln(1/a0 - 1)/k.
func FitCurve(anchorYear int, anchorShare, capFraction float64) Curve {
	a0 := DefaultRatio
	if capFraction > 0 {
		a0 = clamp(anchorShare/capFraction, Floor, 1-Floor)
	}
	y0 := float64(anchorYear) + math.Log(1/a0-1)/Steepness
	return Curve{
		Cap:        capFraction,
		Midpoint:   y0,
		Steepness:  Steepness,
		AnchorYear: anchorYear,
		Ratio:      a0,
	}
}

// Adoption returns the curve's progress toward the cap at year, in [Floor, 1].
func (c Curve) Adoption(year float64) float64 {
	x := 1 / (1 + math.Exp(-c.Steepness*(year-c.Midpoint)))
	return clamp(x, Floor, 1)
}

// At returns the projected share at year.
func (c Curve) At(year float64) float64 {
	return c.Cap * c.Adoption(year)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
