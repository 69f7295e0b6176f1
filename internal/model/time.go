package model

import "time"

// DaysPerYear is the mean Gregorian year length used for fractional-year math.
const DaysPerYear = 365.2425

const secondsPerYear = DaysPerYear * 24 * 3600

// YearsSince returns the signed number of (365.2425-day) years from base to t.
// Unix seconds are used rather than time.Duration, which overflows past ~292 years.
func YearsSince(base, t time.Time) float64 {
	return float64(t.Unix()-base.Unix()) / secondsPerYear
}

// Date is a shorthand for a UTC calendar date at midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string as a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
