package convtime

import "fmt"

// Duration is a signed span of time stored as a day count. It is the
// result of subtracting two PreciseTime values and the argument to
// PreciseTime.Add.
type Duration float64

// Days builds a Duration from a signed day count.
func Days(days float64) Duration {
	return Duration(days)
}

// Seconds builds a Duration from a signed second count.
func Seconds(seconds float64) Duration {
	return Duration(seconds / SecondsPerDay)
}

// Years builds a Duration from a signed year count using the 365.25-day
// Julian year. This is an approximation, not calendar-aware.
func Years(years float64) Duration {
	return Duration(years * 365.25)
}

// Days returns the span as a signed day count.
func (d Duration) Days() float64 {
	return float64(d)
}

// Seconds returns the span as a signed second count (days * 86400).
func (d Duration) Seconds() float64 {
	return float64(d) * SecondsPerDay
}

// Years returns the span in 365.25-day Julian years. Like Years, this is
// an approximation, not calendar-aware.
func (d Duration) Years() float64 {
	return float64(d) / 365.25
}

// String renders the span in seconds.
func (d Duration) String() string {
	return fmt.Sprintf("%gs", d.Seconds())
}
