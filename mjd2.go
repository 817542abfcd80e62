package convtime

import "math"

// MJD2 is the canonical two-part Modified Julian Day value: the time is
// Day + Frac days after the MJD epoch (1858-11-17 00:00 UTC).
//
// Invariant: 0 <= Frac < 1. Construct values through Normalize (or the
// adapters) so the invariant holds; arithmetic that disturbs Frac carries
// the overflow back into Day.
type MJD2 struct {
	// Day is the integer Modified Julian Day.
	Day int

	// Frac is the fraction of the day elapsed since midnight, in [0,1).
	Frac float64
}

// Normalize builds an MJD2 from an arbitrary (day, frac) pair, carrying
// whole days out of frac until 0 <= frac < 1.
//
//	Normalize(57022, 1.2)  == MJD2{57023, 0.19999999999999996}
//	Normalize(57022, -1.2) == MJD2{57020, 0.8}
func Normalize(day int, frac float64) MJD2 {
	carry := math.Floor(frac)
	day += int(carry)
	frac -= carry
	if frac >= 1 {
		// A tiny negative frac rounds up to exactly 1 after the carry.
		day++
		frac = 0
	}
	return MJD2{Day: day, Frac: frac}
}

// AddDays returns the MJD2 shifted by a signed day count, renormalized.
func (m MJD2) AddDays(days float64) MJD2 {
	return Normalize(m.Day, m.Frac+days)
}

// DiffDays returns m - other as a signed day count. The result is a plain
// day delta, not an MJD2, so no renormalization applies; keeping the
// integer and fractional differences separate preserves sub-microsecond
// precision across large day gaps.
func (m MJD2) DiffDays(other MJD2) float64 {
	return float64(m.Day-other.Day) + (m.Frac - other.Frac)
}

// Value returns Day + Frac as a single float64 Modified Julian Day.
// Precision below ~1 microsecond is lost in the collapse.
func (m MJD2) Value() float64 {
	return float64(m.Day) + m.Frac
}
