package convtime

import "math"

// Day-fraction and epoch constants.
const (
	// mjdOffset converts between Julian Day and Modified Julian Day.
	mjdOffset = 2400000.5

	// gpsEpochMJD is 1980-01-06, the start of GPS week 0.
	gpsEpochMJD = 44244

	// unixEpochMJD is 1970-01-01, the POSIX epoch.
	unixEpochMJD = 40587

	// SecondsPerDay is the length of a day; no leap seconds are modeled.
	SecondsPerDay = 86400

	// SecondsPerWeek bounds the GPS seconds-of-week field.
	SecondsPerWeek = 7 * SecondsPerDay
)

// gregorianJD is the largest integer Julian Day still on the Julian
// calendar; JulianDayToDate switches to the Gregorian rule above it.
const gregorianJD = 2299160

// MJDToJD converts a Modified Julian Day to a Julian Day.
func MJDToJD(mjd float64) float64 {
	return mjd + mjdOffset
}

// JDToMJD converts a Julian Day to a Modified Julian Day.
func JDToMJD(jd float64) float64 {
	return jd - mjdOffset
}

// DateToJulianDay converts a calendar date to a Julian Day using the
// Duffett-Smith/Zwart algorithm (Practical Astronomy with your Calculator
// or Spreadsheet, 4th ed.).
//
// Years run proleptically: the year before 1 A.D. is 0, 10 B.C. is -9.
// The day may carry a fractional part. Dates before 1582-10-15 follow the
// Julian calendar (no Gregorian century correction).
//
//	DateToJulianDay(1985, 2, 17.25) == 2446113.75
func DateToJulianDay(year, month int, day float64) float64 {
	yearp := year
	monthp := month
	if month == 1 || month == 2 {
		yearp = year - 1
		monthp = month + 12
	}

	// Gregorian century correction applies on/after 1582-10-15 only.
	b := 0.0
	if !beforeGregorianCutover(year, month, day) {
		a := math.Trunc(float64(yearp) / 100)
		b = 2 - a + math.Trunc(a/4)
	}

	var c float64
	if yearp < 0 {
		c = math.Trunc(365.25*float64(yearp) - 0.75)
	} else {
		c = math.Trunc(365.25 * float64(yearp))
	}

	d := math.Trunc(30.6001 * float64(monthp+1))

	return b + c + d + day + 1720994.5
}

// beforeGregorianCutover reports whether the date precedes 1582-10-15.
func beforeGregorianCutover(year, month int, day float64) bool {
	if year != 1582 {
		return year < 1582
	}
	if month != 10 {
		return month < 10
	}
	return day < 15
}

// JulianDayToDate converts a Julian Day to a calendar date, inverting
// DateToJulianDay. The returned day carries the fractional part of jd.
//
//	JulianDayToDate(2446113.75) == (1985, 2, 17.25)
func JulianDayToDate(jd float64) (year, month int, day float64) {
	jd = jd + 0.5

	i, f := math.Modf(jd)
	whole := int(i)

	a := math.Trunc((i - 1867216.25) / 36524.25)

	var b float64
	if whole > gregorianJD {
		b = i + 1 + a - math.Trunc(a/4)
	} else {
		b = i
	}

	c := b + 1524
	d := math.Trunc((c - 122.1) / 365.25)
	e := math.Trunc(365.25 * d)
	g := math.Trunc((c - e) / 30.6001)

	day = c - e + f - math.Trunc(30.6001*g)

	if g < 13.5 {
		month = int(g) - 1
	} else {
		month = int(g) - 13
	}

	if month > 2 {
		year = int(d) - 4716
	} else {
		year = int(d) - 4715
	}

	return year, month, day
}

// HmsmToDayFraction converts hours, minutes, seconds and microseconds to a
// fraction of a day in [0,1).
//
//	HmsmToDayFraction(6, 0, 0, 0) == 0.25
func HmsmToDayFraction(hour, minute, second int, micro float64) float64 {
	// The exact order of operations matters: successive divisions keep the
	// result bit-compatible with DayFractionToHmsm's inverse chain.
	days := float64(second) + micro/1e6
	days = float64(minute) + days/60
	days = float64(hour) + days/60
	return days / 24
}

// DayFractionToHmsm converts a day fraction in [0,1) to hours, minutes,
// seconds and microseconds. The microsecond part is returned as a float64
// and NOT rounded, so no precision is lost:
//
//	DayFractionToHmsm(0.1) == (2, 24, 0, 1.2789769243681803e-06)
//
// The residual 1.28 microseconds above is the genuine IEEE-754 content of
// 0.1 days pushed through *24, *60, *60; callers that want a rounded
// display apply their own increment (see the cal adapter's aprx).
func DayFractionToHmsm(frac float64) (hour, minute, second int, micro float64) {
	hours := frac * 24
	h, hoursFrac := math.Modf(hours)

	mins := hoursFrac * 60
	m, minsFrac := math.Modf(mins)

	secs := minsFrac * 60
	s, secsFrac := math.Modf(secs)

	return int(h), int(m), int(s), secsFrac * 1e6
}

// wraparound splits v into a remainder below base and a whole carry count.
// It is the single carry primitive behind every rounded field cascade
// (seconds->minute, minute->hour, hour->day), valid for any rounding
// increment: a value rounded up to exactly base (or beyond) carries.
func wraparound(v, base float64) (rem, carry float64) {
	carry = math.Floor(v / base)
	return v - carry*base, carry
}

// floorDiv is integer division rounding toward negative infinity,
// so GPS weeks stay consistent on both sides of the 1980-01-06 epoch.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
