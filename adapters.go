package convtime

import (
	"fmt"
	"math"
)

// Adapters between each public format and the canonical MJD2 value.
//
// Forward adapters (X -> MJD2) validate their fields and return
// INVALID_FIELD errors; inverse adapters (MJD2 -> X) operate on an already
// valid MJD2 and cannot fail.
//
// Inverse adapters for cal, gps2 and doy accept a rounding increment aprx
// in seconds: seconds are rounded to the nearest multiple of aprx and any
// overflow cascades seconds -> minute -> hour -> Julian Day. aprx ==
// FullPrecision (0) disables rounding.

// CalendarToMJD2 converts a calendar date to MJD2. Sub-day time is taken
// from the hour/minute/second fields only; any fractional part of Day is
// truncated.
func (c *Converter) CalendarToMJD2(cal CalendarDate) (MJD2, error) {
	if cal.Month < 1 || cal.Month > 12 {
		return MJD2{}, newInvalidFieldError(FormatCal, "month", float64(cal.Month), "1..12")
	}
	if err := validateClock(FormatCal, cal.Hour, cal.Minute, cal.Second); err != nil {
		return MJD2{}, err
	}

	jd := c.kernel.DateToJulianDay(cal.Year, cal.Month, cal.Day)
	mjd := JDToMJD(jd)

	sec := math.Trunc(cal.Second)
	micro := (cal.Second - sec) * 1e6
	frac := c.kernel.HmsmToDayFraction(cal.Hour, cal.Minute, int(sec), micro)

	return MJD2{Day: int(math.Floor(mjd)), Frac: frac}, nil
}

// MJD2ToCalendar converts an MJD2 to a calendar date, rounding seconds to
// the nearest multiple of aprx (seconds) when aprx > 0. Rounding that
// produces 60 seconds carries into the minute; 60 minutes into the hour;
// 24 hours into the next Julian Day before the date is re-derived, so the
// cascade is correct at every precision level.
func (c *Converter) MJD2ToCalendar(m MJD2, aprx float64) CalendarDate {
	hh, mn, ss, micro := c.kernel.DayFractionToHmsm(m.Frac)
	sec := float64(ss) + micro*1e-6
	jd := MJDToJD(float64(m.Day))

	hour := float64(hh)
	minute := float64(mn)
	if aprx > 0 {
		sec = math.Round(sec/aprx) * aprx

		var carry float64
		sec, carry = wraparound(sec, 60)
		minute += carry
		minute, carry = wraparound(minute, 60)
		hour += carry
		hour, carry = wraparound(hour, 24)
		jd += carry
	}

	year, month, day := c.kernel.JulianDayToDate(jd)

	return CalendarDate{
		Year:   year,
		Month:  month,
		Day:    math.Trunc(day),
		Hour:   int(hour),
		Minute: int(minute),
		Second: sec,
	}
}

// GPSToMJD2 converts a GPS week/seconds-of-week pair to MJD2.
func (c *Converter) GPSToMJD2(g GpsTime) (MJD2, error) {
	if g.SecondsOfWeek < 0 || g.SecondsOfWeek >= SecondsPerWeek {
		return MJD2{}, newInvalidFieldError(FormatGPS, "secondsOfWeek", g.SecondsOfWeek, "[0,604800)")
	}

	days := math.Floor(g.SecondsOfWeek / SecondsPerDay)
	return MJD2{
		Day:  g.Week*7 + gpsEpochMJD + int(days),
		Frac: g.SecondsOfWeek/SecondsPerDay - days,
	}, nil
}

// MJD2ToGPS converts an MJD2 to a GPS week/seconds-of-week pair.
func (c *Converter) MJD2ToGPS(m MJD2) GpsTime {
	g2 := c.MJD2ToGPS2(m, FullPrecision)
	sow := float64(g2.DayOfWeek*SecondsPerDay+g2.Hour*3600+g2.Minute*60) + g2.Second
	return GpsTime{Week: g2.Week, SecondsOfWeek: sow}
}

// GPS2ToMJD2 converts a GPS week/day-of-week/time-of-day value to MJD2.
func (c *Converter) GPS2ToMJD2(g GpsTime2) (MJD2, error) {
	if g.DayOfWeek < 0 || g.DayOfWeek > 6 {
		return MJD2{}, newInvalidFieldError(FormatGPS2, "dayOfWeek", float64(g.DayOfWeek), "0..6")
	}
	if err := validateClock(FormatGPS2, g.Hour, g.Minute, g.Second); err != nil {
		return MJD2{}, err
	}

	sec := math.Trunc(g.Second)
	micro := (g.Second - sec) * 1e6
	return MJD2{
		Day:  g.Week*7 + gpsEpochMJD + g.DayOfWeek,
		Frac: c.kernel.HmsmToDayFraction(g.Hour, g.Minute, int(sec), micro),
	}, nil
}

// MJD2ToGPS2 converts an MJD2 to a GPS week with split day-of-week and
// time of day, forwarding aprx to the calendar rendering. Weeks are
// floor-divided so day-of-week stays in 0..6 before the GPS epoch too.
func (c *Converter) MJD2ToGPS2(m MJD2, aprx float64) GpsTime2 {
	cal := c.MJD2ToCalendar(m, aprx)
	delta := c.calMidnight(cal.Year, cal.Month, cal.Day) - gpsEpochMJD
	week := floorDiv(delta, 7)

	return GpsTime2{
		Week:      week,
		DayOfWeek: delta - 7*week,
		Hour:      cal.Hour,
		Minute:    cal.Minute,
		Second:    cal.Second,
	}
}

// DayOfYearToMJD2 converts a year/day-of-year/time-of-day value to MJD2.
func (c *Converter) DayOfYearToMJD2(d DayOfYear) (MJD2, error) {
	last := c.lastDayOfYear(d.Year)
	if d.DayOfYear < 1 || d.DayOfYear > last {
		return MJD2{}, newInvalidFieldError(FormatDOY, "dayOfYear", float64(d.DayOfYear), fmt.Sprintf("1..%d", last))
	}
	if err := validateClock(FormatDOY, d.Hour, d.Minute, d.Second); err != nil {
		return MJD2{}, err
	}

	sec := math.Trunc(d.Second)
	micro := (d.Second - sec) * 1e6
	day := c.calMidnight(d.Year, 1, 1) + d.DayOfYear - 1
	return c.kernel.Normalize(day, c.kernel.HmsmToDayFraction(d.Hour, d.Minute, int(sec), micro)), nil
}

// MJD2ToDayOfYear converts an MJD2 to a 1-based day-of-year value,
// forwarding aprx to the calendar rendering.
func (c *Converter) MJD2ToDayOfYear(m MJD2, aprx float64) DayOfYear {
	cal := c.MJD2ToCalendar(m, aprx)
	doy := c.calMidnight(cal.Year, cal.Month, cal.Day) - c.calMidnight(cal.Year, 1, 1) + 1

	return DayOfYear{
		Year:      cal.Year,
		DayOfYear: doy,
		Hour:      cal.Hour,
		Minute:    cal.Minute,
		Second:    cal.Second,
	}
}

// UnixToMJD2 converts POSIX seconds to MJD2. POSIX seconds are interpreted
// as UTC; no process-local timezone state is consulted.
func (c *Converter) UnixToMJD2(sec float64) MJD2 {
	days := math.Floor(sec / SecondsPerDay)
	rem := sec - days*SecondsPerDay
	return c.kernel.Normalize(unixEpochMJD+int(days), rem/SecondsPerDay)
}

// MJD2ToUnix converts an MJD2 to POSIX seconds (UTC).
func (c *Converter) MJD2ToUnix(m MJD2) float64 {
	return float64(m.Day-unixEpochMJD)*SecondsPerDay + m.Frac*SecondsPerDay
}

// DecimalYearToMJD2 converts a decimal year to MJD2. The fractional part
// advances through the year's actual day count (365 or 366).
func (c *Converter) DecimalYearToMJD2(year float64) MJD2 {
	y := math.Floor(year)
	ndays := float64(c.lastDayOfYear(int(y)))

	day := ndays * (year - y)
	whole := math.Floor(day)

	return MJD2{
		Day:  c.calMidnight(int(y), 1, 1) + int(whole),
		Frac: day - whole,
	}
}

// MJD2ToDecimalYear converts an MJD2 to a decimal year.
func (c *Converter) MJD2ToDecimalYear(m MJD2) float64 {
	d := c.MJD2ToDayOfYear(m, FullPrecision)
	ndays := float64(c.lastDayOfYear(d.Year))
	return float64(d.Year) + (float64(d.DayOfYear)-1+m.Frac)/ndays
}

// MJDToMJD2 splits a float64 Modified Julian Day into the canonical pair.
func (c *Converter) MJDToMJD2(mjd float64) MJD2 {
	whole, frac := math.Modf(mjd)
	return c.kernel.Normalize(int(whole), frac)
}

// MJD2ToMJD collapses the pair into a single float64 Modified Julian Day.
func (c *Converter) MJD2ToMJD(m MJD2) float64 {
	return m.Value()
}

// MJD3ToMJD2 converts (integer day, seconds of day) to MJD2.
func (c *Converter) MJD3ToMJD2(day int, secondsOfDay float64) MJD2 {
	return c.kernel.Normalize(day, secondsOfDay/SecondsPerDay)
}

// MJD2ToMJD3 converts an MJD2 to (integer day, seconds of day).
func (c *Converter) MJD2ToMJD3(m MJD2) (day int, secondsOfDay float64) {
	return m.Day, m.Frac * SecondsPerDay
}

// JulianDayToMJD2 converts a float64 Julian Day to MJD2.
func (c *Converter) JulianDayToMJD2(jd float64) MJD2 {
	whole, frac := math.Modf(JDToMJD(jd))
	return c.kernel.Normalize(int(whole), frac)
}

// MJD2ToJulianDay converts an MJD2 to a float64 Julian Day.
func (c *Converter) MJD2ToJulianDay(m MJD2) float64 {
	return MJDToJD(m.Value())
}

// calMidnight returns the integer MJD of the given date's midnight.
func (c *Converter) calMidnight(year, month int, day float64) int {
	return int(math.Floor(JDToMJD(c.kernel.DateToJulianDay(year, month, day))))
}

// lastDayOfYear returns the day-of-year of December 31: 365, or 366 in
// leap years (under the calendar rule in force for that year).
func (c *Converter) lastDayOfYear(year int) int {
	return c.calMidnight(year, 12, 31) - c.calMidnight(year, 1, 1) + 1
}

// validateClock range-checks a time-of-day triple.
func validateClock(f Format, hour, minute int, second float64) error {
	if hour < 0 || hour > 23 {
		return newInvalidFieldError(f, "hour", float64(hour), "0..23")
	}
	if minute < 0 || minute > 59 {
		return newInvalidFieldError(f, "minute", float64(minute), "0..59")
	}
	if second < 0 || second >= 60 {
		return newInvalidFieldError(f, "second", second, "[0,60)")
	}
	return nil
}
