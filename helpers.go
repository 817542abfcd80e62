package convtime

import (
	"math"
	"time"
)

// YYToYYYY expands a 2-digit year with the GNSS pivot at 80:
// 00..79 map to 2000..2079, 80..99 to 1980..1999.
func YYToYYYY(yy int) int {
	if yy < 80 {
		return yy + 2000
	}
	return yy + 1900
}

// YYYYToYY collapses a 4-digit year to its 2-digit form, inverting
// YYToYYYY's pivot.
func YYYYToYY(yyyy int) int {
	if yyyy >= 2000 {
		return yyyy - 2000
	}
	return yyyy - 1900
}

// monthNames indexes English month names by month-1.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of month 1..12.
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", newInvalidFieldError(FormatCal, "month", float64(month), "1..12")
	}
	return monthNames[month-1], nil
}

// LastDayOfYear returns the day-of-year of December 31: 365, or 366 in
// leap years.
func LastDayOfYear(year int) int {
	return Default.lastDayOfYear(year)
}

// FromTime constructs a PreciseTime from a time.Time, converted to UTC.
func FromTime(t time.Time) PreciseTime {
	t = t.UTC()
	cal := CalendarDate{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    float64(t.Day()),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())*1e-9,
	}
	// Fields coming out of a time.Time are always in range.
	m, _ := Default.CalendarToMJD2(cal)
	return PreciseTime{m: m}
}

// Now returns the current instant as a PreciseTime (UTC).
func Now() PreciseTime {
	return FromTime(time.Now())
}

// Time renders the instant as a time.Time in UTC, rounded to the nearest
// nanosecond with the usual carry cascade.
func (t PreciseTime) Time() time.Time {
	cal := t.Calendar(1e-9)
	sec := math.Floor(cal.Second)
	nsec := math.Round((cal.Second - sec) * 1e9)
	return time.Date(cal.Year, time.Month(cal.Month), int(cal.Day),
		cal.Hour, cal.Minute, int(sec), int(nsec), time.UTC)
}
