package convtime

// defaultPrecision is the comparison granularity in days. Two times whose
// calendar renderings agree after rounding seconds to this increment are
// considered equal; this absorbs residual floating error in the raw MJD2
// fraction without collapsing genuine sub-microsecond differences.
const defaultPrecision = 1e-12

// PreciseTime is an immutable instant wrapping one canonical MJD2 value.
// The zero value is the MJD epoch, 1858-11-17 00:00.
type PreciseTime struct {
	m MJD2
}

// NewPreciseTime constructs a PreciseTime from a format-tagged payload
// (see Convert for the payload shapes).
func NewPreciseTime(format Format, data []float64) (PreciseTime, error) {
	m, err := Default.toMJD2(format, data)
	if err != nil {
		return PreciseTime{}, err
	}
	return PreciseTime{m: m}, nil
}

// FromMJD2 constructs a PreciseTime from a (day, frac) pair, normalizing
// the fraction into [0,1).
func FromMJD2(day int, frac float64) PreciseTime {
	return PreciseTime{m: Normalize(day, frac)}
}

// FromMJD constructs a PreciseTime from a float64 Modified Julian Day.
func FromMJD(mjd float64) PreciseTime {
	return PreciseTime{m: Default.MJDToMJD2(mjd)}
}

// FromJulianDay constructs a PreciseTime from a float64 Julian Day.
func FromJulianDay(jd float64) PreciseTime {
	return PreciseTime{m: Default.JulianDayToMJD2(jd)}
}

// FromCalendar constructs a PreciseTime from a calendar date.
func FromCalendar(cal CalendarDate) (PreciseTime, error) {
	m, err := Default.CalendarToMJD2(cal)
	if err != nil {
		return PreciseTime{}, err
	}
	return PreciseTime{m: m}, nil
}

// FromGPS constructs a PreciseTime from GPS week/seconds-of-week.
func FromGPS(g GpsTime) (PreciseTime, error) {
	m, err := Default.GPSToMJD2(g)
	if err != nil {
		return PreciseTime{}, err
	}
	return PreciseTime{m: m}, nil
}

// FromDayOfYear constructs a PreciseTime from a day-of-year value.
func FromDayOfYear(d DayOfYear) (PreciseTime, error) {
	m, err := Default.DayOfYearToMJD2(d)
	if err != nil {
		return PreciseTime{}, err
	}
	return PreciseTime{m: m}, nil
}

// FromUnixSeconds constructs a PreciseTime from POSIX seconds (UTC).
func FromUnixSeconds(sec float64) PreciseTime {
	return PreciseTime{m: Default.UnixToMJD2(sec)}
}

// FromDecimalYear constructs a PreciseTime from a decimal year.
func FromDecimalYear(year float64) PreciseTime {
	return PreciseTime{m: Default.DecimalYearToMJD2(year)}
}

// MJD2 returns the canonical two-part value.
func (t PreciseTime) MJD2() MJD2 {
	return t.m
}

// Get renders the time in the requested format. aprx is a rounding
// increment in seconds, forwarded only to the cal, gps2 and doy adapters;
// pass FullPrecision for an unrounded rendering.
func (t PreciseTime) Get(format Format, aprx float64) ([]float64, error) {
	return Default.fromMJD2(format, t.m, aprx)
}

// Calendar renders the time as a calendar date at the given rounding
// increment (seconds); FullPrecision disables rounding.
func (t PreciseTime) Calendar(aprx float64) CalendarDate {
	return Default.MJD2ToCalendar(t.m, aprx)
}

// GPS renders the time as GPS week/seconds-of-week.
func (t PreciseTime) GPS() GpsTime {
	return Default.MJD2ToGPS(t.m)
}

// GPS2 renders the time as GPS week/day-of-week/time-of-day.
func (t PreciseTime) GPS2(aprx float64) GpsTime2 {
	return Default.MJD2ToGPS2(t.m, aprx)
}

// DayOfYear renders the time as a day-of-year value.
func (t PreciseTime) DayOfYear(aprx float64) DayOfYear {
	return Default.MJD2ToDayOfYear(t.m, aprx)
}

// MJD renders the time as a float64 Modified Julian Day.
func (t PreciseTime) MJD() float64 {
	return t.m.Value()
}

// JulianDay renders the time as a float64 Julian Day.
func (t PreciseTime) JulianDay() float64 {
	return Default.MJD2ToJulianDay(t.m)
}

// UnixSeconds renders the time as POSIX seconds (UTC).
func (t PreciseTime) UnixSeconds() float64 {
	return Default.MJD2ToUnix(t.m)
}

// DecimalYear renders the time as a decimal year.
func (t PreciseTime) DecimalYear() float64 {
	return Default.MJD2ToDecimalYear(t.m)
}

// Sub returns the signed span t - other.
func (t PreciseTime) Sub(other PreciseTime) Duration {
	return Duration(t.m.DiffDays(other.m))
}

// Add returns the time shifted by d, renormalized.
func (t PreciseTime) Add(d Duration) PreciseTime {
	return PreciseTime{m: t.m.AddDays(d.Days())}
}

// Compare orders two times. Both operands are rendered to calendar tuples
// at the default granularity (~1e-12 day) and compared field by field, so
// residual floating error below the granularity never produces a spurious
// inequality. Returns -1 if t is earlier, +1 if later, 0 if equal.
func (t PreciseTime) Compare(other PreciseTime) int {
	aprx := defaultPrecision * SecondsPerDay
	a := Default.MJD2ToCalendar(t.m, aprx)
	b := Default.MJD2ToCalendar(other.m, aprx)

	if c := cmpInt(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmpInt(a.Month, b.Month); c != 0 {
		return c
	}
	if c := cmpInt(int(a.Day), int(b.Day)); c != 0 {
		return c
	}
	if c := cmpInt(a.Hour, b.Hour); c != 0 {
		return c
	}
	if c := cmpInt(a.Minute, b.Minute); c != 0 {
		return c
	}
	switch {
	case a.Second < b.Second:
		return -1
	case a.Second > b.Second:
		return 1
	}
	return 0
}

// Before reports whether t is earlier than other.
func (t PreciseTime) Before(other PreciseTime) bool {
	return t.Compare(other) < 0
}

// After reports whether t is later than other.
func (t PreciseTime) After(other PreciseTime) bool {
	return t.Compare(other) > 0
}

// Equal reports whether the two times agree at the default granularity.
func (t PreciseTime) Equal(other PreciseTime) bool {
	return t.Compare(other) == 0
}

// String renders the time as a calendar timestamp.
func (t PreciseTime) String() string {
	return "PT:" + t.Format("[YYYY]-[MM]-[DD] [HH]:[MN]:[SS6]")
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
