package convtime

// Format names a supported time representation at the conversion boundary.
type Format string

const (
	// FormatMJD is a Modified Julian Day as a single real.
	FormatMJD Format = "mjd"

	// FormatMJD2 is the canonical (integer day, fractional day) pair.
	FormatMJD2 Format = "mjd2"

	// FormatMJD3 is (integer day, real seconds of day).
	FormatMJD3 Format = "mjd3"

	// FormatJD is a Julian Day as a single real.
	FormatJD Format = "jd"

	// FormatCal is (year, month, day, hour, minute, second).
	FormatCal Format = "cal"

	// FormatDOY is (year, day of year, hour, minute, second).
	FormatDOY Format = "doy"

	// FormatGPS is (GPS week, seconds of week).
	FormatGPS Format = "gps"

	// FormatGPS2 is (GPS week, day of week, hour, minute, second).
	FormatGPS2 Format = "gps2"

	// FormatSec is POSIX seconds (UTC).
	FormatSec Format = "sec"

	// FormatYear is a decimal year.
	FormatYear Format = "year"
)

// payloadArity maps each format to the number of values in its payload.
var payloadArity = map[Format]int{
	FormatMJD:  1,
	FormatMJD2: 2,
	FormatMJD3: 2,
	FormatJD:   1,
	FormatCal:  6,
	FormatDOY:  5,
	FormatGPS:  2,
	FormatGPS2: 5,
	FormatSec:  1,
	FormatYear: 1,
}

// Formats lists the supported format names in boundary order.
var Formats = []Format{
	FormatMJD, FormatMJD2, FormatMJD3, FormatJD, FormatCal,
	FormatDOY, FormatGPS, FormatGPS2, FormatSec, FormatYear,
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if _, ok := payloadArity[f]; !ok {
		return "", newUnknownFormatError(name)
	}
	return f, nil
}

// FullPrecision disables rounding when passed as an aprx increment.
const FullPrecision = 0.0

// CalendarDate is a proleptic calendar instant. Year 0 and negative years
// are valid (year 0 is 1 B.C.). Sub-day time lives in the hour, minute and
// second fields; a fractional Day is truncated by the forward adapter and
// never produced by the inverse one.
type CalendarDate struct {
	Year   int
	Month  int // 1..12
	Day    float64
	Hour   int // 0..23
	Minute int // 0..59
	Second float64 // [0,60)
}

// GpsTime is a GPS week number plus seconds into that week.
type GpsTime struct {
	Week          int
	SecondsOfWeek float64 // [0,604800)
}

// GpsTime2 is a GPS week number with the week split into day-of-week and
// time of day.
type GpsTime2 struct {
	Week      int
	DayOfWeek int // 0..6, 0 = Sunday (week start)
	Hour      int
	Minute    int
	Second    float64
}

// DayOfYear is a year with a 1-based day count and time of day.
type DayOfYear struct {
	Year      int
	DayOfYear int // 1..365 (366 in leap years)
	Hour      int
	Minute    int
	Second    float64
}
