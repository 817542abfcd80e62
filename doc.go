// Package convtime converts and manipulates geodetic/astronomical time
// representations with sub-microsecond precision.
//
// The canonical representation is MJD2, a two-part Modified Julian Day
// (integer day, fractional day in [0,1)). Splitting the day count from the
// day fraction keeps the fraction's full double precision available for
// sub-day time, which a single float64 MJD cannot do: at MJD ~57000 a lone
// float64 resolves only ~1 microsecond, while MJD2 resolves well below a
// picosecond.
//
// Ten formats convert through MJD2:
//
//	mjd    Modified Julian Day as a single real
//	mjd2   (integer day, fractional day)
//	mjd3   (integer day, seconds of day)
//	jd     Julian Day as a single real
//	cal    (year, month, day, hour, minute, second)
//	doy    (year, day of year, hour, minute, second)
//	gps    (GPS week, seconds of week), epoch 1980-01-06
//	gps2   (GPS week, day of week, hour, minute, second)
//	sec    POSIX seconds, UTC
//	year   decimal year
//
// Calendar arithmetic follows the Duffett-Smith/Zwart algorithms and honors
// the Gregorian cutover: dates on or after 1582-10-15 use the Gregorian
// leap rule, earlier dates the Julian rule. All calendar arithmetic is
// timezone-naive (UTC convention); leap seconds are not modeled.
//
// PreciseTime and Duration are immutable value types built on the adapters.
// Every operation in this package is a pure function over such values, so
// everything is safe for unsynchronized concurrent use.
package convtime
