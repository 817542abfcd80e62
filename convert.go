package convtime

// Convert translates a payload between any two supported formats through
// the canonical MJD2 value. Payload shapes follow the boundary table:
//
//	mjd   [mjd]                      mjd2 [day, frac]
//	mjd3  [day, secondsOfDay]        jd   [jd]
//	cal   [year, month, day, hour, minute, second]
//	doy   [year, dayOfYear, hour, minute, second]
//	gps   [week, secondsOfWeek]      gps2 [week, dayOfWeek, hour, minute, second]
//	sec   [posixSeconds]             year [decimalYear]
//
// aprx is a rounding increment in seconds, honored only by the cal, gps2
// and doy outputs and ignored elsewhere; FullPrecision (0) disables it.
func (c *Converter) Convert(from, to Format, data []float64, aprx float64) ([]float64, error) {
	m, err := c.toMJD2(from, data)
	if err != nil {
		return nil, err
	}
	return c.fromMJD2(to, m, aprx)
}

// Convert translates a payload between formats using the Default converter.
func Convert(from, to Format, data []float64, aprx float64) ([]float64, error) {
	return Default.Convert(from, to, data, aprx)
}

// toMJD2 dispatches a format-tagged payload to its forward adapter.
func (c *Converter) toMJD2(from Format, data []float64) (MJD2, error) {
	want, ok := payloadArity[from]
	if !ok {
		return MJD2{}, newUnknownFormatError(string(from))
	}
	if len(data) != want {
		return MJD2{}, newBadPayloadError(from, want, len(data))
	}

	switch from {
	case FormatMJD:
		return c.MJDToMJD2(data[0]), nil
	case FormatMJD2:
		return c.kernel.Normalize(int(data[0]), data[1]), nil
	case FormatMJD3:
		return c.MJD3ToMJD2(int(data[0]), data[1]), nil
	case FormatJD:
		return c.JulianDayToMJD2(data[0]), nil
	case FormatCal:
		return c.CalendarToMJD2(CalendarDate{
			Year:   int(data[0]),
			Month:  int(data[1]),
			Day:    data[2],
			Hour:   int(data[3]),
			Minute: int(data[4]),
			Second: data[5],
		})
	case FormatDOY:
		return c.DayOfYearToMJD2(DayOfYear{
			Year:      int(data[0]),
			DayOfYear: int(data[1]),
			Hour:      int(data[2]),
			Minute:    int(data[3]),
			Second:    data[4],
		})
	case FormatGPS:
		return c.GPSToMJD2(GpsTime{Week: int(data[0]), SecondsOfWeek: data[1]})
	case FormatGPS2:
		return c.GPS2ToMJD2(GpsTime2{
			Week:      int(data[0]),
			DayOfWeek: int(data[1]),
			Hour:      int(data[2]),
			Minute:    int(data[3]),
			Second:    data[4],
		})
	case FormatSec:
		return c.UnixToMJD2(data[0]), nil
	case FormatYear:
		return c.DecimalYearToMJD2(data[0]), nil
	}
	return MJD2{}, newUnknownFormatError(string(from))
}

// fromMJD2 dispatches an MJD2 to the requested inverse adapter.
func (c *Converter) fromMJD2(to Format, m MJD2, aprx float64) ([]float64, error) {
	switch to {
	case FormatMJD:
		return []float64{c.MJD2ToMJD(m)}, nil
	case FormatMJD2:
		return []float64{float64(m.Day), m.Frac}, nil
	case FormatMJD3:
		day, sod := c.MJD2ToMJD3(m)
		return []float64{float64(day), sod}, nil
	case FormatJD:
		return []float64{c.MJD2ToJulianDay(m)}, nil
	case FormatCal:
		cal := c.MJD2ToCalendar(m, aprx)
		return []float64{
			float64(cal.Year), float64(cal.Month), cal.Day,
			float64(cal.Hour), float64(cal.Minute), cal.Second,
		}, nil
	case FormatDOY:
		d := c.MJD2ToDayOfYear(m, aprx)
		return []float64{
			float64(d.Year), float64(d.DayOfYear),
			float64(d.Hour), float64(d.Minute), d.Second,
		}, nil
	case FormatGPS:
		g := c.MJD2ToGPS(m)
		return []float64{float64(g.Week), g.SecondsOfWeek}, nil
	case FormatGPS2:
		g := c.MJD2ToGPS2(m, aprx)
		return []float64{
			float64(g.Week), float64(g.DayOfWeek),
			float64(g.Hour), float64(g.Minute), g.Second,
		}, nil
	case FormatSec:
		return []float64{c.MJD2ToUnix(m)}, nil
	case FormatYear:
		return []float64{c.MJD2ToDecimalYear(m)}, nil
	}
	return nil, newUnknownFormatError(string(to))
}
