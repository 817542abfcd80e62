package convtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingKernel wraps StandardKernel and records how often the date
// primitives run.
type countingKernel struct {
	StandardKernel
	dateToJD int
	jdToDate int
}

func (k *countingKernel) DateToJulianDay(year, month int, day float64) float64 {
	k.dateToJD++
	return k.StandardKernel.DateToJulianDay(year, month, day)
}

func (k *countingKernel) JulianDayToDate(jd float64) (int, int, float64) {
	k.jdToDate++
	return k.StandardKernel.JulianDayToDate(jd)
}

func TestConverterUsesInjectedKernel(t *testing.T) {
	k := &countingKernel{}
	c := NewConverter(k)

	_, err := c.CalendarToMJD2(CalendarDate{Year: 2017, Month: 1, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, k.dateToJD)

	c.MJD2ToCalendar(MJD2{Day: 57754}, FullPrecision)
	assert.Equal(t, 1, k.jdToDate)
}

func TestConverterInjectionIsLocal(t *testing.T) {
	// A converter with its own kernel never leaks into Default.
	k := &countingKernel{}
	c := NewConverter(k)

	_, err := Default.CalendarToMJD2(CalendarDate{Year: 2017, Month: 1, Day: 1})
	require.NoError(t, err)
	assert.Zero(t, k.dateToJD)

	got, err := c.Convert(FormatMJD, FormatCal, []float64{57754}, FullPrecision)
	require.NoError(t, err)
	want, err := Convert(FormatMJD, FormatCal, []float64{57754}, FullPrecision)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewConverterNilKernel(t *testing.T) {
	c := NewConverter(nil)
	got, err := c.Convert(FormatMJD, FormatJD, []float64{57754}, FullPrecision)
	require.NoError(t, err)
	assert.Equal(t, []float64{2457754.5}, got)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("tai")
	assert.True(t, IsUnknownFormat(err))
}
