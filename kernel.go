package convtime

// Kernel is the set of primitive calendar algorithms every adapter is built
// on. Callers that carry an accelerated or instrumented implementation
// select it explicitly through NewConverter; there is no ambient,
// import-time backend substitution.
type Kernel interface {
	// Normalize carries whole days out of frac until 0 <= frac < 1.
	Normalize(day int, frac float64) MJD2

	// DateToJulianDay converts a (possibly fractional-day) calendar date
	// to a Julian Day, honoring the 1582-10-15 Gregorian cutover.
	DateToJulianDay(year, month int, day float64) float64

	// JulianDayToDate inverts DateToJulianDay.
	JulianDayToDate(jd float64) (year, month int, day float64)

	// HmsmToDayFraction folds h:m:s.micro into a day fraction in [0,1).
	HmsmToDayFraction(hour, minute, second int, micro float64) float64

	// DayFractionToHmsm inverts HmsmToDayFraction without rounding.
	DayFractionToHmsm(frac float64) (hour, minute, second int, micro float64)
}

// StandardKernel is the pure-Go reference Kernel.
type StandardKernel struct{}

// Normalize implements Kernel.
func (StandardKernel) Normalize(day int, frac float64) MJD2 {
	return Normalize(day, frac)
}

// DateToJulianDay implements Kernel.
func (StandardKernel) DateToJulianDay(year, month int, day float64) float64 {
	return DateToJulianDay(year, month, day)
}

// JulianDayToDate implements Kernel.
func (StandardKernel) JulianDayToDate(jd float64) (int, int, float64) {
	return JulianDayToDate(jd)
}

// HmsmToDayFraction implements Kernel.
func (StandardKernel) HmsmToDayFraction(hour, minute, second int, micro float64) float64 {
	return HmsmToDayFraction(hour, minute, second, micro)
}

// DayFractionToHmsm implements Kernel.
func (StandardKernel) DayFractionToHmsm(frac float64) (int, int, int, float64) {
	return DayFractionToHmsm(frac)
}

// Converter binds the format adapters to one Kernel.
type Converter struct {
	kernel Kernel
}

// NewConverter creates a Converter over the given Kernel.
// A nil kernel selects StandardKernel.
func NewConverter(k Kernel) *Converter {
	if k == nil {
		k = StandardKernel{}
	}
	return &Converter{kernel: k}
}

// Default is the Converter used by the package-level functions and by
// PreciseTime. It is stateless and safe for concurrent use.
var Default = NewConverter(StandardKernel{})
