package convtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		day      int
		frac     float64
		wantDay  int
		wantFrac float64
	}{
		{57022, 0, 57022, 0},
		{57022, 0.25, 57022, 0.25},
		{57022, 1.2, 57023, 0.19999999999999996},
		{57022, 10.2, 57032, 0.1999999999999993},
		{57022, -0.2, 57021, 0.8},
		{57022, -1.2, 57020, 0.8},
		{57022, 1.0, 57023, 0},
		{57022, -1.0, 57021, 0},
		// -1e-17 + 1 rounds to exactly 1.0; the carry must fire again.
		{57022, -1e-17, 57022, 0},
	}
	for _, c := range cases {
		m := Normalize(c.day, c.frac)
		assert.Equal(t, c.wantDay, m.Day, "Normalize(%d, %v)", c.day, c.frac)
		assert.Equal(t, c.wantFrac, m.Frac, "Normalize(%d, %v)", c.day, c.frac)
	}
}

func TestNormalizeInvariant(t *testing.T) {
	fracs := []float64{-3.7, -1.0, -1e-15, -1e-17, 0, 0.5, 0.9999999999999999, 1.0, 2.5}
	for _, f := range fracs {
		m := Normalize(57022, f)
		assert.GreaterOrEqual(t, m.Frac, 0.0, "frac=%v", f)
		assert.Less(t, m.Frac, 1.0, "frac=%v", f)
	}
}

func TestAddDays(t *testing.T) {
	m := MJD2{Day: 57022, Frac: 0.2}

	got := m.AddDays(0.9)
	assert.Equal(t, 57023, got.Day)
	assert.Equal(t, 0.10000000000000009, got.Frac)

	got = m.AddDays(-0.5)
	assert.Equal(t, 57021, got.Day)
	assert.Equal(t, 0.7, got.Frac)

	got = m.AddDays(0)
	assert.Equal(t, m, got)
}

func TestDiffDays(t *testing.T) {
	a := MJD2{Day: 57022, Frac: 0.2}
	b := MJD2{Day: 57021, Frac: 0.8}

	assert.Equal(t, 0.3999999999999999, a.DiffDays(b))
	assert.Equal(t, -0.3999999999999999, b.DiffDays(a))
	assert.Equal(t, 0.0, a.DiffDays(a))
}

func TestValue(t *testing.T) {
	assert.Equal(t, 57022.25, MJD2{Day: 57022, Frac: 0.25}.Value())
	assert.Equal(t, 0.5, MJD2{Day: 0, Frac: 0.5}.Value())
}

func TestAddDiffRoundTrip(t *testing.T) {
	base := MJD2{Day: 57022, Frac: 0}
	for _, dt := range []float64{0.2, -0.4, -1.4, 1.4, 3650.000001} {
		shifted := base.AddDays(dt)
		assert.InEpsilon(t, dt, shifted.DiffDays(base), 1e-12, "dt=%v", dt)
	}
}
