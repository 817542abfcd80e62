package convtime

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimeGolden(t *testing.T) {
	timeA := mustCal(t, 2017, 1, 1, 0, 0, 1e-12)
	timeB := mustCal(t, 2019, 2, 11, 0, 0, 0)
	timeC := mustCal(t, 2019, 2, 11, 0, 0, 1e-9)
	timeD := mustCal(t, 2019, 2, 11, 23, 59, 59.999999999)
	timeE := mustCal(t, 1980, 1, 6, 0, 0, 0)
	timeF := mustCal(t, 2017, 1, 2, 0, 0, 0.1)

	cases := []struct {
		name     string
		template string
		t        PreciseTime
	}{
		{"mjd3-week", "[MJD3] [WWWW] [D] [DSEC6]", timeA},
		{"full-tokens", "[YYYY] [DDD] [MM] [DD] [HH] [MN] [SS12]", timeA},
		{"mjd-prec0", "[MJD0]", timeB},
		{"mjd-prec2", "[MJD2]", timeB},
		{"mjd-prec5", "[MJD5]", timeC},
		{"nano-6", "[YYYY]-[DDD] [HH]:[MN]:[SS6]", timeC},
		{"nano-9", "[YYYY]-[DDD] [HH]:[MN]:[SS9]", timeC},
		{"endofday-9", "[YYYY]-[DDD] [HH]:[MN]:[SS9]", timeD},
		{"endofday-carry-6", "[YYYY]-[DDD] [HH]:[MN]:[SS6]", timeD},
		{"gps-epoch", "[WWWW]:[D] [YYYY]-[DDD]", timeE},
		{"two-digit-year", "[YY]/[MM]/[DD] [HH]:[MN]:[SS]", timeE},
		{"unknown-token", "[FOO] [YYYY]", timeE},
		{"plus-day-3", "[YYYY]/[MM]/[DD] [HH]:[MN]:[SS3]", timeF},
	}

	var buf bytes.Buffer
	for _, c := range cases {
		fmt.Fprintf(&buf, "%s | %s => %s\n", c.name, c.template, FormatTime(c.template, c.t))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "formatter", buf.Bytes())
}

func TestFormatTimeRoundingIsShared(t *testing.T) {
	// One template, one rounding increment: when [SS6] carries across
	// midnight, the date tokens move with it.
	pt := mustCal(t, 2019, 2, 11, 23, 59, 59.999999999)

	assert.Equal(t, "2019-02-12 00:00:00.000000",
		pt.Format("[YYYY]-[MM]-[DD] [HH]:[MN]:[SS6]"))
	assert.Equal(t, "2019-02-11 23:59:59.999999999",
		pt.Format("[YYYY]-[MM]-[DD] [HH]:[MN]:[SS9]"))
}

func TestFormatTimeNoDoubleSubstitution(t *testing.T) {
	pt := mustCal(t, 2017, 1, 1, 0, 0, 1e-12)

	// [SS] must not be rewritten inside the already-substituted [SS12].
	assert.Equal(t, "00.000000000001|00", pt.Format("[SS12]|[SS]"))
}

func TestFormatTimeLiterals(t *testing.T) {
	pt := mustCal(t, 2017, 1, 1, 0, 0, 0)

	assert.Equal(t, "", pt.Format(""))
	assert.Equal(t, "no tokens here", pt.Format("no tokens here"))
	assert.Equal(t, "[unclosed", pt.Format("[unclosed"))
	assert.Equal(t, "[] 2017", pt.Format("[] [YYYY]"))
}

func TestTokenize(t *testing.T) {
	toks := tokenize("[YYYY]-[MM]")
	assert.Equal(t, []token{
		{kind: tokYear4},
		{kind: tokLiteral, text: "-"},
		{kind: tokMonth},
	}, toks)

	toks = tokenize("[DSEC3]")
	assert.Equal(t, []token{{kind: tokDaySeconds, prec: 3}}, toks)
}

func TestClassifyToken(t *testing.T) {
	kind, prec, ok := classifyToken("SS12")
	assert.True(t, ok)
	assert.Equal(t, tokSeconds, kind)
	assert.Equal(t, 12, prec)

	kind, prec, ok = classifyToken("MJD")
	assert.True(t, ok)
	assert.Equal(t, tokMJD, kind)
	assert.Equal(t, 0, prec)

	_, _, ok = classifyToken("SSx")
	assert.False(t, ok)
	_, _, ok = classifyToken("FOO")
	assert.False(t, ok)
	_, _, ok = classifyToken("")
	assert.False(t, ok)
}
