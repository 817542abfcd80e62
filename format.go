package convtime

import (
	"fmt"
	"math"
	"strings"
)

// Template tokens understood by FormatTime. <k> is an optional decimal
// precision (digits only); absent means 0.
//
//	[YYYY]     4-digit year          [YY]       2-digit year
//	[MM]       month                 [DD]       day of month
//	[HH]       hour                  [MN]       minute
//	[SS<k>]    seconds               [DSEC<k>]  seconds of day
//	[MJD<k>]   Modified Julian Day   [WWWW]     GPS week
//	[D]        GPS day of week       [DDD]      day of year
type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokYear4
	tokYear2
	tokMonth
	tokDay
	tokHour
	tokMinute
	tokDayOfYear
	tokWeek
	tokWeekDay
	tokSeconds
	tokDaySeconds
	tokMJD
)

// token is one element of a scanned template.
type token struct {
	kind tokenKind
	text string // literal text, for tokLiteral
	prec int    // decimal precision, for SS/DSEC/MJD
}

// FormatTime renders t through a token template.
//
// The template is scanned once into a token list; the maximum precision
// among [SS<k>] and [DSEC<k>] tokens fixes one global rounding increment
// aprx = 10^-k, and the calendar, day-of-year and GPS renderings all use
// it, so every token of one call reflects the same carry-correct rounding.
// With no seconds-precision token the renderings are full precision.
//
// Unrecognized tokens pass through unsubstituted.
func (c *Converter) FormatTime(template string, t PreciseTime) string {
	toks := tokenize(template)

	maxPrec := -1
	for _, tok := range toks {
		if (tok.kind == tokSeconds || tok.kind == tokDaySeconds) && tok.prec > maxPrec {
			maxPrec = tok.prec
		}
	}
	aprx := FullPrecision
	if maxPrec >= 0 {
		aprx = 1.0 / math.Pow10(maxPrec)
	}

	cal := c.MJD2ToCalendar(t.m, aprx)
	doy := c.MJD2ToDayOfYear(t.m, aprx)
	gps := c.MJD2ToGPS2(t.m, aprx)
	mjd := c.MJD2ToMJD(t.m)
	daySeconds := float64(cal.Hour*3600+cal.Minute*60) + cal.Second

	var b strings.Builder
	for _, tok := range toks {
		switch tok.kind {
		case tokLiteral:
			b.WriteString(tok.text)
		case tokYear4:
			fmt.Fprintf(&b, "%04d", cal.Year)
		case tokYear2:
			fmt.Fprintf(&b, "%02d", YYYYToYY(cal.Year))
		case tokMonth:
			fmt.Fprintf(&b, "%02d", cal.Month)
		case tokDay:
			fmt.Fprintf(&b, "%02d", int(cal.Day))
		case tokHour:
			fmt.Fprintf(&b, "%02d", cal.Hour)
		case tokMinute:
			fmt.Fprintf(&b, "%02d", cal.Minute)
		case tokDayOfYear:
			fmt.Fprintf(&b, "%03d", doy.DayOfYear)
		case tokWeek:
			fmt.Fprintf(&b, "%04d", gps.Week)
		case tokWeekDay:
			fmt.Fprintf(&b, "%d", gps.DayOfWeek)
		case tokSeconds:
			b.WriteString(formatFixed(cal.Second, 2, tok.prec))
		case tokDaySeconds:
			b.WriteString(formatFixed(daySeconds, 5, tok.prec))
		case tokMJD:
			b.WriteString(formatFixed(mjd, 5, tok.prec))
		}
	}
	return b.String()
}

// FormatTime renders t through a token template using the Default
// converter.
func FormatTime(template string, t PreciseTime) string {
	return Default.FormatTime(template, t)
}

// Format renders the time through a token template (see FormatTime).
func (t PreciseTime) Format(template string) string {
	return Default.FormatTime(template, t)
}

// formatFixed renders a seconds-like value zero-padded to the field's
// unit width, widened to hold prec decimals when prec > 0.
func formatFixed(v float64, unitWidth, prec int) string {
	total := unitWidth
	if prec > 0 {
		total = unitWidth + 1 + prec
	}
	return fmt.Sprintf("%0*.*f", total, prec, v)
}

// tokenize scans a template into a token list in a single pass. Each
// bracketed name is classified exactly once, so overlapping names like
// [SS] and [SS12] can never double-substitute.
func tokenize(template string) []token {
	var toks []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, token{kind: tokLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(template) {
		if template[i] != '[' {
			lit.WriteByte(template[i])
			i++
			continue
		}
		end := strings.IndexByte(template[i:], ']')
		if end < 0 {
			lit.WriteString(template[i:])
			break
		}
		kind, prec, ok := classifyToken(template[i+1 : i+end])
		if !ok {
			// Not a known token; emit the bracket and rescan after it.
			lit.WriteByte('[')
			i++
			continue
		}
		flush()
		toks = append(toks, token{kind: kind, prec: prec})
		i += end + 1
	}
	flush()
	return toks
}

// classifyToken maps a bracketed name to its token kind and precision.
func classifyToken(name string) (tokenKind, int, bool) {
	switch name {
	case "YYYY":
		return tokYear4, 0, true
	case "YY":
		return tokYear2, 0, true
	case "MM":
		return tokMonth, 0, true
	case "DD":
		return tokDay, 0, true
	case "HH":
		return tokHour, 0, true
	case "MN":
		return tokMinute, 0, true
	case "DDD":
		return tokDayOfYear, 0, true
	case "WWWW":
		return tokWeek, 0, true
	case "D":
		return tokWeekDay, 0, true
	}

	for _, p := range []struct {
		prefix string
		kind   tokenKind
	}{
		{"DSEC", tokDaySeconds},
		{"SS", tokSeconds},
		{"MJD", tokMJD},
	} {
		rest, found := strings.CutPrefix(name, p.prefix)
		if !found {
			continue
		}
		prec, ok := parsePrecision(rest)
		if !ok {
			return 0, 0, false
		}
		return p.kind, prec, true
	}
	return 0, 0, false
}

// parsePrecision parses the optional digits-only precision suffix.
func parsePrecision(s string) (int, bool) {
	prec := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		prec = prec*10 + int(r-'0')
	}
	return prec, true
}
