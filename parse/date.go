package parse

import (
	"github.com/sqlcast/datetime/calendar"
	"github.com/sqlcast/datetime/checked"
)

// validDays reports whether a day count fits the 32-bit representable
// window. Calendar-valid dates outside it are rejected, not clamped.
func validDays(days int64) bool {
	return days >= -2147483648 && days <= 2147483647
}

// tryDate runs the dialect-parameterized date state machine over src from
// the beginning. On success it returns the day count and the offset of the
// first unconsumed byte.
func tryDate(src string, mode Mode) (int64, int, bool) {
	if len(src) == 0 {
		return 0, 0, false
	}

	var day, month, year int32
	yearneg := false

	pos := 0
	if mode != ModeISO8601 {
		pos = skipSpaces(src, pos)
	}
	if pos >= len(src) {
		return 0, pos, false
	}

	switch src[pos] {
	case '-':
		yearneg = true
		pos++
	case '+':
		pos++
	}
	if pos >= len(src) {
		return 0, pos, false
	}

	if !isDigit(src[pos]) {
		return 0, pos, false
	}

	// Accumulate the year with checked arithmetic; a digit run that
	// overflows fails the parse rather than wrapping. Accumulation stops
	// once the running value exceeds the maximum year, which dooms the
	// parse at validation.
	yearStart := pos
	for ; pos < len(src) && isDigit(src[pos]); pos++ {
		shifted, ok := checked.Mul(year, 10)
		if !ok {
			return 0, pos, false
		}
		year, ok = checked.Add(int32(src[pos]-'0'), shifted)
		if !ok {
			return 0, pos, false
		}
		if year > calendar.MaxYear {
			break
		}
	}
	// Spark requires at least four year digits, sign excluded.
	if mode == ModeSparkCast && pos-yearStart < 4 {
		return 0, pos, false
	}
	if yearneg {
		var ok bool
		year, ok = checked.Neg(year)
		if !ok || year < calendar.MinYear {
			return 0, pos, false
		}
	}

	// Year-only partial date.
	if (mode == ModeSparkCast || mode == ModeISO8601) &&
		(pos == len(src) || src[pos] == 'T') {
		days, err := calendar.DaysFromDate(year, 1, 1)
		if err != nil {
			return 0, pos, false
		}
		return days, pos, validDays(days)
	}

	if pos >= len(src) {
		return 0, pos, false
	}

	sep := src[pos]
	pos++
	if mode == ModePrestoCast || mode == ModeSparkCast || mode == ModeISO8601 {
		// Only '-' is valid for cast.
		if sep != '-' {
			return 0, pos, false
		}
	} else if sep != ' ' && sep != '-' && sep != '/' && sep != '\\' {
		return 0, pos, false
	}

	var ok bool
	month, pos, ok = parseDoubleDigit(src, pos)
	if !ok {
		return 0, pos, false
	}

	// Year-month partial date.
	if (mode == ModeSparkCast || mode == ModeISO8601) &&
		(pos == len(src) || src[pos] == 'T') {
		days, err := calendar.DaysFromDate(year, month, 1)
		if err != nil {
			return 0, pos, false
		}
		return days, pos, validDays(days)
	}

	if pos >= len(src) {
		return 0, pos, false
	}
	// The month-day separator must repeat the year-month one.
	if src[pos] != sep {
		return 0, pos, false
	}
	pos++
	if pos >= len(src) {
		return 0, pos, false
	}

	day, pos, ok = parseDoubleDigit(src, pos)
	if !ok {
		return 0, pos, false
	}

	if mode == ModePrestoCast || mode == ModeISO8601 {
		days, err := calendar.DaysFromDate(year, month, day)
		if err != nil {
			return 0, pos, false
		}
		if mode == ModePrestoCast {
			pos = skipSpaces(src, pos)
		}
		if pos == len(src) {
			return days, pos, validDays(days)
		}
		return 0, pos, false
	}

	// Spark tolerates a trailing 'T' or space followed by anything.
	if mode == ModeSparkCast {
		days, err := calendar.DaysFromDate(year, month, day)
		if err != nil || !validDays(days) {
			return 0, pos, false
		}
		if pos == len(src) || src[pos] == 'T' || src[pos] == ' ' {
			return days, pos, true
		}
		return 0, pos, false
	}

	// Optional trailing " (BC)" remaps the year to astronomical numbering.
	if len(src)-pos >= 5 && isSpace(src[pos]) && src[pos+1] == '(' &&
		src[pos+2] == 'B' && src[pos+3] == 'C' && src[pos+4] == ')' {
		if yearneg || year == 0 {
			return 0, pos, false
		}
		year = -year + 1
		pos += 5
		if year < calendar.MinYear {
			return 0, pos, false
		}
	}

	if mode == ModeStrict {
		// Anything after the date may only be whitespace.
		pos = skipSpaces(src, pos)
		if pos < len(src) {
			return 0, pos, false
		}
	} else if pos < len(src) && isDigit(src[pos]) {
		// A digit directly after the date would silently split an adjoining
		// number; other trailing text is the caller's to judge.
		return 0, pos, false
	}

	days, err := calendar.DaysFromDate(year, month, day)
	if err != nil {
		return 0, pos, false
	}
	return days, pos, validDays(days)
}
