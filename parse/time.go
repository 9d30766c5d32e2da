package parse

import (
	"github.com/sqlcast/datetime/checked"
	"github.com/sqlcast/datetime/types"
)

// timeToMicros folds time-of-day fields into microseconds since midnight.
func timeToMicros(hour, minute, second, micros int32) int64 {
	result := int64(hour)
	result = result*types.MinutesPerHour + int64(minute)
	result = result*types.SecondsPerMinute + int64(second)
	result = result*types.MicrosPerSecond + int64(micros)
	return result
}

// tryTime parses a time of day of the form HH[:MM[:SS[.ffffff]]] from the
// beginning of src, returning microseconds since midnight and the offset of
// the first unconsumed byte. Seconds up to 60 are tolerated for leap-second
// inputs. Fractional digits past the sixth are consumed but ignored. In ISO
// mode leading whitespace is forbidden, a bare hour is a complete time, and
// ',' may introduce the fraction.
func tryTime(src string, mode TimestampMode) (int64, int, bool) {
	const sep = ':'
	var hour, minute, second, micros int32

	if len(src) == 0 {
		return 0, 0, false
	}

	pos := 0
	if mode != TimestampISO8601 {
		pos = skipSpaces(src, pos)
	}
	if pos >= len(src) {
		return 0, pos, false
	}
	if !isDigit(src[pos]) {
		return 0, pos, false
	}

	var ok bool
	hour, pos, ok = parseDoubleDigit(src, pos)
	if !ok {
		return 0, pos, false
	}
	if hour < 0 || hour >= 24 {
		return 0, pos, false
	}

	if pos >= len(src) || src[pos] != sep {
		if mode == TimestampISO8601 {
			// A bare hour is itself a complete time.
			return timeToMicros(hour, 0, 0, 0), pos, true
		}
		return 0, pos, false
	}
	pos++

	minute, pos, ok = parseDoubleDigit(src, pos)
	if !ok {
		return 0, pos, false
	}
	if minute < 0 || minute >= 60 {
		return 0, pos, false
	}

	if pos < len(src) && src[pos] == sep {
		pos++
		second, pos, ok = parseDoubleDigit(src, pos)
		if !ok {
			return 0, pos, false
		}
		if second < 0 || second > 60 {
			return 0, pos, false
		}

		if pos < len(src) {
			if src[pos] == '.' {
				pos++
			} else if mode == TimestampISO8601 && src[pos] == ',' {
				pos++
			}
			if pos >= len(src) {
				return 0, pos, false
			}

			// Read up to six fraction digits as microseconds; the rest are
			// truncated, not rounded.
			mult := int32(100000)
			for ; pos < len(src) && isDigit(src[pos]); pos++ {
				if mult > 0 {
					micros += int32(src[pos]-'0') * mult
				}
				mult /= 10
			}
		}
	}

	return timeToMicros(hour, minute, second, micros), pos, true
}

// tryOffset parses a signed UTC offset of the form [+-]HH[:MM[:SS[.MMM]]]
// into milliseconds. Every separator is optional: a field is attempted when
// either a ':' or a digit follows. The whole of src must be consumed for the
// parse to succeed.
func tryOffset(src string) (int64, bool) {
	const sep = ':'
	var hour, minute, second, millis int32
	var result int64

	if len(src) == 0 {
		return 0, false
	}

	pos := 0
	if src[pos] != '+' && src[pos] != '-' {
		return 0, false
	}
	positive := src[pos] == '+'
	pos++
	if pos >= len(src) {
		return 0, false
	}

	var ok bool
	hour, pos, ok = parseDoubleDigit(src, pos)
	if !ok {
		return 0, false
	}
	if hour < 0 || hour >= 24 {
		return 0, false
	}
	if result, ok = checked.Add(result, int64(hour)*types.MillisPerHour); !ok {
		return 0, false
	}

	if pos >= len(src) || (src[pos] != sep && !isDigit(src[pos])) {
		if !positive {
			result = -result
		}
		return result, pos == len(src)
	}
	if src[pos] == sep {
		pos++
	}

	minute, pos, ok = parseDoubleDigit(src, pos)
	if !ok {
		return 0, false
	}
	if minute < 0 || minute >= 60 {
		return 0, false
	}
	if result, ok = checked.Add(result, int64(minute)*types.MillisPerMinute); !ok {
		return 0, false
	}

	if pos >= len(src) || (src[pos] != sep && !isDigit(src[pos])) {
		if !positive {
			result = -result
		}
		return result, pos == len(src)
	}
	if src[pos] == sep {
		pos++
	}

	second, pos, ok = parseDoubleDigit(src, pos)
	if !ok {
		return 0, false
	}
	if second < 0 || second >= 60 {
		return 0, false
	}
	if result, ok = checked.Add(result, int64(second)*types.MillisPerSecond); !ok {
		return 0, false
	}

	if pos >= len(src) ||
		(src[pos] != '.' && src[pos] != ',' && !isDigit(src[pos])) {
		if !positive {
			result = -result
		}
		return result, pos == len(src)
	}
	if src[pos] == '.' || src[pos] == ',' {
		pos++
	}
	if pos >= len(src) {
		return 0, false
	}

	// At most three fraction digits, read as milliseconds.
	mult := int32(100)
	for ; pos < len(src) && mult > 0 && isDigit(src[pos]); pos++ {
		millis += int32(src[pos]-'0') * mult
		mult /= 10
	}

	if result, ok = checked.Add(result, int64(millis)); !ok {
		return 0, false
	}
	if !positive {
		result = -result
	}
	return result, pos == len(src)
}
