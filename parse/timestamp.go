package parse

import (
	"fmt"

	"github.com/sqlcast/datetime/types"
)

// dateModeFor maps a timestamp dialect to the dialect used for its date
// portion. Inside a timestamp the date is always parsed in a lenient,
// cast-like mode, whatever the outer dialect's own full-date strictness.
func dateModeFor(mode TimestampMode) Mode {
	if mode == TimestampISO8601 || mode == TimestampSparkCast {
		return ModeSparkCast
	}
	return ModeNonStrict
}

// timeSeparator consumes the dialect's date-time separator at pos if
// present.
func timeSeparator(src string, pos int, mode TimestampMode) int {
	if pos >= len(src) {
		return pos
	}
	switch mode {
	case TimestampISO8601:
		if src[pos] == 'T' {
			pos++
		}
	case TimestampPrestoCast:
		if src[pos] == ' ' {
			pos++
		}
	case TimestampLegacyCast, TimestampSparkCast:
		if src[pos] == ' ' || src[pos] == 'T' {
			pos++
		}
	}
	return pos
}

// tryTimestamp parses as much of src as it can, from the beginning, and
// returns the timestamp for whatever it parsed with the offset of the first
// unconsumed byte. Success requires at least a date; a date whose remainder
// is not a valid time still succeeds, positioned right after the date, so
// the caller can interpret a trailing zone token.
func tryTimestamp(src string, mode TimestampMode) (types.Timestamp, int, bool) {
	var days, microsSinceMidnight int64

	pos := 0
	if mode == TimestampISO8601 && skipSpaces(src, 0) > 0 {
		// Leading spaces are not allowed.
		return types.Timestamp{}, 0, false
	}

	if mode == TimestampISO8601 && pos < len(src) && src[pos] == 'T' {
		if pos == len(src)-1 {
			// The string is just "T".
			return types.Timestamp{}, pos, false
		}
		// No date. Assume 1970-01-01.
	} else {
		var ok bool
		days, pos, ok = tryDate(src, dateModeFor(mode))
		if !ok {
			return types.Timestamp{}, pos, false
		}
	}

	if pos == len(src) {
		// No time: only a date.
		return types.FromDaysAndMicros(days, 0), pos, true
	}

	pos = timeSeparator(src, pos, mode)

	micros, timePos, ok := tryTime(src[pos:], mode)
	if !ok {
		// The rest of the string is not a valid time, but it could be
		// relevant to the caller, such as a time zone; return the date we
		// parsed and let them decide what to do with the rest.
		return types.FromDaysAndMicros(days, 0), pos, true
	}
	microsSinceMidnight = micros

	return types.FromDaysAndMicros(days, microsSinceMidnight), pos + timePos, true
}

// Timestamp parses src as a complete timestamp in the given dialect. Any
// trailing content other than whitespace fails the parse.
func Timestamp(src string, mode TimestampMode, opt ...Option) (types.Timestamp, error) {
	cfg := newConfig(opt)

	result, pos, ok := tryTimestamp(src, mode)
	if !ok {
		return types.Timestamp{}, cfg.timestampErr(src)
	}
	pos = skipSpaces(src, pos)
	if pos < len(src) {
		// Not all input was consumed.
		return types.Timestamp{}, cfg.timestampErr(src)
	}
	return result, nil
}

// TimestampTZ parses src as a timestamp with an optional trailing time zone
// name or, in the Presto dialect, a signed offset. The returned timestamp is
// the local wall-clock reading; apply [types.ParsedTimestamp.Resolve] to
// obtain the absolute instant.
func TimestampTZ(src string, mode TimestampMode, opt ...Option) (types.ParsedTimestamp, error) {
	cfg := newConfig(opt)

	result, pos, ok := tryTimestamp(src, mode)
	if !ok {
		return types.ParsedTimestamp{}, cfg.timestampErr(src)
	}

	parsed := types.ParsedTimestamp{Timestamp: result}

	if pos < len(src) && mode != TimestampISO8601 && isSpace(src[pos]) {
		pos++
	}

	// Anything left to parse must be a time zone definition.
	if pos < len(src) {
		if mode == TimestampISO8601 && src[pos] != 'Z' && src[pos] != '+' && src[pos] != '-' {
			return types.ParsedTimestamp{}, cfg.timestampErr(src)
		}

		zonePos := pos
		for zonePos < len(src) && !isSpace(src[zonePos]) {
			zonePos++
		}
		zoneName := src[pos:zonePos]

		zone, err := types.LoadZone(zoneName)
		switch {
		case err == nil:
			parsed.Zone = zone
		case mode == TimestampPrestoCast:
			offsetMillis, ok := tryOffset(zoneName)
			if !ok {
				return types.ParsedTimestamp{}, cfg.zoneErr(zoneName)
			}
			parsed.OffsetMillis = &offsetMillis
		default:
			return types.ParsedTimestamp{}, cfg.zoneErr(zoneName)
		}

		pos = zonePos
		if mode != TimestampISO8601 {
			pos = skipSpaces(src, pos)
		}
		if pos < len(src) {
			return types.ParsedTimestamp{}, cfg.timestampErr(src)
		}
	}
	return parsed, nil
}

// zoneErr builds the unknown-zone failure naming the offending token.
func (c config) zoneErr(name string) error {
	if c.silent {
		return types.ErrZone
	}
	return fmt.Errorf("%w: %q", types.ErrZone, name)
}
