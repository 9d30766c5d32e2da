// Package datetime converts between the textual date and timestamp forms
// accepted by several SQL engines and a linear representation: days since
// 1970-01-01 for dates, and seconds-plus-nanoseconds since the epoch for
// timestamps. Parsing is dialect-parameterized, reproducing each engine's
// separator, sign, partial-date, and trailing-content rules exactly; the
// calendar math spans years far outside the Unix window with no silent
// overflow anywhere.
//
// The subpackages carry the machinery: [calendar] maps calendar fields to
// day counts and back, [parse] holds the dialect grammars, [types] holds the
// Timestamp instant and time zone resolution, and [checked] the
// overflow-checked arithmetic under the parsers. This package re-exports the
// common entry points.
package datetime

import (
	"context"
	"errors"
	"fmt"

	"github.com/sqlcast/datetime/parse"
	"github.com/sqlcast/datetime/types"
)

// ErrDateTime wraps every parsing and resolution error returned by this
// package.
var ErrDateTime = errors.New("datetime")

// Date dialects, re-exported from [parse].
const (
	ModeStrict     = parse.ModeStrict
	ModeNonStrict  = parse.ModeNonStrict
	ModePrestoCast = parse.ModePrestoCast
	ModeSparkCast  = parse.ModeSparkCast
	ModeISO8601    = parse.ModeISO8601
)

// Timestamp dialects, re-exported from [parse].
const (
	TimestampPrestoCast = parse.TimestampPrestoCast
	TimestampLegacyCast = parse.TimestampLegacyCast
	TimestampSparkCast  = parse.TimestampSparkCast
	TimestampISO8601    = parse.TimestampISO8601
)

// ParseDate parses src as a date in the given dialect and returns its count
// of days since 1970-01-01.
func ParseDate(src string, mode parse.Mode, opt ...parse.Option) (int32, error) {
	days, err := parse.Date(src, mode, opt...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDateTime, err)
	}
	return days, nil
}

// ParseTimestamp parses src as a complete timestamp in the given dialect;
// trailing content other than whitespace is an error. The result is an
// unzoned wall-clock instant.
func ParseTimestamp(src string, mode parse.TimestampMode, opt ...parse.Option) (types.Timestamp, error) {
	ts, err := parse.Timestamp(src, mode, opt...)
	if err != nil {
		return types.Timestamp{}, fmt.Errorf("%w: %w", ErrDateTime, err)
	}
	return ts, nil
}

// ParseTimestampTZ parses src as a timestamp with an optional trailing time
// zone name or offset suffix. Resolve the result with [ResolveLocal] or
// [types.ParsedTimestamp.Resolve].
func ParseTimestampTZ(src string, mode parse.TimestampMode, opt ...parse.Option) (types.ParsedTimestamp, error) {
	parsed, err := parse.TimestampTZ(src, mode, opt...)
	if err != nil {
		return types.ParsedTimestamp{}, fmt.Errorf("%w: %w", ErrDateTime, err)
	}
	return parsed, nil
}

// ResolveLocal converts a parsed local timestamp to an absolute instant,
// applying its zone or offset, or the session zone carried in ctx via
// [types.ContextWithZone] when it has neither.
func ResolveLocal(ctx context.Context, parsed types.ParsedTimestamp) types.Timestamp {
	return parsed.Resolve(ctx)
}
