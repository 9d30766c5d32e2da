// Package parse converts SQL date, time, and timestamp text to linear day
// counts and absolute instants. Each entry point is parameterized by a
// dialect that reproduces, byte for byte, the grammar of a particular SQL
// engine's cast or literal syntax: a strict and a legacy lenient form, the
// Presto and Spark cast grammars, and ISO 8601.
package parse

import (
	"errors"
	"fmt"
)

// Mode selects the date-string grammar.
type Mode uint8

const (
	// ModeStrict accepts [+-]YYYY-MM-DD with an optional " (BC)" suffix,
	// with the same separator set as ModeNonStrict; trailing content may
	// only be whitespace.
	ModeStrict Mode = iota

	// ModeNonStrict is the legacy lenient grammar: any of "-", "/", "\", or
	// a space may separate the fields, and trailing text after the date is
	// left for the caller, except a digit directly after the date, which is
	// an error.
	ModeNonStrict

	// ModePrestoCast accepts [+-]YYYY-MM-DD with optional trailing spaces
	// and nothing else.
	ModePrestoCast

	// ModeSparkCast requires at least four year digits, accepts partial
	// dates (year or year-month), and permits a trailing "T" or space with
	// arbitrary content after it.
	ModeSparkCast

	// ModeISO8601 accepts partial and complete dates with "-" separators
	// only, forbidding leading whitespace.
	ModeISO8601
)

// TimestampMode selects the timestamp-string grammar.
type TimestampMode uint8

const (
	// TimestampPrestoCast separates date and time with a space and accepts
	// a trailing zone name or Presto offset suffix.
	TimestampPrestoCast TimestampMode = iota

	// TimestampLegacyCast parses the date portion with the legacy lenient
	// date grammar and accepts "T" or space as the separator.
	TimestampLegacyCast

	// TimestampSparkCast parses the date portion with the Spark cast
	// grammar and accepts "T" or space as the separator.
	TimestampSparkCast

	// TimestampISO8601 requires "T" as the separator, forbids leading
	// whitespace, and accepts only Z or a signed offset as the zone suffix.
	TimestampISO8601
)

// ErrParse is the sentinel matched by every parse failure in this package.
// Test for it with [errors.Is].
var ErrParse = errors.New("parse")

type config struct {
	silent bool
}

// Option configures a parse entry point.
type Option func(*config)

// WithSilent suppresses error details: failures return the bare [ErrParse]
// sentinel ([types.ErrZone] for unknown zones) with no formatted message.
// Use it on hot paths that parse large columns and only need the
// success/failure outcome.
func WithSilent() Option { return func(c *config) { c.silent = true } }

func newConfig(opt []Option) config {
	var cfg config
	for _, o := range opt {
		o(&cfg)
	}
	return cfg
}

// dateErr builds the per-dialect date parse failure, naming the offending
// input and describing the accepted grammar.
func (c config) dateErr(src string, mode Mode) error {
	if c.silent {
		return ErrParse
	}
	var pattern string
	switch mode {
	case ModeStrict:
		pattern = "Valid date string pattern is (YYYY-MM-DD), " +
			"can be prefixed with [+-] and suffixed with \" (BC)\""
	case ModeNonStrict:
		pattern = "Valid date string pattern is (YYYY-MM-DD) " +
			"with -, /, \\ or space separators, " +
			"can be prefixed with [+-] and suffixed with \" (BC)\""
	case ModePrestoCast:
		pattern = "Valid date string pattern is (YYYY-MM-DD), " +
			"and can be prefixed with [+-]"
	case ModeSparkCast:
		pattern = "Valid date string patterns include " +
			"([y]y*, [y]y*-[m]m*, [y]y*-[m]m*-[d]d*, " +
			"[y]y*-[m]m*-[d]d* *, [y]y*-[m]m*-[d]d*T*), " +
			"and any pattern prefixed with [+-]"
	case ModeISO8601:
		pattern = "Valid date string patterns include " +
			"([y]y*, [y]y*-[m]m*, [y]y*-[m]m*-[d]d*, " +
			"[y]y*-[m]m*-[d]d* *), " +
			"and any pattern prefixed with [+-]"
	default:
		panic(fmt.Sprintf("parse: invalid date mode %d", mode))
	}
	return fmt.Errorf("%w: unable to parse date value: %q. %s", ErrParse, src, pattern)
}

// timestampErr builds the timestamp parse failure shared by all dialects.
func (c config) timestampErr(src string) error {
	if c.silent {
		return ErrParse
	}
	return fmt.Errorf(
		"%w: unable to parse timestamp value: %q, "+
			"expected format is (YYYY-MM-DD HH:MM:SS[.MS])",
		ErrParse, src,
	)
}

// Date parses src as a date in the given dialect and returns its day count.
func Date(src string, mode Mode, opt ...Option) (int32, error) {
	cfg := newConfig(opt)
	days, _, ok := tryDate(src, mode)
	if !ok {
		return 0, cfg.dateErr(src, mode)
	}
	return int32(days), nil
}
