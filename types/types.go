// Package types provides the value types shared across the datetime module:
// the wide-range Timestamp instant, the parsed-timestamp-with-zone result,
// and time zone resolution. A Timestamp covers years far outside the Unix
// 32-bit window; all conversions through this package preserve exact
// nanosecond precision.
package types

import "errors"

// ErrZone is returned when a time zone name cannot be resolved.
var ErrZone = errors.New("unknown time zone")

// Unit conversion constants used throughout the module.
const (
	NanosPerSecond   = 1_000_000_000
	NanosPerMicro    = 1_000
	MicrosPerSecond  = 1_000_000
	MicrosPerMilli   = 1_000
	MillisPerSecond  = 1_000
	MillisPerMinute  = 60 * MillisPerSecond
	MillisPerHour    = 60 * MillisPerMinute
	SecondsPerMinute = 60
	MinutesPerHour   = 60
	SecondsPerDay    = 86_400
)
