package types

import (
	"context"
	"time"
)

// ParsedTimestamp is a timestamp parsed from text whose zone suffix, if any,
// has not yet been applied. The Timestamp holds the local wall-clock
// reading; at most one of Zone and OffsetMillis is set. When neither is set
// the session zone, if any, decides the interpretation at resolution time.
type ParsedTimestamp struct {
	// Timestamp is the parsed instant, read as local wall-clock time.
	Timestamp Timestamp

	// Zone is the resolved time zone, or nil. It is borrowed from the zone
	// registry and remains valid for the registry's lifetime.
	Zone *time.Location

	// OffsetMillis is the fixed UTC offset in milliseconds, or nil.
	OffsetMillis *int64
}

// Resolve converts the parsed local timestamp to an absolute instant. A zone
// reference wins over a fixed offset; with neither, the session zone carried
// in ctx (see [ContextWithZone]) applies; the default session zone is UTC,
// under which the wall-clock reading already is the absolute instant.
func (p ParsedTimestamp) Resolve(ctx context.Context) Timestamp {
	switch {
	case p.Zone != nil:
		return p.Timestamp.ToUTC(p.Zone)
	case p.OffsetMillis != nil:
		offset := *p.OffsetMillis
		seconds := p.Timestamp.Seconds() - offset/MillisPerSecond
		nanos := int64(p.Timestamp.Nanos()) -
			(offset%MillisPerSecond)*NanosPerMicro*MicrosPerMilli
		// NewTimestamp re-normalizes the fraction when the subtraction
		// borrows below zero or carries past one second.
		return NewTimestamp(seconds, nanos)
	default:
		return p.Timestamp.ToUTC(ZoneFromContext(ctx))
	}
}
