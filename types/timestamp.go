package types

import (
	"fmt"
	"time"

	"github.com/sqlcast/datetime/calendar"
)

// Timestamp is an absolute point in time: seconds since the Unix epoch plus
// a nanosecond-of-second fraction. Seconds may be negative; the fraction is
// always normalized into [0, 999999999].
type Timestamp struct {
	seconds int64
	nanos   uint32
}

// NewTimestamp builds a Timestamp from seconds and nanoseconds, normalizing
// the nanoseconds into [0, 999999999] by borrowing from or carrying into the
// seconds.
func NewTimestamp(seconds, nanos int64) Timestamp {
	if nanos < 0 {
		borrow := (-nanos + NanosPerSecond - 1) / NanosPerSecond
		seconds -= borrow
		nanos += borrow * NanosPerSecond
	} else if nanos >= NanosPerSecond {
		seconds += nanos / NanosPerSecond
		nanos %= NanosPerSecond
	}
	return Timestamp{seconds: seconds, nanos: uint32(nanos)}
}

// FromDaysAndMicros combines a day count and a microseconds-since-midnight
// value into a Timestamp. The multiplication is performed in 64 bits, so no
// representable day count can overflow it.
func FromDaysAndMicros(days, micros int64) Timestamp {
	seconds := days*SecondsPerDay + micros/MicrosPerSecond
	return Timestamp{
		seconds: seconds,
		nanos:   uint32((micros % MicrosPerSecond) * NanosPerMicro),
	}
}

// Seconds returns the seconds since the epoch.
func (ts Timestamp) Seconds() int64 { return ts.seconds }

// Nanos returns the nanosecond-of-second fraction.
func (ts Timestamp) Nanos() uint32 { return ts.nanos }

// String returns the instant in the form YYYY-MM-DDTHH:MM:SS.NNNNNNNNN,
// treating the seconds as UTC.
func (ts Timestamp) String() string {
	days := floorDiv(ts.seconds, SecondsPerDay)
	secOfDay := ts.seconds - days*SecondsPerDay
	year, month, day := calendar.DateFromDays(days)
	return fmt.Sprintf(
		"%04d-%02d-%02dT%02d:%02d:%02d.%09d",
		year, month, day,
		secOfDay/3600, secOfDay/60%60, secOfDay%60, ts.nanos,
	)
}

// ToUTC reinterprets ts as a local wall-clock reading in zone and returns
// the absolute instant it denotes.
func (ts Timestamp) ToUTC(zone *time.Location) Timestamp {
	days := floorDiv(ts.seconds, SecondsPerDay)
	secOfDay := int(ts.seconds - days*SecondsPerDay)
	year, month, day := calendar.DateFromDays(days)
	local := time.Date(
		int(year), time.Month(month), int(day), 0, 0, secOfDay, 0, zone,
	)
	return Timestamp{seconds: local.Unix(), nanos: ts.nanos}
}

// ToZone shifts the absolute instant ts into zone's local wall-clock
// reading.
func (ts Timestamp) ToZone(zone *time.Location) Timestamp {
	_, offset := time.Unix(ts.seconds, 0).In(zone).Zone()
	return Timestamp{seconds: ts.seconds + int64(offset), nanos: ts.nanos}
}

// Days returns the day count containing ts. A zone may be supplied to count
// days in its local time; nil counts them in UTC. Instants before the epoch
// that are not an exact day multiple floor toward the earlier day.
func (ts Timestamp) Days(zone *time.Location) int32 {
	seconds := ts.seconds
	if zone != nil {
		seconds = ts.ToZone(zone).seconds
	}
	return int32(floorDiv(seconds, SecondsPerDay))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
