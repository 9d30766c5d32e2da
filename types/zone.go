package types

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// maxZoneOffsetMinutes bounds the fixed-offset zone forms accepted by
// LoadZone, matching the widest offset the tz database assigns.
const maxZoneOffsetMinutes = 14 * 60

// zoneCache memoizes IANA lookups. Zone resolution is read-mostly: parsers
// on any number of goroutines look zones up concurrently, so the cache is
// guarded for concurrent readers.
var zoneCache = struct {
	sync.RWMutex
	byName map[string]*time.Location
}{byName: map[string]*time.Location{}}

// LoadZone resolves a time zone token to a zone object. It accepts "Z" and
// "z" for UTC, fixed offsets of the exact form [+-]HH:MM within ±14:00, and
// IANA zone names. Returns an error wrapping [ErrZone] when the token names
// no known zone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf(`%w: ""`, ErrZone)
	}
	if name == "Z" || name == "z" {
		return time.UTC, nil
	}
	if zone, ok := fixedZoneFor(name); ok {
		return zone, nil
	}

	zoneCache.RLock()
	zone, ok := zoneCache.byName[name]
	zoneCache.RUnlock()
	if ok {
		return zone, nil
	}

	zone, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrZone, name)
	}
	zoneCache.Lock()
	zoneCache.byName[name] = zone
	zoneCache.Unlock()
	return zone, nil
}

// fixedZoneFor recognizes the [+-]HH:MM fixed-offset form.
func fixedZoneFor(name string) (*time.Location, bool) {
	if len(name) != 6 || (name[0] != '+' && name[0] != '-') || name[3] != ':' {
		return nil, false
	}
	for _, i := range []int{1, 2, 4, 5} {
		if name[i] < '0' || name[i] > '9' {
			return nil, false
		}
	}
	hours := int(name[1]-'0')*10 + int(name[2]-'0')
	minutes := int(name[4]-'0')*10 + int(name[5]-'0')
	total := hours*MinutesPerHour + minutes
	if minutes >= MinutesPerHour || total > maxZoneOffsetMinutes {
		return nil, false
	}
	if name[0] == '-' {
		total = -total
	}
	return time.FixedZone(name, total*SecondsPerMinute), true
}

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

// zoneKey is the key for *time.Location values in Contexts. It is
// unexported; clients use ContextWithZone and ZoneFromContext instead of
// using this key directly.
var zoneKey key

// ContextWithZone returns a new Context carrying zone as the session time
// zone for timestamp resolution.
func ContextWithZone(ctx context.Context, zone *time.Location) context.Context {
	if zone == nil {
		return ctx
	}
	return context.WithValue(ctx, zoneKey, zone)
}

// ZoneFromContext returns the session time zone stored in ctx, or time.UTC.
// A nil ctx also yields time.UTC.
func ZoneFromContext(ctx context.Context) *time.Location {
	if ctx == nil {
		return time.UTC
	}
	if zone, ok := ctx.Value(zoneKey).(*time.Location); ok {
		return zone
	}
	return time.UTC
}
