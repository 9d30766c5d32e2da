package types

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadZone(t *testing.T) {
	t.Parallel()

	t.Run("utc_shorthand", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"Z", "z", "UTC"} {
			zone, err := LoadZone(name)
			require.NoError(t, err, name)
			_, offset := time.Unix(0, 0).In(zone).Zone()
			assert.Equal(t, 0, offset, name)
		}
	})

	t.Run("fixed_offsets", func(t *testing.T) {
		t.Parallel()
		for _, tc := range []struct {
			name   string
			offset int
		}{
			{"+05:30", 19800},
			{"-08:00", -28800},
			{"+00:00", 0},
			{"+14:00", 14 * 3600},
			{"-14:00", -14 * 3600},
		} {
			zone, err := LoadZone(tc.name)
			require.NoError(t, err, tc.name)
			_, offset := time.Unix(0, 0).In(zone).Zone()
			assert.Equal(t, tc.offset, offset, tc.name)
		}
	})

	t.Run("iana_names", func(t *testing.T) {
		t.Parallel()
		zone, err := LoadZone("America/New_York")
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", zone.String())

		// Cache hit returns the same object.
		again, err := LoadZone("America/New_York")
		require.NoError(t, err)
		assert.Same(t, zone, again)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{
			"",
			"notatime",
			"+15:00", // beyond the widest tz offset
			"-14:01",
			"+05:60", // minutes out of range
			"+0530",  // colon is mandatory
			"05:30",  // sign is mandatory
		} {
			_, err := LoadZone(name)
			require.Error(t, err, "%q", name)
			assert.ErrorIs(t, err, ErrZone, "%q", name)
		}
	})
}

func TestZoneContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Same(t, time.UTC, ZoneFromContext(ctx))

	zone := time.FixedZone("+05:30", 19800)
	ctx = ContextWithZone(ctx, zone)
	assert.Same(t, zone, ZoneFromContext(ctx))

	// A nil zone leaves the context unchanged.
	assert.Same(t, zone, ZoneFromContext(ContextWithZone(ctx, nil)))

	// A nil context falls back to UTC rather than panicking.
	//nolint:staticcheck
	assert.Same(t, time.UTC, ZoneFromContext(nil))
}

func TestParsedTimestampResolve(t *testing.T) {
	t.Parallel()

	local := NewTimestamp(1622550645, 123456000) // 2021-06-01T12:30:45.123456 wall clock

	t.Run("zone_wins", func(t *testing.T) {
		t.Parallel()
		zone := time.FixedZone("+05:30", 19800)
		p := ParsedTimestamp{Timestamp: local, Zone: zone}
		got := p.Resolve(context.Background())
		assert.Equal(t, int64(1622550645-19800), got.Seconds())
		assert.Equal(t, uint32(123456000), got.Nanos())
	})

	t.Run("offset_millis", func(t *testing.T) {
		t.Parallel()
		offset := int64(19800000)
		p := ParsedTimestamp{Timestamp: local, OffsetMillis: &offset}
		got := p.Resolve(context.Background())
		assert.Equal(t, int64(1622550645-19800), got.Seconds())
		assert.Equal(t, uint32(123456000), got.Nanos())
	})

	t.Run("offset_millis_borrows", func(t *testing.T) {
		t.Parallel()
		// Subtracting a 500ms sub-second offset from a 123.456ms fraction
		// borrows a second.
		offset := int64(500)
		p := ParsedTimestamp{Timestamp: local, OffsetMillis: &offset}
		got := p.Resolve(context.Background())
		assert.Equal(t, int64(1622550644), got.Seconds())
		assert.Equal(t, uint32(623456000), got.Nanos())
	})

	t.Run("negative_offset", func(t *testing.T) {
		t.Parallel()
		offset := int64(-19800000)
		p := ParsedTimestamp{Timestamp: local, OffsetMillis: &offset}
		got := p.Resolve(context.Background())
		assert.Equal(t, int64(1622550645+19800), got.Seconds())
	})

	t.Run("session_zone_from_context", func(t *testing.T) {
		t.Parallel()
		ctx := ContextWithZone(context.Background(),
			time.FixedZone("-08:00", -28800))
		p := ParsedTimestamp{Timestamp: local}
		got := p.Resolve(ctx)
		assert.Equal(t, int64(1622550645+28800), got.Seconds())
	})

	t.Run("default_is_utc", func(t *testing.T) {
		t.Parallel()
		p := ParsedTimestamp{Timestamp: local}
		got := p.Resolve(context.Background())
		assert.Equal(t, local, got)
	})

	t.Run("nil_context", func(t *testing.T) {
		t.Parallel()
		p := ParsedTimestamp{Timestamp: local}
		//nolint:staticcheck
		got := p.Resolve(nil)
		assert.Equal(t, local, got)
	})
}
