package parse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcast/datetime/types"
)

func TestTimestampPrestoCast(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		src     string
		seconds int64
		nanos   uint32
	}{
		{"full", "2020-01-01 12:30:45", 1577881845, 0},
		{"fraction", "2020-01-01 12:30:45.123456", 1577881845, 123456000},
		{"date_only", "2020-01-01", 1577836800, 0},
		{"minutes_only", "2020-01-01 12:30", 1577881800, 0},
		{"lenient_date", "2020/01/01 12:30:45", 1577881845, 0},
		{"surrounding_spaces", "  2020-01-01 12:30:45  ", 1577881845, 0},
		{"before_epoch", "1969-12-31 23:59:59", -1, 0},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Timestamp(tc.src, TimestampPrestoCast)
			require.NoError(t, err)
			assert.Equal(t, tc.seconds, got.Seconds())
			assert.Equal(t, tc.nanos, got.Nanos())
		})
	}

	for _, tc := range []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"t_separator", "2020-01-01T12:30:45"},
		{"trailing_garbage", "2020-01-01 12:30:45 xyz"},
		{"hour_only", "2020-01-01 12"},
		{"bad_date", "2020-13-01 12:30:45"},
	} {
		tc := tc
		t.Run("invalid/"+tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Timestamp(tc.src, TimestampPrestoCast)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestTimestampLegacyCast(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"2020-01-01 12:30:45",
		"2020-01-01T12:30:45",
		"2020/01/01T12:30:45",
	} {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			got, err := Timestamp(src, TimestampLegacyCast)
			require.NoError(t, err)
			assert.Equal(t, int64(1577881845), got.Seconds())
		})
	}
}

func TestTimestampSparkCast(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		src     string
		seconds int64
	}{
		{"full", "2020-01-01T12:30:45", 1577881845},
		{"space_separator", "2020-01-01 12:30:45", 1577881845},
		{"year_only", "2020", 1577836800},
		{"year_month", "2020-01", 1577836800},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Timestamp(tc.src, TimestampSparkCast)
			require.NoError(t, err)
			assert.Equal(t, tc.seconds, got.Seconds())
		})
	}

	t.Run("invalid/short_year", func(t *testing.T) {
		t.Parallel()
		_, err := Timestamp("123-01-01T00:00:00", TimestampSparkCast)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestTimestampISO8601(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		src     string
		seconds int64
		nanos   uint32
	}{
		{"full", "2021-06-01T12:30:45.123456", 1622550645, 123456000},
		{"date_only", "2021-06-01", 1622505600, 0},
		{"year_only", "2021", 1609459200, 0},
		{"time_only", "T12:30", 45000, 0},
		{"comma_fraction", "2021-06-01T12:30:45,5", 1622550645, 500000000},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Timestamp(tc.src, TimestampISO8601)
			require.NoError(t, err)
			assert.Equal(t, tc.seconds, got.Seconds())
			assert.Equal(t, tc.nanos, got.Nanos())
		})
	}

	for _, tc := range []struct {
		name string
		src  string
	}{
		{"bare_t", "T"},
		{"leading_space", " 2021-06-01T12:30:45"},
		{"space_separator", "2021-06-01 12:30:45"},
	} {
		tc := tc
		t.Run("invalid/"+tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Timestamp(tc.src, TimestampISO8601)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestTimestampTZ(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("iso_zulu", func(t *testing.T) {
		t.Parallel()
		parsed, err := TimestampTZ("2021-06-01T12:30:45.123456Z", TimestampISO8601)
		require.NoError(t, err)
		require.NotNil(t, parsed.Zone)

		got := parsed.Resolve(ctx)
		assert.Equal(t, int64(1622550645), got.Seconds())
		assert.Equal(t, uint32(123456000), got.Nanos())
	})

	t.Run("iso_fixed_offset", func(t *testing.T) {
		t.Parallel()
		parsed, err := TimestampTZ("2021-06-01T12:30:45+05:30", TimestampISO8601)
		require.NoError(t, err)
		require.NotNil(t, parsed.Zone)

		got := parsed.Resolve(ctx)
		assert.Equal(t, int64(1622550645-19800), got.Seconds())
	})

	t.Run("presto_zone_name", func(t *testing.T) {
		t.Parallel()
		parsed, err := TimestampTZ(
			"2020-01-01 12:00:00 America/New_York", TimestampPrestoCast)
		require.NoError(t, err)
		require.NotNil(t, parsed.Zone)

		// New York is UTC-5 in January.
		got := parsed.Resolve(ctx)
		assert.Equal(t, int64(1577880000+5*3600), got.Seconds())
	})

	t.Run("presto_offset", func(t *testing.T) {
		t.Parallel()
		parsed, err := TimestampTZ("2020-01-01 -0530", TimestampPrestoCast)
		require.NoError(t, err)
		require.Nil(t, parsed.Zone)
		require.NotNil(t, parsed.OffsetMillis)
		assert.Equal(t, int64(-19800_000), *parsed.OffsetMillis)

		got := parsed.Resolve(ctx)
		assert.Equal(t, int64(1577836800+19800), got.Seconds())
	})

	t.Run("no_zone_uses_session", func(t *testing.T) {
		t.Parallel()
		parsed, err := TimestampTZ("2020-01-01 12:00:00", TimestampPrestoCast)
		require.NoError(t, err)
		require.Nil(t, parsed.Zone)
		require.Nil(t, parsed.OffsetMillis)

		sctx := types.ContextWithZone(ctx, time.FixedZone("+02:00", 7200))
		got := parsed.Resolve(sctx)
		assert.Equal(t, int64(1577880000-7200), got.Seconds())

		got = parsed.Resolve(ctx)
		assert.Equal(t, int64(1577880000), got.Seconds())
	})

	t.Run("unknown_zone", func(t *testing.T) {
		t.Parallel()
		_, err := TimestampTZ("2020-01-01 notatime", TimestampPrestoCast)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrZone)
		assert.Contains(t, err.Error(), `"notatime"`)
	})

	t.Run("offset_outside_presto", func(t *testing.T) {
		t.Parallel()
		// The bare -0530 offset form is a Presto extension.
		_, err := TimestampTZ("2020-01-01 -0530", TimestampLegacyCast)
		assert.ErrorIs(t, err, types.ErrZone)
	})

	t.Run("iso_rejects_zone_name", func(t *testing.T) {
		t.Parallel()
		_, err := TimestampTZ(
			"2021-06-01T12:30:45 America/New_York", TimestampISO8601)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("garbage_after_zone", func(t *testing.T) {
		t.Parallel()
		_, err := TimestampTZ("2020-01-01 12:00:00 UTC xyz", TimestampPrestoCast)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestTimestampSilent(t *testing.T) {
	t.Parallel()

	_, err := Timestamp("bogus", TimestampPrestoCast, WithSilent())
	require.Error(t, err)
	assert.Equal(t, ErrParse, err)

	_, err = TimestampTZ("2020-01-01 notatime", TimestampPrestoCast, WithSilent())
	require.Error(t, err)
	assert.Equal(t, types.ErrZone, err)
}

func TestTimestampErrorDetail(t *testing.T) {
	t.Parallel()

	_, err := Timestamp("bogus", TimestampPrestoCast)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Contains(t, err.Error(), "YYYY-MM-DD HH:MM:SS[.MS]")
}
