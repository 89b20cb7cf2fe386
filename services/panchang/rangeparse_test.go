package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeRoundTrip(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc)

	parsed := ParseRange("11:44 AM - 12:32 PM", date, testLoc)
	require.NotNil(t, parsed)
	assert.Equal(t, 48*time.Minute, parsed.End.Sub(parsed.Start))
	assert.Equal(t, 11, parsed.Start.Hour())
	assert.Equal(t, 44, parsed.Start.Minute())
	assert.Equal(t, date.Day(), parsed.Start.Day())
}

func TestParseRangeMidnightRollover(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc)

	parsed := ParseRange("11:00 PM - 12:30 AM", date, testLoc)
	require.NotNil(t, parsed)
	assert.Equal(t, 2, parsed.End.Day(), "end must roll over to the next calendar day")
	assert.Equal(t, 90*time.Minute, parsed.End.Sub(parsed.Start))
}

func TestParseRangeEndOfDayMarker(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc)

	// "00:00" as end denotes next-day midnight, never a zero-length window.
	parsed := ParseRange("22:30 - 00:00", date, testLoc)
	require.NotNil(t, parsed)
	assert.True(t, parsed.End.After(parsed.Start))
	assert.Equal(t, 90*time.Minute, parsed.End.Sub(parsed.Start))
}

func TestParseRangeSeparators(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc)

	for _, raw := range []string{
		"09:00 AM - 10:30 AM",
		"09:00 AM – 10:30 AM",
		"09:00 AM — 10:30 AM",
		"09:00 AM నుండి 10:30 AM",
	} {
		parsed := ParseRange(raw, date, testLoc)
		require.NotNil(t, parsed, raw)
		assert.Equal(t, 90*time.Minute, parsed.End.Sub(parsed.Start), raw)
	}
}

func TestParseRangeTwentyFourHourVariant(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc)

	parsed := ParseRange("14:05:30 - 15:20", date, testLoc)
	require.NotNil(t, parsed)
	assert.Equal(t, 14, parsed.Start.Hour())
	assert.Equal(t, 30, parsed.Start.Second())
	assert.Equal(t, 15, parsed.End.Hour())
}

func TestParseRangeMalformed(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc)

	for _, raw := range []string{
		"",
		"None",
		"sunrise to sunset",
		"11:44 AM",
		"25:99 - 26:00",
	} {
		assert.Nil(t, ParseRange(raw, date, testLoc), "%q must degrade to nil", raw)
	}
}

func TestParseRangeAnchorsToCivilZone(t *testing.T) {
	// The target date may arrive in any zone; instants come out in loc.
	date := time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC)

	parsed := ParseRange("10:00 AM - 11:00 AM", date, testLoc)
	require.NotNil(t, parsed)
	// 2026-09-01 22:00 UTC is already 09-02 in IST.
	assert.Equal(t, 2, parsed.Start.Day())
	assert.Equal(t, 10, parsed.Start.Hour())
}

func TestSplitRanges(t *testing.T) {
	assert.Equal(t,
		[]string{"08:12 PM - 09:45 PM", "03:15 AM - 04:50 AM"},
		SplitRanges("08:12 PM - 09:45 PM | 03:15 AM - 04:50 AM"))
	assert.Equal(t, []string{"08:12 PM - 09:45 PM"}, SplitRanges("08:12 PM - 09:45 PM"))
	assert.Empty(t, SplitRanges(" | "))
}
