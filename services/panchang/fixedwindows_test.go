package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowsTotalOverWeekdays(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		fw := LookupFixedWindows(wd.String())
		assert.NotEmpty(t, fw.Rahu, wd.String())
		assert.NotEmpty(t, fw.Yama, wd.String())
		assert.NotEmpty(t, fw.Gulika, wd.String())
	}
}

func TestFixedWindowsNameNormalization(t *testing.T) {
	want := LookupFixedWindows("Monday")
	assert.Equal(t, want, LookupFixedWindows("monday"))
	assert.Equal(t, want, LookupFixedWindows("MONDAY"))
	assert.Equal(t, want, LookupFixedWindows("  monday  "))
}

func TestFixedWindowsParseable(t *testing.T) {
	// Every literal in the table must survive the range parser; these values
	// are fed straight into it when used as overrides.
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		fw := LookupFixedWindows(wd.String())
		for _, raw := range []string{fw.Rahu, fw.Yama, fw.Gulika} {
			parsed := ParseRange(raw, date, testLoc)
			require.NotNil(t, parsed, "%s: %q", wd, raw)
			assert.Equal(t, 90*time.Minute, parsed.End.Sub(parsed.Start))
		}
	}
}

func TestFixedWindowsForDate(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, testLoc)
	assert.Equal(t, LookupFixedWindows("Tuesday"), FixedWindowsFor(at, testLoc))
}
