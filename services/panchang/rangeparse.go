// services/panchang/rangeparse.go
package panchang

import (
	"strings"
	"time"
)

// ParsedRange is a textual time range resolved to absolute instants on a
// specific civil date.
type ParsedRange struct {
	Start time.Time
	End   time.Time
}

// rangeSeparators are the separator spellings observed in the upstream feed
// and the fixed table, all normalized to a plain hyphen before splitting.
var rangeSeparators = []string{"నుండి", "–", "—", " to "}

// clockLayouts are tried in order for a single clock token.
var clockLayouts = []string{"3:04 PM", "3:04PM", "15:04:05", "15:04"}

// SplitRanges splits a pipe-delimited multi-range value (two disjoint
// Varjyam windows in one day, for example) into independent range strings.
func SplitRanges(value string) []string {
	parts := strings.Split(value, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseRange resolves a textual range such as "11:44 AM - 12:32 PM" to two
// absolute instants on the given calendar date in the given civil timezone.
// If the parsed end reads at or before the start ("11:30 PM - 12:15 AM",
// or an end of exactly 00:00) the end rolls over to the next day. Returns
// nil for anything that does not match the grammar; malformed upstream data
// degrades to "ignore this item".
func ParseRange(raw string, date time.Time, loc *time.Location) *ParsedRange {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, sep := range rangeSeparators {
		s = strings.ReplaceAll(s, sep, "-")
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil
	}

	start, ok := parseClock(parts[0])
	if !ok {
		return nil
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return nil
	}

	civil := date.In(loc)
	startAt := time.Date(civil.Year(), civil.Month(), civil.Day(), start.Hour(), start.Minute(), start.Second(), 0, loc)
	endAt := time.Date(civil.Year(), civil.Month(), civil.Day(), end.Hour(), end.Minute(), end.Second(), 0, loc)

	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	return &ParsedRange{Start: startAt, End: endAt}
}

func parseClock(tok string) (time.Time, bool) {
	tok = strings.ToUpper(strings.TrimSpace(tok))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
