// services/panchang/fixed_windows.go
package panchang

import (
	"strings"
	"time"

	"panchang/models"
)

// fixedWindowTable maps title-case English weekday names to the three
// weekday-determined windows. The values are literal range strings in the
// same shape the upstream feed uses ("నుండి" is the range separator). This
// table is authoritative: it has an entry for every weekday and is used as
// the override source when the upstream feed omits a window.
var fixedWindowTable = map[string]models.FixedWindows{
	"Sunday":    {Rahu: "04:30 PM నుండి 06:00 PM", Yama: "12:00 PM నుండి 01:30 PM", Gulika: "03:00 PM నుండి 04:30 PM"},
	"Monday":    {Rahu: "07:30 AM నుండి 09:00 AM", Yama: "10:30 AM నుండి 12:00 PM", Gulika: "01:30 PM నుండి 03:00 PM"},
	"Tuesday":   {Rahu: "03:00 PM నుండి 04:30 PM", Yama: "09:00 AM నుండి 10:30 AM", Gulika: "12:00 PM నుండి 01:30 PM"},
	"Wednesday": {Rahu: "12:00 PM నుండి 01:30 PM", Yama: "07:30 AM నుండి 09:00 AM", Gulika: "10:30 AM నుండి 12:00 PM"},
	"Thursday":  {Rahu: "01:30 PM నుండి 03:00 PM", Yama: "06:00 AM నుండి 07:30 AM", Gulika: "09:00 AM నుండి 10:30 AM"},
	"Friday":    {Rahu: "10:30 AM నుండి 12:00 PM", Yama: "03:00 PM నుండి 04:30 PM", Gulika: "07:30 AM నుండి 09:00 AM"},
	"Saturday":  {Rahu: "09:00 AM నుండి 10:30 AM", Yama: "01:30 PM నుండి 03:00 PM", Gulika: "06:00 AM నుండి 07:30 AM"},
}

// LookupFixedWindows returns the fixed windows for a weekday name. The name
// is normalized to title case, so "monday" and "MONDAY" both resolve.
func LookupFixedWindows(dayName string) models.FixedWindows {
	name := normalizeWeekday(dayName)
	return fixedWindowTable[name]
}

// FixedWindowsFor returns the fixed windows for the civil date of t.
func FixedWindowsFor(t time.Time, loc *time.Location) models.FixedWindows {
	return fixedWindowTable[t.In(loc).Weekday().String()]
}

func normalizeWeekday(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
