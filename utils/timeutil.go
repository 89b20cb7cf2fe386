package utils

import (
	"sync"
	"time"

	"panchang/config"
)

var (
	loc     *time.Location
	locOnce sync.Once
)

// Location returns the civil timezone every table lookup and window
// computation is anchored to. Defaults to Asia/Kolkata; if the zone database
// is unavailable a fixed UTC+5:30 zone is used instead.
func Location() *time.Location {
	locOnce.Do(func() {
		name := config.AppConfig.Timezone
		if name == "" {
			name = "Asia/Kolkata"
		}
		var err error
		loc, err = time.LoadLocation(name)
		if err != nil {
			loc = time.FixedZone("IST", 5*60*60+30*60)
		}
	})
	return loc
}

// Now returns the current time in the configured civil timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// ToCivil converts any instant into the configured civil timezone. Viewer
// supplied times are always normalized through this before any table lookup.
func ToCivil(t time.Time) time.Time {
	return t.In(Location())
}

// StartOfDay returns midnight of the given instant's civil date.
func StartOfDay(t time.Time) time.Time {
	c := ToCivil(t)
	return time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, Location())
}

// DateKey formats an instant as the civil date key used by the payload cache
// and the Mongo archive.
func DateKey(t time.Time) string {
	return ToCivil(t).Format("2006-01-02")
}
