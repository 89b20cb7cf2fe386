// services/content/interface.go
package content

import (
	"context"

	"panchang/models"
)

// ContentService supplies the daily panchangam payload. The upstream API,
// the Redis cache and the Mongo archive are all behind this interface; the
// temporal engine itself never performs I/O.
type ContentService interface {
	// DailyPanchang returns the payload for a civil date ("2006-01-02"),
	// from cache when possible.
	DailyPanchang(ctx context.Context, date string) (*models.DailyPanchang, error)
	// Refresh fetches the payload from upstream unconditionally and
	// repopulates cache and archive.
	Refresh(ctx context.Context, date string) (*models.DailyPanchang, error)
}
