// services/panchang/interface.go
package panchang

import (
	"context"
	"time"

	"panchang/models"
)

// PanchangService binds the temporal engine to the content feed: windows
// for a date with their live states, and the reduced "what is active right
// now" snapshot.
type PanchangService interface {
	Windows(ctx context.Context, at time.Time) ([]models.WindowState, error)
	Snapshot(ctx context.Context, at time.Time) (*models.Snapshot, error)
}
