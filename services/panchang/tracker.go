// services/panchang/tracker.go
package panchang

import (
	"context"
	"sync"
	"time"

	"panchang/models"
	"panchang/services/content"
	"panchang/utils"

	"go.uber.org/zap"
)

// Tracker keeps a live snapshot of the day's windows. The window list is
// re-derived from the content feed on a coarse tick (window boundaries are
// minutes apart), while the active-window selection and countdown are
// recomputed every second so progress rings feel live. Both loops stop when
// the context is cancelled; no tick outlives Stop.
type Tracker struct {
	Content content.ContentService
	Loc     *time.Location

	// tick cadences; zero values fall back to 1s / 60s.
	SnapshotEvery time.Duration
	ReloadEvery   time.Duration

	mu       sync.RWMutex
	windows  []models.TimeWindow
	snapshot *models.Snapshot
	cancel   context.CancelFunc
	done     chan struct{}
}

// Start launches the tracker loops. It returns immediately; the first
// snapshot is available once the initial reload completes.
func (t *Tracker) Start(ctx context.Context) {
	if t.SnapshotEvery <= 0 {
		t.SnapshotEvery = time.Second
	}
	if t.ReloadEvery <= 0 {
		t.ReloadEvery = time.Minute
	}

	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})

	go t.run(ctx)
}

// Stop cancels the tracker and waits for its loops to exit.
func (t *Tracker) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
}

// Snapshot returns the latest computed snapshot, or nil before the first
// tick completes.
func (t *Tracker) Snapshot() *models.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot
}

func (t *Tracker) run(ctx context.Context) {
	defer close(t.done)

	t.reload(ctx)
	t.compute(time.Now())

	snapTicker := time.NewTicker(t.SnapshotEvery)
	defer snapTicker.Stop()
	reloadTicker := time.NewTicker(t.ReloadEvery)
	defer reloadTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-reloadTicker.C:
			t.reload(ctx)
		case now := <-snapTicker.C:
			t.compute(now)
		}
	}
}

func (t *Tracker) reload(ctx context.Context) {
	now := time.Now().In(t.Loc)
	payload, err := t.Content.DailyPanchang(ctx, now.Format("2006-01-02"))
	if err != nil {
		utils.GetLogger().Warn("tracker reload failed", zap.Error(err))
		return
	}

	windows := WindowsFromPayload(*payload, now, t.Loc)
	t.mu.Lock()
	t.windows = windows
	t.mu.Unlock()
}

func (t *Tracker) compute(now time.Time) {
	now = now.In(t.Loc)

	t.mu.Lock()
	defer t.mu.Unlock()

	active, upcoming := SelectWindows(t.windows, now)
	t.snapshot = &models.Snapshot{
		ComputedAt:         now,
		Active:             active,
		Upcoming:           upcoming,
		DayProgressPercent: DayProgress(now, t.Loc),
	}
}
