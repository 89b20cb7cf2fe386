package panchang

import (
	"context"
	"testing"
	"time"

	"panchang/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubContent serves a fixed payload without touching cache or upstream.
type stubContent struct {
	payload models.DailyPanchang
}

func (s *stubContent) DailyPanchang(ctx context.Context, date string) (*models.DailyPanchang, error) {
	p := s.payload
	p.Date = date
	return &p, nil
}

func (s *stubContent) Refresh(ctx context.Context, date string) (*models.DailyPanchang, error) {
	return s.DailyPanchang(ctx, date)
}

func tuesdayPayload() models.DailyPanchang {
	return models.DailyPanchang{
		Sections: []models.PayloadSection{
			{Title: "దుర్ముహూర్తాలు", Items: []models.PayloadItem{
				{Label: "రాహుకాలం", Value: "03:00 PM నుండి 04:30 PM"},
				{Label: "వర్జ్యం", Value: "08:12 PM - 09:45 PM | 02:10 AM - 03:40 AM"},
				{Label: "Nakshatra", Value: "Rohini"},
			}},
		},
	}
}

func TestWindowsFromPayloadPipeline(t *testing.T) {
	date := time.Date(2026, 9, 1, 12, 0, 0, 0, testLoc) // Tuesday
	windows := WindowsFromPayload(tuesdayPayload(), date, testLoc)

	byCategory := map[models.Category]int{}
	for _, w := range windows {
		byCategory[w.Category]++
		assert.True(t, w.Start.Before(w.End), "%s: start must precede end", w.Label)
	}

	assert.Equal(t, 1, byCategory[models.CategoryRahu])
	assert.Equal(t, 2, byCategory[models.CategoryVargyam], "pipe-delimited value expands to two windows")
	// Yama and gulika were not supplied; the fixed table fills them in.
	assert.Equal(t, 1, byCategory[models.CategoryYama])
	assert.Equal(t, 1, byCategory[models.CategoryGulika])
}

func TestServiceSnapshot(t *testing.T) {
	svc := &DefaultPanchangService{
		Content: &stubContent{payload: tuesdayPayload()},
		Loc:     testLoc,
	}

	// 15:30 on Tuesday: inside the supplied Rahu Kalam window.
	at := time.Date(2026, 9, 1, 15, 30, 0, 0, testLoc)
	snap, err := svc.Snapshot(context.Background(), at)
	require.NoError(t, err)
	require.NotNil(t, snap.Active)
	assert.Equal(t, models.CategoryRahu, snap.Active.Window.Category)
	assert.Equal(t, models.PhaseActive, snap.Active.State.Phase)
	assert.InDelta(t, 33.33, snap.Active.State.ProgressPercent, 0.01)
}

func TestServiceWindowsStates(t *testing.T) {
	svc := &DefaultPanchangService{
		Content: &stubContent{payload: tuesdayPayload()},
		Loc:     testLoc,
	}

	at := time.Date(2026, 9, 1, 23, 0, 0, 0, testLoc)
	states, err := svc.Windows(context.Background(), at)
	require.NoError(t, err)
	require.NotEmpty(t, states)

	for _, ws := range states {
		if ws.Window.Category == models.CategoryRahu {
			assert.Equal(t, models.PhasePast, ws.State.Phase)
		}
	}
}

func TestTrackerLifecycle(t *testing.T) {
	tracker := &Tracker{
		Content:       &stubContent{payload: tuesdayPayload()},
		Loc:           testLoc,
		SnapshotEvery: 10 * time.Millisecond,
		ReloadEvery:   50 * time.Millisecond,
	}

	tracker.Start(context.Background())

	require.Eventually(t, func() bool {
		return tracker.Snapshot() != nil
	}, time.Second, 5*time.Millisecond)

	snap := tracker.Snapshot()
	assert.False(t, snap.ComputedAt.IsZero())
	assert.GreaterOrEqual(t, snap.DayProgressPercent, 0.0)
	assert.LessOrEqual(t, snap.DayProgressPercent, 100.0)

	done := make(chan struct{})
	go func() {
		tracker.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tracker did not stop")
	}
}
