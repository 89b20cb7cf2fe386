// services/panchang/service.go
package panchang

import (
	"context"
	"fmt"
	"time"

	"panchang/models"
	"panchang/services/content"
)

// DefaultPanchangService is the concrete PanchangService.
type DefaultPanchangService struct {
	Content content.ContentService
	Loc     *time.Location
}

// WindowsFromPayload runs the full pipeline over an already-fetched payload:
// classify and merge the sections, then parse every range (pipe-delimited
// values expand to independent windows). Items whose value does not parse
// are dropped; they must never block the rest of the day's data.
func WindowsFromPayload(payload models.DailyPanchang, date time.Time, loc *time.Location) []models.TimeWindow {
	civil := date.In(loc)
	merged := MergeSections(payload, civil.Weekday().String())

	var windows []models.TimeWindow
	for _, item := range merged {
		for _, rangeStr := range SplitRanges(item.RawValue) {
			parsed := ParseRange(rangeStr, civil, loc)
			if parsed == nil {
				continue
			}
			windows = append(windows, models.TimeWindow{
				Category: item.Category,
				Label:    item.Label,
				Start:    parsed.Start,
				End:      parsed.End,
			})
		}
	}
	return windows
}

func (s *DefaultPanchangService) windowsAt(ctx context.Context, at time.Time) ([]models.TimeWindow, error) {
	civil := at.In(s.Loc)
	payload, err := s.Content.DailyPanchang(ctx, civil.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to load daily payload: %w", err)
	}
	return WindowsFromPayload(*payload, civil, s.Loc), nil
}

// Windows returns every categorized window of the civil day containing
// "at", each paired with its state at that instant.
func (s *DefaultPanchangService) Windows(ctx context.Context, at time.Time) ([]models.WindowState, error) {
	windows, err := s.windowsAt(ctx, at)
	if err != nil {
		return nil, err
	}

	states := make([]models.WindowState, 0, len(windows))
	for _, w := range windows {
		states = append(states, models.WindowState{Window: w, State: IntervalState(w, at)})
	}
	return states, nil
}

// Snapshot reduces the day to the single active window (category priority
// tie-break) and the upcoming windows inside the horizon.
func (s *DefaultPanchangService) Snapshot(ctx context.Context, at time.Time) (*models.Snapshot, error) {
	windows, err := s.windowsAt(ctx, at)
	if err != nil {
		return nil, err
	}

	active, upcoming := SelectWindows(windows, at)
	return &models.Snapshot{
		ComputedAt:         at,
		Active:             active,
		Upcoming:           upcoming,
		DayProgressPercent: DayProgress(at, s.Loc),
	}, nil
}
