package handlers

import (
	"net/http"
	"strings"
	"time"

	panchangSvc "panchang/services/panchang"
	"panchang/utils"

	"github.com/gin-gonic/gin"
)

// PartitionHandler serves the Ashta Siddhanta and Gauri Panchangam lookups.
// These are pure table computations driven only by wall-clock time and
// weekday; they never touch the upstream feed.
type PartitionHandler struct {
	Loc *time.Location
}

func NewPartitionHandler(loc *time.Location) *PartitionHandler {
	return &PartitionHandler{Loc: loc}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// weekdayParam resolves the optional ?weekday= query, defaulting to today's
// civil weekday.
func (h *PartitionHandler) weekdayParam(c *gin.Context) (time.Weekday, bool) {
	raw := c.Query("weekday")
	if raw == "" {
		return time.Now().In(h.Loc).Weekday(), true
	}
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid weekday", "expected an English weekday name")
		return 0, false
	}
	return wd, true
}

// GetAshtaStatusHandler returns the current Ashta Siddhanta slot.
func (h *PartitionHandler) GetAshtaStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, panchangSvc.AshtaCurrentStatus(time.Now(), h.Loc))
}

// GetAshtaTimelineHandler returns the full 30-slot timeline for one phase.
// ?phase=night selects the night table; anything else means day.
func (h *PartitionHandler) GetAshtaTimelineHandler(c *gin.Context) {
	wd, ok := h.weekdayParam(c)
	if !ok {
		return
	}
	isNight := strings.EqualFold(c.Query("phase"), "night")
	c.JSON(http.StatusOK, gin.H{
		"weekday": wd.String(),
		"phase":   map[bool]string{true: "night", false: "day"}[isNight],
		"slots":   panchangSvc.AshtaSlots(wd, isNight),
	})
}

// GetGauriStatusHandler returns the current Gauri Panchangam slot.
func (h *PartitionHandler) GetGauriStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, panchangSvc.GauriCurrentStatus(time.Now(), h.Loc))
}

// GetGauriWeekHandler returns the 7-day x 16-slot Gauri table.
func (h *PartitionHandler) GetGauriWeekHandler(c *gin.Context) {
	c.JSON(http.StatusOK, panchangSvc.GauriWeek())
}

// GetFixedWindowsHandler returns the three weekday-fixed windows.
func (h *PartitionHandler) GetFixedWindowsHandler(c *gin.Context) {
	wd, ok := h.weekdayParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weekday": wd.String(),
		"windows": panchangSvc.LookupFixedWindows(wd.String()),
	})
}
