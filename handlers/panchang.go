package handlers

import (
	"net/http"
	"time"

	"panchang/models"
	"panchang/services/content"
	panchangSvc "panchang/services/panchang"
	"panchang/utils"

	"github.com/gin-gonic/gin"
)

// PanchangHandler serves the daily payload and the computed time windows.
type PanchangHandler struct {
	Service panchangSvc.PanchangService
	Content content.ContentService
	Tracker *panchangSvc.Tracker
	Loc     *time.Location
}

func NewPanchangHandler(service panchangSvc.PanchangService, contentSvc content.ContentService, tracker *panchangSvc.Tracker, loc *time.Location) *PanchangHandler {
	return &PanchangHandler{Service: service, Content: contentSvc, Tracker: tracker, Loc: loc}
}

// atParam resolves the optional ?date=2006-01-02 query into an instant in
// the civil timezone: midday of the requested date, or "now" when absent.
func (h *PanchangHandler) atParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().In(h.Loc), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, h.Loc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return day.Add(12 * time.Hour), true
}

// GetDailyHandler returns the raw upstream payload for a date.
func (h *PanchangHandler) GetDailyHandler(c *gin.Context) {
	at, ok := h.atParam(c)
	if !ok {
		return
	}

	payload, err := h.Content.DailyPanchang(c.Request.Context(), at.Format("2006-01-02"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load daily panchang", err.Error())
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetWindowsHandler returns every categorized window of a date with its
// current interval state.
func (h *PanchangHandler) GetWindowsHandler(c *gin.Context) {
	at, ok := h.atParam(c)
	if !ok {
		return
	}

	windows, err := h.Service.Windows(c.Request.Context(), at)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to compute windows", err.Error())
		return
	}

	// The UI renders the two sets separately: "avoid these hours" and the
	// auspicious windows.
	var inauspicious, auspicious []models.WindowState
	for _, ws := range windows {
		if ws.Window.Category.Inauspicious() {
			inauspicious = append(inauspicious, ws)
		} else {
			auspicious = append(auspicious, ws)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         at.Format("2006-01-02"),
		"inauspicious": inauspicious,
		"auspicious":   auspicious,
	})
}

// GetSnapshotHandler returns the tracker's live snapshot: the single active
// window plus upcoming ones inside the horizon. Falls back to an on-demand
// computation while the tracker warms up.
func (h *PanchangHandler) GetSnapshotHandler(c *gin.Context) {
	if h.Tracker != nil {
		if snap := h.Tracker.Snapshot(); snap != nil {
			c.JSON(http.StatusOK, snap)
			return
		}
	}

	snap, err := h.Service.Snapshot(c.Request.Context(), time.Now().In(h.Loc))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to compute snapshot", err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}
