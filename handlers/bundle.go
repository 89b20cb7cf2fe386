package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler for registration.
type HandlerBundle struct {
	// Daily payload and computed windows.
	GetDailyHandler    gin.HandlerFunc
	GetWindowsHandler  gin.HandlerFunc
	GetSnapshotHandler gin.HandlerFunc

	// Partition table lookups.
	GetAshtaStatusHandler   gin.HandlerFunc
	GetAshtaTimelineHandler gin.HandlerFunc
	GetGauriStatusHandler   gin.HandlerFunc
	GetGauriWeekHandler     gin.HandlerFunc
	GetFixedWindowsHandler  gin.HandlerFunc
}
