package routes

import (
	"net/http"
	"time"

	"panchang/handlers"
	"panchang/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPanchangRoutes registers the daily payload and window endpoints.
func RegisterPanchangRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/panchang")
	{
		api.GET("/today", hb.GetDailyHandler)
		api.GET("/windows", hb.GetWindowsHandler)
		api.GET("/now", hb.GetSnapshotHandler)
	}
}

// RegisterPartitionRoutes registers the static table lookup endpoints.
func RegisterPartitionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/panchang")
	{
		api.GET("/ashta/status", hb.GetAshtaStatusHandler)
		api.GET("/ashta/timeline", hb.GetAshtaTimelineHandler)
		api.GET("/gauri/status", hb.GetGauriStatusHandler)
		api.GET("/gauri/week", hb.GetGauriWeekHandler)
		api.GET("/fixed", hb.GetFixedWindowsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPanchangRoutes(r, hb)
	RegisterPartitionRoutes(r, hb)
	RegisterHealthRoute(r)
}
