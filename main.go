// File: panchang/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"panchang/config"
	"panchang/cron"
	"panchang/database"
	panchangRepo "panchang/database/repository/panchang"
	"panchang/handlers"
	"panchang/middleware"
	"panchang/routes"
	"panchang/services/content"
	panchangSvc "panchang/services/panchang"
	"panchang/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	loc := utils.Location()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	archiveRepo := panchangRepo.NewMongoPanchangRepo()

	// services.
	contentService := content.NewDefaultContentService(archiveRepo)
	panchangService := &panchangSvc.DefaultPanchangService{
		Content: contentService,
		Loc:     loc,
	}

	// Background refresh worker and scheduler.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()
	cron.InitRefreshWorker(rootCtx, contentService)
	cron.StartRefreshScheduler(rootCtx)

	// Live window tracker: 1s countdown tick, 60s window reload.
	tracker := &panchangSvc.Tracker{
		Content:       contentService,
		Loc:           loc,
		SnapshotEvery: time.Second,
		ReloadEvery:   time.Minute,
	}
	tracker.Start(rootCtx)

	utils.StartHealthMonitor(rootCtx, utils.GetCacheClient(), database.MongoClient, config.AppConfig.UpstreamAPIURL)

	panchangHandler := handlers.NewPanchangHandler(panchangService, contentService, tracker, loc)
	partitionHandler := handlers.NewPartitionHandler(loc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetDailyHandler:    panchangHandler.GetDailyHandler,
		GetWindowsHandler:  panchangHandler.GetWindowsHandler,
		GetSnapshotHandler: panchangHandler.GetSnapshotHandler,

		GetAshtaStatusHandler:   partitionHandler.GetAshtaStatusHandler,
		GetAshtaTimelineHandler: partitionHandler.GetAshtaTimelineHandler,
		GetGauriStatusHandler:   partitionHandler.GetGauriStatusHandler,
		GetGauriWeekHandler:     partitionHandler.GetGauriWeekHandler,
		GetFixedWindowsHandler:  partitionHandler.GetFixedWindowsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	rootCancel()
	tracker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
