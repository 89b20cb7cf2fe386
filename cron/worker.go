package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"panchang/config"
	"panchang/services/content"
	"panchang/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeRefreshPanchang = "panchang:refresh"

// RefreshPayload is the task payload for a daily-panchang refresh.
type RefreshPayload struct {
	Date string `json:"date"` // "2006-01-02" civil date
}

// InitRefreshWorker runs the async refresh worker in background. The worker
// and its redis monitor shut down when ctx is cancelled.
func InitRefreshWorker(ctx context.Context, contentSvc content.ContentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRefreshDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRefreshPanchang, handleRefreshTask(contentSvc))

	// Start Redis health monitor
	go monitorRedisConnection(ctx)

	// Stop the worker when the root context is cancelled.
	go func() {
		<-ctx.Done()
		srv.Shutdown()
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[RefreshWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RefreshWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RefreshWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// StartRefreshScheduler enqueues a refresh for the current civil date once
// per hour, so the cache and archive stay warm even with no traffic. The
// loop exits when the context is cancelled.
func StartRefreshScheduler(ctx context.Context) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRefreshDB,
	})

	go func() {
		defer client.Close()

		enqueue := func() {
			payload, err := json.Marshal(RefreshPayload{Date: utils.DateKey(utils.Now())})
			if err != nil {
				return
			}
			task := asynq.NewTask(TypeRefreshPanchang, payload)
			if _, err := client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
				log.Printf("[RefreshScheduler] Failed to enqueue refresh: %v", err)
			}
		}

		enqueue()
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[RefreshScheduler] shutdown signal received.")
				return
			case <-ticker.C:
				enqueue()
			}
		}
	}()
}

func handleRefreshTask(contentSvc content.ContentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RefreshHandler] Invalid payload: %v", err)
			return err
		}
		if p.Date == "" {
			p.Date = utils.DateKey(utils.Now())
		}

		log.Printf("[RefreshHandler] Refreshing daily panchang for %s", p.Date)
		if _, err := contentSvc.Refresh(ctx, p.Date); err != nil {
			log.Printf("[RefreshHandler] Refresh failed: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at
// runtime. Returns and closes the client when ctx is cancelled.
func monitorRedisConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRefreshDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				log.Printf("[RefreshWorker] Redis connection lost: %v", err)
			}
		}
	}
}
