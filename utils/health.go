package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest probe result for the service's external
// dependencies: the payload cache, the archive database, and the upstream
// content API.
type HealthStatus struct {
	Cache     bool      `json:"cache"`
	Archive   bool      `json:"archive"`
	Upstream  bool      `json:"upstream"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the payload cache, the archive and the upstream
// content API once a minute and keeps the result in memory for the /health
// route. The first probe runs immediately; the loop exits when ctx is
// cancelled.
func StartHealthMonitor(ctx context.Context, cache *redis.Client, mongoClient *mongo.Client, upstreamURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		probe := func() {
			probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			logger := GetLogger()
			status := HealthStatus{CheckedAt: time.Now()}

			if err := cache.Ping(probeCtx).Err(); err != nil {
				logger.Warn("Payload cache unreachable", zap.Error(err))
			} else {
				status.Cache = true
			}

			if err := mongoClient.Ping(probeCtx, nil); err != nil {
				logger.Warn("Archive database unreachable", zap.Error(err))
			} else {
				status.Archive = true
			}

			status.Upstream = upstreamReachable(probeCtx, upstreamURL)

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}

		probe()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probe()
			}
		}
	}()
}

// upstreamReachable reports whether the content API answers at all. Any
// response below 500 counts: the probe is about reachability, not payload
// validity.
func upstreamReachable(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		GetLogger().Warn("Upstream content API unreachable", zap.Error(err))
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}
