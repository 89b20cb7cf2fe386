// services/content/service.go
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"panchang/config"
	panchangRepo "panchang/database/repository/panchang"
	"panchang/models"
	"panchang/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultContentService is the concrete ContentService: Redis cache in
// front of the upstream HTTP API, with the Mongo archive as both sink and
// fallback when upstream is down.
type DefaultContentService struct {
	Client  *http.Client
	BaseURL string
	Cache   *redis.Client
	Repo    panchangRepo.PanchangRepository
}

// NewDefaultContentService wires the service from global config.
func NewDefaultContentService(repo panchangRepo.PanchangRepository) *DefaultContentService {
	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DefaultContentService{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: config.AppConfig.UpstreamAPIURL,
		Cache:   utils.GetCacheClient(),
		Repo:    repo,
	}
}

func (s *DefaultContentService) DailyPanchang(ctx context.Context, date string) (*models.DailyPanchang, error) {
	if payload := s.fromCache(ctx, date); payload != nil {
		return payload, nil
	}
	return s.Refresh(ctx, date)
}

func (s *DefaultContentService) Refresh(ctx context.Context, date string) (*models.DailyPanchang, error) {
	logger := utils.GetLogger()

	payload, err := s.fetchUpstream(ctx, date)
	if err != nil {
		logger.Warn("upstream fetch failed, falling back to archive",
			zap.String("date", date), zap.Error(err))
		archived, archiveErr := s.Repo.GetByDate(ctx, date)
		if archiveErr != nil || archived == nil {
			return nil, fmt.Errorf("upstream unavailable and no archived payload for %s: %w", date, err)
		}
		return archived, nil
	}

	// Archive and cache failures are not fatal: the payload is already in
	// hand and rendering must not be blocked.
	if err := s.Repo.Upsert(ctx, *payload); err != nil {
		logger.Warn("failed to archive daily payload", zap.String("date", date), zap.Error(err))
	}
	s.toCache(ctx, date, payload)

	return payload, nil
}

func (s *DefaultContentService) fetchUpstream(ctx context.Context, date string) (*models.DailyPanchang, error) {
	if s.BaseURL == "" {
		return nil, fmt.Errorf("no upstream API configured")
	}

	endpoint := fmt.Sprintf("%s?date=%s", s.BaseURL, url.QueryEscape(date))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var payload models.DailyPanchang
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode upstream payload: %w", err)
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return &payload, nil
}

func (s *DefaultContentService) fromCache(ctx context.Context, date string) *models.DailyPanchang {
	data, err := s.Cache.Get(ctx, utils.PayloadCachePrefix+date).Bytes()
	if err != nil {
		return nil
	}
	var payload models.DailyPanchang
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}
	return &payload
}

func (s *DefaultContentService) toCache(ctx context.Context, date string, payload *models.DailyPanchang) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.PayloadCachePrefix+date, data, utils.PayloadCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache daily payload", zap.String("date", date), zap.Error(err))
	}
}
