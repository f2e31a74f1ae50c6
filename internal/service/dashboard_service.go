package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DashboardService serves the kiosk summary, backed by a short-TTL Redis
// snapshot so the unauthenticated route cannot hammer the database.
type DashboardService struct {
	repo *repository.DashboardRepository
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		repo: repo,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetSummary returns the dashboard counts, from cache when fresh.
func (s *DashboardService) GetSummary(ctx context.Context) (*model.DashboardSummary, error) {
	key := config.CacheKey.DashboardSummaryKey()

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		summary := &model.DashboardSummary{}
		if err := json.Unmarshal([]byte(cached), summary); err == nil {
			return summary, nil
		}
		// Unreadable snapshot: fall through and recompute.
		s.log.Warn().Msg("Discarding corrupt dashboard cache entry")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Dashboard cache read failed")
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the summary and stores the snapshot. Caching is best
// effort; the computed summary is returned even if the write fails.
func (s *DashboardService) Refresh(ctx context.Context) (*model.DashboardSummary, error) {
	summary, err := s.repo.GetSummary(ctx, s.cfg.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return summary, nil
	}
	if err := s.rdb.Set(ctx, config.CacheKey.DashboardSummaryKey(), payload, s.cfg.DashboardCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Dashboard cache write failed")
	}
	return summary, nil
}
