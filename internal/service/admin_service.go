package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/pkg/logger"
	"sea-catering-be/internal/repository/unitofwork"
	"sea-catering-be/pkg/admin/dashboard"

	"github.com/redis/go-redis/v9"
)

type IAdminService interface {
	GetMetrics(ctx context.Context, from, to time.Time) (*dto.AdminMetrics, error)
	GetSubscriptionGrowth(ctx context.Context) (*dto.SubscriptionGrowthResponse, error)
}

const metricsCacheTTL = 60 * time.Second

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	aggregator *dashboard.Aggregator
	rdb        *redis.Client
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	aggregator *dashboard.Aggregator,
	rdb *redis.Client,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     logger,
		aggregator: aggregator,
		rdb:        rdb,
	}
}

// cacheGet returns true when the key was found and unmarshalled into dest.
func (s *adminService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func (s *adminService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, metricsCacheTTL).Err(); err != nil {
		s.logger.Warn("admin", "failed to cache metrics", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (s *adminService) GetMetrics(ctx context.Context, from, to time.Time) (*dto.AdminMetrics, error) {
	cacheKey := fmt.Sprintf("admin:metrics:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))

	var cached dto.AdminMetrics
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	metrics, err := s.aggregator.GetMetrics(ctx, uow, from, to)
	if err != nil {
		s.logger.Error("admin", "failed to compute metrics", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, metrics)
	return metrics, nil
}

func (s *adminService) GetSubscriptionGrowth(ctx context.Context) (*dto.SubscriptionGrowthResponse, error) {
	cacheKey := "admin:metrics:growth"

	var cached dto.SubscriptionGrowthResponse
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	points, err := s.aggregator.GetSubscriptionGrowth(ctx, uow)
	if err != nil {
		s.logger.Error("admin", "failed to compute subscription growth", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	res := &dto.SubscriptionGrowthResponse{SubscriptionGrowth: points}
	s.cacheSet(ctx, cacheKey, res)
	return res, nil
}
