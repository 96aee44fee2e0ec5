package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aldisetiana/posdash/backend-go/internal/config"
	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

const (
	reportKeyPrefix     = "daily_report"
	reportScanBatchSize = 100
)

// ReportCache fronts the daily_reports table for dashboard reads.
type ReportCache interface {
	GetReport(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, bool, error)
	SetReport(ctx context.Context, report *domain.DailyReport) error
	InvalidateStore(ctx context.Context, storeID uuid.UUID) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{client: client, ttl: ttl}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) GetReport(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, bool, error) {
	payload, err := c.client.Get(ctx, reportKey(storeID, reportDate)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report domain.DailyReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode daily report cache: %w", err)
	}

	return &report, true, nil
}

func (c *redisReportCache) SetReport(ctx context.Context, report *domain.DailyReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode daily report cache: %w", err)
	}

	key := reportKey(report.StoreID, report.ReportDate)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) InvalidateStore(ctx context.Context, storeID uuid.UUID) error {
	prefix := fmt.Sprintf("%s:%s", reportKeyPrefix, storeID)
	return deleteKeysWithPrefix(ctx, c.client, prefix, reportScanBatchSize)
}

func (n *noopReportCache) GetReport(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetReport(ctx context.Context, report *domain.DailyReport) error {
	return nil
}

func (n *noopReportCache) InvalidateStore(ctx context.Context, storeID uuid.UUID) error {
	return nil
}

func reportKey(storeID uuid.UUID, reportDate string) string {
	return fmt.Sprintf("%s:%s:%s", reportKeyPrefix, storeID, reportDate)
}
