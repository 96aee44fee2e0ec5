package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aldisetiana/posdash/backend-go/internal/cache"
	"github.com/aldisetiana/posdash/backend-go/internal/domain"
	"github.com/aldisetiana/posdash/backend-go/internal/report"
	"github.com/aldisetiana/posdash/backend-go/internal/repository"
)

// ReportService wires the report generator to persistence and the read cache.
type ReportService struct {
	generator *report.Generator
	inventory repository.InventoryRepository
	baselines repository.BaselineRepository
	reports   repository.ReportRepository
	cache     cache.ReportCache
	cfg       report.Config
}

func NewReportService(
	transactions repository.TransactionRepository,
	inventory repository.InventoryRepository,
	baselines repository.BaselineRepository,
	reports repository.ReportRepository,
	cacheImpl cache.ReportCache,
	cfg report.Config,
) *ReportService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	return &ReportService{
		generator: report.NewGenerator(transactions, inventory, baselines, reports, cfg),
		inventory: inventory,
		baselines: baselines,
		reports:   reports,
		cache:     cacheImpl,
		cfg:       cfg,
	}
}

// GenerateDaily runs the full report pipeline for the store's UTC day and
// refreshes the cached copy.
func (s *ReportService) GenerateDaily(ctx context.Context, storeID uuid.UUID, day time.Time) (*domain.DailyReport, error) {
	generated, err := s.generator.Generate(ctx, storeID, day)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetReport(ctx, generated); err != nil {
		log.Warn().Err(err).Msg("report: cache set failed")
	}

	return generated, nil
}

// GetReport returns a previously generated report, preferring the cache.
// Returns nil when no report exists for that store and date.
func (s *ReportService) GetReport(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, error) {
	if cached, ok, err := s.cache.GetReport(ctx, storeID, reportDate); err == nil && ok {
		return cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("report: cache get failed")
	}

	stored, err := s.reports.Get(ctx, storeID, reportDate)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}

	if err := s.cache.SetReport(ctx, stored); err != nil {
		log.Warn().Err(err).Msg("report: cache set failed")
	}

	return stored, nil
}

// InvalidateCache drops every cached report for the store, forcing the next
// dashboard read back to Postgres.
func (s *ReportService) InvalidateCache(ctx context.Context, storeID uuid.UUID) error {
	return s.cache.InvalidateStore(ctx, storeID)
}

// GetInventoryAlerts reflects the store's current low-stock items.
func (s *ReportService) GetInventoryAlerts(ctx context.Context, storeID uuid.UUID) ([]domain.InventoryAlert, error) {
	levels, err := s.inventory.ListLowStock(ctx, storeID, s.cfg.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return report.BuildInventoryAlerts(levels), nil
}

// GetBaselines returns the store's persisted daily-revenue baselines.
func (s *ReportService) GetBaselines(ctx context.Context, storeID uuid.UUID) ([]domain.KPIBaseline, error) {
	baselines, err := s.baselines.ListByMetric(ctx, storeID, domain.MetricDailyRevenue)
	if err != nil {
		return nil, err
	}
	if baselines == nil {
		baselines = make([]domain.KPIBaseline, 0)
	}
	return baselines, nil
}
