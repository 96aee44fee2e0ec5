package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

// BaselineRepository persists rolling KPI baselines. Writes are upserts keyed
// by (store_id, metric_name, calculation_period); a batch commits as a unit.
type BaselineRepository interface {
	UpsertMany(ctx context.Context, baselines []domain.KPIBaseline) error
	ListByMetric(ctx context.Context, storeID uuid.UUID, metricName string) ([]domain.KPIBaseline, error)
}

// ReportRepository persists composite daily reports. Writes are upserts keyed
// by (store_id, report_date).
type ReportRepository interface {
	Upsert(ctx context.Context, report *domain.DailyReport) error
	Get(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, error)
}
