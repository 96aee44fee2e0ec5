package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
	"github.com/aldisetiana/posdash/backend-go/internal/repository"
)

type baselineRepository struct {
	db *DB
}

func NewBaselineRepository(db *DB) repository.BaselineRepository {
	return &baselineRepository{db: db}
}

// UpsertMany writes a batch of baseline rows within a single transaction, so
// a report run's baselines commit as a unit.
func (r *baselineRepository) UpsertMany(ctx context.Context, baselines []domain.KPIBaseline) error {
	if len(baselines) == 0 {
		return nil
	}

	query := `
        INSERT INTO kpi_baselines (store_id, metric_name, calculation_period, baseline_value, last_calculated)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (store_id, metric_name, calculation_period)
        DO UPDATE SET
            baseline_value = EXCLUDED.baseline_value,
            last_calculated = EXCLUDED.last_calculated
    `

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, b := range baselines {
			if _, err := tx.ExecContext(ctx, query,
				b.StoreID,
				b.MetricName,
				b.CalculationPeriod,
				b.BaselineValue,
				b.LastCalculated,
			); err != nil {
				return fmt.Errorf("error upserting %d-day baseline: %w", b.CalculationPeriod, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("store_id", baselines[0].StoreID.String()).
		Str("metric", baselines[0].MetricName).
		Int("rows", len(baselines)).
		Msg("baselines upserted")

	return nil
}

func (r *baselineRepository) ListByMetric(ctx context.Context, storeID uuid.UUID, metricName string) ([]domain.KPIBaseline, error) {
	query := `
        SELECT store_id, metric_name, calculation_period, baseline_value, last_calculated
        FROM kpi_baselines
        WHERE store_id = $1
          AND metric_name = $2
        ORDER BY calculation_period
    `

	var baselines []domain.KPIBaseline
	if err := r.db.SelectContext(ctx, &baselines, query, storeID, metricName); err != nil {
		return nil, fmt.Errorf("error listing baselines: %w", err)
	}

	return baselines, nil
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{db: db.DB}
}

func (r *reportRepository) Upsert(ctx context.Context, report *domain.DailyReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}

	query := `
        INSERT INTO daily_reports (store_id, report_date, report, generated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (store_id, report_date)
        DO UPDATE SET
            report = EXCLUDED.report,
            generated_at = EXCLUDED.generated_at
    `

	if _, err := r.db.ExecContext(ctx, query,
		report.StoreID,
		report.ReportDate,
		payload,
		report.GeneratedAt,
	); err != nil {
		return fmt.Errorf("error upserting daily report: %w", err)
	}

	return nil
}

func (r *reportRepository) Get(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, error) {
	query := `
        SELECT report
        FROM daily_reports
        WHERE store_id = $1
          AND report_date = $2
    `

	var payload []byte
	if err := r.db.GetContext(ctx, &payload, query, storeID, reportDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching daily report: %w", err)
	}

	var report domain.DailyReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("error decoding daily report: %w", err)
	}

	return &report, nil
}
