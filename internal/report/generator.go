package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
	"github.com/aldisetiana/posdash/backend-go/internal/repository"
)

// Config holds the tunables of a report run.
type Config struct {
	LowStockThreshold   int
	AnomalyThreshold    float64
	HighSeverityPercent float64
	LeaderboardSize     int
	BaselinePeriods     []int
}

// DefaultConfig mirrors the values the POS dashboard ships with.
func DefaultConfig() Config {
	return Config{
		LowStockThreshold:   5,
		AnomalyThreshold:    0.30,
		HighSeverityPercent: 50,
		LeaderboardSize:     10,
		BaselinePeriods:     []int{7, 28},
	}
}

// Generator runs the daily report pipeline for one (store, date): scorecard,
// leaderboard and inventory alerts from the day's data, then baseline
// maintenance followed by anomaly detection. The baseline upsert commits
// before the detector reads baselines back; concurrent runs for the same
// store and date are the caller's responsibility to serialize.
type Generator struct {
	transactions repository.TransactionRepository
	inventory    repository.InventoryRepository
	baselines    repository.BaselineRepository
	reports      repository.ReportRepository
	cfg          Config
	now          func() time.Time
}

func NewGenerator(
	transactions repository.TransactionRepository,
	inventory repository.InventoryRepository,
	baselines repository.BaselineRepository,
	reports repository.ReportRepository,
	cfg Config,
) *Generator {
	if len(cfg.BaselinePeriods) == 0 {
		cfg.BaselinePeriods = DefaultConfig().BaselinePeriods
	}
	return &Generator{
		transactions: transactions,
		inventory:    inventory,
		baselines:    baselines,
		reports:      reports,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Generate builds and persists the report for the store's UTC calendar day.
// Nothing is persisted to the report table unless every stage succeeds.
func (g *Generator) Generate(ctx context.Context, storeID uuid.UUID, day time.Time) (*domain.DailyReport, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	txns, err := g.transactions.ListDayTransactions(ctx, storeID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load day transactions: %w", err)
	}

	scorecard := BuildScorecard(dayStart, txns)
	leaderboard := BuildLeaderboard(txns, g.cfg.LeaderboardSize)

	levels, err := g.inventory.ListLowStock(ctx, storeID, g.cfg.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock levels: %w", err)
	}
	alerts := BuildInventoryAlerts(levels)

	// Baselines must be written before the detector reads them back, so a
	// baseline always reflects only days strictly before the report date.
	if err := g.maintainBaselines(ctx, storeID, dayStart); err != nil {
		return nil, err
	}

	baselines, err := g.baselines.ListByMetric(ctx, storeID, domain.MetricDailyRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to load baselines: %w", err)
	}

	anomalies := DetectAnomalies(scorecard.TotalRevenue, baselines, g.cfg.AnomalyThreshold, g.cfg.HighSeverityPercent)

	report := &domain.DailyReport{
		StoreID:         storeID,
		ReportDate:      dayStart.Format("2006-01-02"),
		Scorecard:       scorecard,
		Leaderboard:     leaderboard,
		InventoryAlerts: alerts,
		Anomalies:       anomalies,
		GeneratedAt:     g.now().UTC(),
	}

	if err := g.reports.Upsert(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to persist daily report: %w", err)
	}

	log.Info().
		Str("store_id", storeID.String()).
		Str("report_date", report.ReportDate).
		Int("transactions", len(txns)).
		Int("leaderboard", len(leaderboard)).
		Int("inventory_alerts", len(alerts)).
		Int("anomalies", len(anomalies)).
		Msg("daily report generated")

	return report, nil
}

// maintainBaselines recomputes the rolling average-daily-revenue baseline for
// each configured window. The window is [day-N, day), so the report day's own
// transactions never leak into its baseline, and the divisor is the fixed
// window length N: days without transactions count as zero revenue. All
// windows are written in one batch that commits before the detector reads
// baselines back.
func (g *Generator) maintainBaselines(ctx context.Context, storeID uuid.UUID, dayStart time.Time) error {
	baselines := make([]domain.KPIBaseline, 0, len(g.cfg.BaselinePeriods))

	for _, period := range g.cfg.BaselinePeriods {
		from := dayStart.AddDate(0, 0, -period)

		total, err := g.transactions.SumSaleAmount(ctx, storeID, from, dayStart)
		if err != nil {
			return fmt.Errorf("failed to sum revenue for %d-day window: %w", period, err)
		}

		baselines = append(baselines, domain.KPIBaseline{
			StoreID:           storeID,
			MetricName:        domain.MetricDailyRevenue,
			CalculationPeriod: period,
			BaselineValue:     total.DivRound(decimal.NewFromInt(int64(period)), 2),
			LastCalculated:    g.now().UTC(),
		})
	}

	if err := g.baselines.UpsertMany(ctx, baselines); err != nil {
		return fmt.Errorf("failed to upsert baselines: %w", err)
	}

	return nil
}
