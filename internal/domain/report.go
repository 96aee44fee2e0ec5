package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Alert levels for low-stock items.
const (
	AlertLevelWarning  = "warning"
	AlertLevelCritical = "critical"
)

// Anomaly severities.
const (
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// MetricDailyRevenue is the only KPI metric maintained today.
const MetricDailyRevenue = "daily_revenue"

// DailyScorecard is the aggregated performance summary for one store day.
type DailyScorecard struct {
	Date                string          `json:"date"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalRefunds        decimal.Decimal `json:"total_refunds"`
	NetRevenue          decimal.Decimal `json:"net_revenue"`
	TransactionCount    int             `json:"transaction_count"`
	AverageTicket       decimal.Decimal `json:"average_ticket"`
	ActiveEmployeeCount int             `json:"active_employee_count"`
}

// LeaderboardEntry is one employee's ranked daily sales total.
type LeaderboardEntry struct {
	EmployeeID       uuid.UUID       `json:"employee_id"`
	Name             string          `json:"name"`
	Code             string          `json:"code"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int             `json:"transaction_count"`
}

// InventoryAlert flags an item at or below the low-stock threshold.
type InventoryAlert struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	AlertLevel     string `json:"alert_level"`
}

// KPIBaseline is a rolling average persisted per (store, metric, period).
type KPIBaseline struct {
	StoreID           uuid.UUID       `json:"store_id" db:"store_id"`
	MetricName        string          `json:"metric_name" db:"metric_name"`
	CalculationPeriod int             `json:"calculation_period" db:"calculation_period"`
	BaselineValue     decimal.Decimal `json:"baseline_value" db:"baseline_value"`
	LastCalculated    time.Time       `json:"last_calculated" db:"last_calculated"`
}

// Anomaly is a flagged deviation of today's metric from a baseline. Computed
// per report run and embedded in the report, never persisted standalone.
type Anomaly struct {
	MetricName       string          `json:"metric_name"`
	Period           string          `json:"period"`
	CurrentValue     decimal.Decimal `json:"current_value"`
	BaselineValue    decimal.Decimal `json:"baseline_value"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
	Severity         string          `json:"severity"`
}

// DailyReport is the composite report for one (store, date), upserted on
// every run so re-running a day overwrites the prior report.
type DailyReport struct {
	StoreID         uuid.UUID          `json:"store_id"`
	ReportDate      string             `json:"report_date"`
	Scorecard       DailyScorecard     `json:"scorecard"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
	InventoryAlerts []InventoryAlert   `json:"inventory_alerts"`
	Anomalies       []Anomaly          `json:"anomalies"`
	GeneratedAt     time.Time          `json:"generated_at"`
}
