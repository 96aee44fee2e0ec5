package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

// DetectAnomalies compares today's revenue against each persisted baseline
// and flags deviations above threshold (a ratio, e.g. 0.30). Severity is
// "high" when the absolute percentage change exceeds highSeverityPercent.
//
// Baselines with a zero value are skipped: a zero baseline means the store
// has no sales history for that window, and a percentage change against zero
// is undefined. Flagging the first day of sales as an infinite-percent
// anomaly would only produce noise.
func DetectAnomalies(todayRevenue decimal.Decimal, baselines []domain.KPIBaseline, threshold, highSeverityPercent float64) []domain.Anomaly {
	anomalies := make([]domain.Anomaly, 0)

	thresholdRatio := decimal.NewFromFloat(threshold)
	highPercent := decimal.NewFromFloat(highSeverityPercent)

	for _, b := range baselines {
		if b.BaselineValue.IsZero() {
			continue
		}

		diff := todayRevenue.Sub(b.BaselineValue).Abs()
		if !diff.GreaterThan(b.BaselineValue.Mul(thresholdRatio)) {
			continue
		}

		change := todayRevenue.Sub(b.BaselineValue).
			Div(b.BaselineValue).
			Mul(decimal.NewFromInt(100)).
			Round(2)

		severity := domain.SeverityMedium
		if change.Abs().GreaterThan(highPercent) {
			severity = domain.SeverityHigh
		}

		anomalies = append(anomalies, domain.Anomaly{
			MetricName:       b.MetricName,
			Period:           fmt.Sprintf("%d_day", b.CalculationPeriod),
			CurrentValue:     todayRevenue,
			BaselineValue:    b.BaselineValue,
			PercentageChange: change,
			Severity:         severity,
		})
	}

	return anomalies
}
