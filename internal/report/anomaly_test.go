package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

func revenueBaseline(period int, value string) domain.KPIBaseline {
	return domain.KPIBaseline{
		StoreID:           uuid.New(),
		MetricName:        domain.MetricDailyRevenue,
		CalculationPeriod: period,
		BaselineValue:     decimal.RequireFromString(value),
		LastCalculated:    time.Now().UTC(),
	}
}

func TestDetectAnomalies(t *testing.T) {
	baselines := []domain.KPIBaseline{revenueBaseline(7, "100")}

	t.Run("medium severity above threshold", func(t *testing.T) {
		anomalies := DetectAnomalies(decimal.RequireFromString("145"), baselines, 0.30, 50)

		if len(anomalies) != 1 {
			t.Fatalf("len(anomalies) = %d, want 1", len(anomalies))
		}
		a := anomalies[0]
		wantDecimal(t, "percentage_change", a.PercentageChange, "45")
		if a.Severity != domain.SeverityMedium {
			t.Errorf("severity = %s, want medium", a.Severity)
		}
		if a.Period != "7_day" {
			t.Errorf("period = %s, want 7_day", a.Period)
		}
		if a.MetricName != domain.MetricDailyRevenue {
			t.Errorf("metric_name = %s, want daily_revenue", a.MetricName)
		}
	})

	t.Run("high severity past fifty percent", func(t *testing.T) {
		anomalies := DetectAnomalies(decimal.RequireFromString("200"), baselines, 0.30, 50)

		if len(anomalies) != 1 {
			t.Fatalf("len(anomalies) = %d, want 1", len(anomalies))
		}
		wantDecimal(t, "percentage_change", anomalies[0].PercentageChange, "100")
		if anomalies[0].Severity != domain.SeverityHigh {
			t.Errorf("severity = %s, want high", anomalies[0].Severity)
		}
	})

	t.Run("deviation at the threshold is not flagged", func(t *testing.T) {
		// diff of exactly 30 equals baseline*0.30, which is not > threshold
		anomalies := DetectAnomalies(decimal.RequireFromString("130"), baselines, 0.30, 50)
		if len(anomalies) != 0 {
			t.Fatalf("len(anomalies) = %d, want 0", len(anomalies))
		}
	})

	t.Run("drops are flagged with negative change", func(t *testing.T) {
		anomalies := DetectAnomalies(decimal.RequireFromString("40"), baselines, 0.30, 50)

		if len(anomalies) != 1 {
			t.Fatalf("len(anomalies) = %d, want 1", len(anomalies))
		}
		wantDecimal(t, "percentage_change", anomalies[0].PercentageChange, "-60")
		if anomalies[0].Severity != domain.SeverityHigh {
			t.Errorf("severity = %s, want high", anomalies[0].Severity)
		}
	})

	t.Run("zero baseline skipped", func(t *testing.T) {
		zero := []domain.KPIBaseline{revenueBaseline(7, "0")}

		anomalies := DetectAnomalies(decimal.RequireFromString("500"), zero, 0.30, 50)
		if len(anomalies) != 0 {
			t.Fatalf("len(anomalies) = %d, want 0 for zero baseline", len(anomalies))
		}
	})

	t.Run("each baseline evaluated independently", func(t *testing.T) {
		both := []domain.KPIBaseline{
			revenueBaseline(7, "100"),
			revenueBaseline(28, "140"),
		}

		anomalies := DetectAnomalies(decimal.RequireFromString("145"), both, 0.30, 50)

		// 45% over the 7-day baseline, only ~3.6% over the 28-day one.
		if len(anomalies) != 1 {
			t.Fatalf("len(anomalies) = %d, want 1", len(anomalies))
		}
		if anomalies[0].Period != "7_day" {
			t.Errorf("period = %s, want 7_day", anomalies[0].Period)
		}
	})

	t.Run("percentage rounded to two places", func(t *testing.T) {
		odd := []domain.KPIBaseline{revenueBaseline(7, "3")}

		anomalies := DetectAnomalies(decimal.RequireFromString("4"), odd, 0.30, 50)
		if len(anomalies) != 1 {
			t.Fatalf("len(anomalies) = %d, want 1", len(anomalies))
		}
		wantDecimal(t, "percentage_change", anomalies[0].PercentageChange, "33.33")
	})
}
