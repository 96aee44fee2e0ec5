package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

var testDay = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func saleTxn(emp *uuid.UUID, amount string) domain.Transaction {
	return domain.Transaction{
		ID:         uuid.New(),
		EmployeeID: emp,
		Amount:     decimal.RequireFromString(amount),
		Type:       domain.TransactionTypeSale,
		CreatedAt:  testDay.Add(10 * time.Hour),
	}
}

func refundTxn(emp *uuid.UUID, amount string) domain.Transaction {
	t := saleTxn(emp, amount)
	t.Type = domain.TransactionTypeRefund
	return t
}

func wantDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func TestBuildScorecard(t *testing.T) {
	empA := uuid.New()
	empB := uuid.New()

	t.Run("mixed day of sales and refunds", func(t *testing.T) {
		txns := []domain.Transaction{
			saleTxn(&empA, "100"),
			saleTxn(&empA, "200"),
			saleTxn(&empB, "50"),
			refundTxn(nil, "30"),
		}

		sc := BuildScorecard(testDay, txns)

		wantDecimal(t, "total_revenue", sc.TotalRevenue, "350")
		wantDecimal(t, "total_refunds", sc.TotalRefunds, "30")
		wantDecimal(t, "net_revenue", sc.NetRevenue, "320")
		wantDecimal(t, "average_ticket", sc.AverageTicket, "116.67")
		if sc.TransactionCount != 3 {
			t.Errorf("transaction_count = %d, want 3", sc.TransactionCount)
		}
		if sc.ActiveEmployeeCount != 2 {
			t.Errorf("active_employee_count = %d, want 2", sc.ActiveEmployeeCount)
		}
		if sc.Date != "2025-06-15" {
			t.Errorf("date = %q, want 2025-06-15", sc.Date)
		}
	})

	t.Run("empty day has zero average ticket", func(t *testing.T) {
		sc := BuildScorecard(testDay, nil)

		if sc.TransactionCount != 0 {
			t.Errorf("transaction_count = %d, want 0", sc.TransactionCount)
		}
		wantDecimal(t, "average_ticket", sc.AverageTicket, "0")
		wantDecimal(t, "net_revenue", sc.NetRevenue, "0")
	})

	t.Run("refund-only day still counts its employee", func(t *testing.T) {
		sc := BuildScorecard(testDay, []domain.Transaction{refundTxn(&empA, "25")})

		wantDecimal(t, "total_revenue", sc.TotalRevenue, "0")
		wantDecimal(t, "total_refunds", sc.TotalRefunds, "25")
		wantDecimal(t, "net_revenue", sc.NetRevenue, "-25")
		wantDecimal(t, "average_ticket", sc.AverageTicket, "0")
		if sc.ActiveEmployeeCount != 1 {
			t.Errorf("active_employee_count = %d, want 1", sc.ActiveEmployeeCount)
		}
	})

	t.Run("net revenue is always revenue minus refunds", func(t *testing.T) {
		txns := []domain.Transaction{
			saleTxn(&empA, "10.50"),
			saleTxn(&empB, "0.25"),
			refundTxn(&empA, "3.75"),
		}

		sc := BuildScorecard(testDay, txns)
		if !sc.NetRevenue.Equal(sc.TotalRevenue.Sub(sc.TotalRefunds)) {
			t.Errorf("net_revenue %s != total_revenue %s - total_refunds %s",
				sc.NetRevenue, sc.TotalRevenue, sc.TotalRefunds)
		}
	})
}
