package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

// BuildScorecard aggregates one day's transactions into the daily scorecard.
// Pure aggregation, no side effects.
func BuildScorecard(day time.Time, txns []domain.Transaction) domain.DailyScorecard {
	var (
		totalRevenue = decimal.Zero
		totalRefunds = decimal.Zero
		saleCount    int
	)

	employees := make(map[uuid.UUID]struct{})

	for _, t := range txns {
		switch t.Type {
		case domain.TransactionTypeSale:
			totalRevenue = totalRevenue.Add(t.Amount)
			saleCount++
		case domain.TransactionTypeRefund:
			totalRefunds = totalRefunds.Add(t.Amount)
		}

		if t.EmployeeID != nil {
			employees[*t.EmployeeID] = struct{}{}
		}
	}

	averageTicket := decimal.Zero
	if saleCount > 0 {
		averageTicket = totalRevenue.DivRound(decimal.NewFromInt(int64(saleCount)), 2)
	}

	return domain.DailyScorecard{
		Date:                day.UTC().Format("2006-01-02"),
		TotalRevenue:        totalRevenue,
		TotalRefunds:        totalRefunds,
		NetRevenue:          totalRevenue.Sub(totalRefunds),
		TransactionCount:    saleCount,
		AverageTicket:       averageTicket,
		ActiveEmployeeCount: len(employees),
	}
}
