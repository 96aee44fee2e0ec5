package report

import (
	"sort"

	"github.com/google/uuid"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

// BuildLeaderboard accumulates per-employee sale totals for the day and
// returns the top entries ranked by total sales descending. Only "sale"
// transactions count; rows without an employee are skipped. Accumulation is
// insertion-ordered and the sort is stable, so ties keep the order in which
// employees first appeared.
func BuildLeaderboard(txns []domain.Transaction, size int) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0)
	index := make(map[uuid.UUID]int)

	for _, t := range txns {
		if t.Type != domain.TransactionTypeSale || t.EmployeeID == nil {
			continue
		}

		i, ok := index[*t.EmployeeID]
		if !ok {
			i = len(entries)
			index[*t.EmployeeID] = i
			entries = append(entries, domain.LeaderboardEntry{
				EmployeeID: *t.EmployeeID,
				Name:       t.EmployeeName,
				Code:       t.EmployeeCode,
			})
		}

		entries[i].TotalSales = entries[i].TotalSales.Add(t.Amount)
		entries[i].TransactionCount++
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].TotalSales.GreaterThan(entries[b].TotalSales)
	})

	if size > 0 && len(entries) > size {
		entries = entries[:size]
	}

	return entries
}
