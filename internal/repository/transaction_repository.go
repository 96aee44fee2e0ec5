package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

// TransactionRepository is the read-only view over recorded POS transactions.
type TransactionRepository interface {
	// ListDayTransactions returns every transaction (all types) for the store
	// whose timestamp falls within the UTC calendar day, with employee
	// identity joined in.
	ListDayTransactions(ctx context.Context, storeID uuid.UUID, day time.Time) ([]domain.Transaction, error)

	// SumSaleAmount returns the total "sale" amount in [from, to).
	SumSaleAmount(ctx context.Context, storeID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}
