package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
	"github.com/aldisetiana/posdash/backend-go/internal/repository"
)

type transactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *DB) repository.TransactionRepository {
	return &transactionRepository{db: db.DB}
}

func (r *transactionRepository) ListDayTransactions(ctx context.Context, storeID uuid.UUID, day time.Time) ([]domain.Transaction, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)

	query := `
        SELECT
            t.id,
            t.store_id,
            t.employee_id,
            COALESCE(e.name, '') AS employee_name,
            COALESCE(e.code, '') AS employee_code,
            t.amount,
            t.type,
            t.created_at
        FROM transactions t
        LEFT JOIN employees e ON t.employee_id = e.id
        WHERE t.store_id = $1
          AND t.created_at BETWEEN $2 AND $3
        ORDER BY t.created_at
    `

	var txns []domain.Transaction
	if err := r.db.SelectContext(ctx, &txns, query, storeID, start, end); err != nil {
		return nil, fmt.Errorf("error listing day transactions: %w", err)
	}

	log.Debug().
		Str("store_id", storeID.String()).
		Str("day", start.Format("2006-01-02")).
		Int("rows", len(txns)).
		Msg("transactions: day rows fetched")

	return txns, nil
}

func (r *transactionRepository) SumSaleAmount(ctx context.Context, storeID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE store_id = $1
          AND type = $2
          AND created_at >= $3
          AND created_at < $4
    `

	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, storeID, domain.TransactionTypeSale, from, to); err != nil {
		return decimal.Zero, fmt.Errorf("error summing sale amounts: %w", err)
	}

	return total, nil
}
