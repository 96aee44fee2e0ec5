package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
	"github.com/aldisetiana/posdash/backend-go/internal/repository"
)

type inventoryRepository struct {
	db *sqlx.DB
}

func NewInventoryRepository(db *DB) repository.InventoryRepository {
	return &inventoryRepository{db: db.DB}
}

func (r *inventoryRepository) ListLowStock(ctx context.Context, storeID uuid.UUID, maxQty int) ([]domain.StockLevel, error) {
	query := `
        SELECT
            s.store_id,
            s.sku,
            COALESCE(i.name, '') AS name,
            COALESCE(i.category, '') AS category,
            s.quantity_on_hand,
            s.updated_at
        FROM stock_levels s
        LEFT JOIN items i ON s.sku = i.sku
        WHERE s.store_id = $1
          AND s.quantity_on_hand <= $2
        ORDER BY s.quantity_on_hand ASC
    `

	var levels []domain.StockLevel
	if err := r.db.SelectContext(ctx, &levels, query, storeID, maxQty); err != nil {
		return nil, fmt.Errorf("error listing low stock items: %w", err)
	}

	return levels, nil
}
