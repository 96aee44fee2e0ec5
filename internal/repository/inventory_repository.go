package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

// InventoryRepository reads current stock snapshots.
type InventoryRepository interface {
	// ListLowStock returns the store's items with quantity_on_hand <= maxQty,
	// ascending by quantity.
	ListLowStock(ctx context.Context, storeID uuid.UUID, maxQty int) ([]domain.StockLevel, error)
}
