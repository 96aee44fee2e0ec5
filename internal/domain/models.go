package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types as recorded by the POS terminals.
const (
	TransactionTypeSale   = "sale"
	TransactionTypeRefund = "refund"
)

// Transaction is a single POS transaction row. Immutable once recorded;
// the report job only reads them.
type Transaction struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	StoreID      uuid.UUID       `json:"store_id" db:"store_id"`
	EmployeeID   *uuid.UUID      `json:"employee_id" db:"employee_id"`
	EmployeeName string          `json:"employee_name" db:"employee_name"`
	EmployeeCode string          `json:"employee_code" db:"employee_code"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Type         string          `json:"type" db:"type"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// StockLevel is the current on-hand snapshot for one item in one store.
type StockLevel struct {
	StoreID        uuid.UUID `json:"store_id" db:"store_id"`
	SKU            string    `json:"sku" db:"sku"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"category" db:"category"`
	QuantityOnHand int       `json:"quantity_on_hand" db:"quantity_on_hand"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
