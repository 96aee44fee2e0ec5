package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/aldisetiana/posdash/backend-go/pkg/logger"
)

var seedEmployees = []struct {
	name string
	code string
}{
	{"Ann Halim", "EMP-001"},
	{"Budi Santoso", "EMP-002"},
	{"Citra Dewi", "EMP-003"},
	{"Dian Lestari", "EMP-004"},
}

var seedItems = []struct {
	sku      string
	name     string
	category string
	qty      int
}{
	{"SKU-1001", "Espresso Beans 1kg", "coffee", 0},
	{"SKU-1002", "Oat Milk 1L", "dairy", 3},
	{"SKU-1003", "Paper Cups 12oz", "supplies", 4},
	{"SKU-1004", "Cold Brew Bottle", "coffee", 42},
}

// runSeed inserts ~30 days of demo transactions plus stock levels so a fresh
// database has something for the report pipeline to chew on.
func runSeed(c *cli.Context) error {
	storeID := uuid.New()
	if s := c.String("store"); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid store id: %w", err)
		}
		storeID = parsed
	}

	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	employeeIDs := make([]uuid.UUID, 0, len(seedEmployees))
	for _, e := range seedEmployees {
		id := uuid.New()
		if _, err := db.ExecContext(c.Context, `
            INSERT INTO employees (id, store_id, name, code, created_at)
            VALUES ($1, $2, $3, $4, NOW())
        `, id, storeID, e.name, e.code); err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e.code, err)
		}
		employeeIDs = append(employeeIDs, id)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	var txnCount int

	for daysAgo := 30; daysAgo >= 0; daysAgo-- {
		day := now.AddDate(0, 0, -daysAgo)
		sales := 8 + rng.Intn(12)

		for i := 0; i < sales; i++ {
			emp := employeeIDs[rng.Intn(len(employeeIDs))]
			amount := 5 + rng.Float64()*95
			at := time.Date(day.Year(), day.Month(), day.Day(), 8+rng.Intn(12), rng.Intn(60), rng.Intn(60), 0, time.UTC)

			txType := "sale"
			if rng.Intn(10) == 0 {
				txType = "refund"
			}

			if _, err := db.ExecContext(c.Context, `
                INSERT INTO transactions (id, store_id, employee_id, amount, type, created_at)
                VALUES ($1, $2, $3, $4, $5, $6)
            `, uuid.New(), storeID, emp, fmt.Sprintf("%.2f", amount), txType, at); err != nil {
				return fmt.Errorf("failed to insert transaction: %w", err)
			}
			txnCount++
		}
	}

	for _, item := range seedItems {
		if _, err := db.ExecContext(c.Context, `
            INSERT INTO items (sku, name, category)
            VALUES ($1, $2, $3)
            ON CONFLICT (sku) DO NOTHING
        `, item.sku, item.name, item.category); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.sku, err)
		}

		if _, err := db.ExecContext(c.Context, `
            INSERT INTO stock_levels (store_id, sku, quantity_on_hand, updated_at)
            VALUES ($1, $2, $3, NOW())
            ON CONFLICT (store_id, sku)
            DO UPDATE SET quantity_on_hand = EXCLUDED.quantity_on_hand, updated_at = NOW()
        `, storeID, item.sku, item.qty); err != nil {
			return fmt.Errorf("failed to insert stock level %s: %w", item.sku, err)
		}
	}

	logger.Log.Info().
		Str("store_id", storeID.String()).
		Int("employees", len(seedEmployees)).
		Int("transactions", txnCount).
		Int("stock_levels", len(seedItems)).
		Msg("seed data inserted")

	return nil
}
