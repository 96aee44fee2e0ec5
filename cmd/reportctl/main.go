package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/aldisetiana/posdash/backend-go/internal/cache"
	"github.com/aldisetiana/posdash/backend-go/internal/report"
	"github.com/aldisetiana/posdash/backend-go/internal/repository/postgres"
	"github.com/aldisetiana/posdash/backend-go/internal/service"
	"github.com/aldisetiana/posdash/backend-go/pkg/logger"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "reportctl",
		Usage: "Operational tooling for the POS daily report service",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Run the daily report pipeline for one store and print the result",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:     "store",
						Usage:    "Store id (uuid)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Report date (YYYY-MM-DD), defaults to the current UTC day",
					},
				},
				Action: runGenerate,
			},
			{
				Name:  "seed",
				Usage: "Insert demo employees, transactions and stock levels for a store",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:  "store",
						Usage: "Store id (uuid); a fresh one is generated when omitted",
					},
				},
				Action: runSeed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("reportctl failed")
	}
}

func runGenerate(c *cli.Context) error {
	storeID, err := uuid.Parse(c.String("store"))
	if err != nil {
		return fmt.Errorf("invalid store id: %w", err)
	}

	day := time.Now().UTC()
	if dateStr := c.String("date"); dateStr != "" {
		day, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	}

	db, err := postgres.NewDBFromURL("pgx", c.String("db-url"))
	if err != nil {
		return err
	}
	defer db.Close()

	reportService := service.NewReportService(
		postgres.NewTransactionRepository(db),
		postgres.NewInventoryRepository(db),
		postgres.NewBaselineRepository(db),
		postgres.NewReportRepository(db),
		cache.NewNoopReportCache(),
		report.DefaultConfig(),
	)

	generated, err := reportService.GenerateDaily(c.Context, storeID, day)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(generated, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
