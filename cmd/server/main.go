package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aldisetiana/posdash/backend-go/internal/api"
	"github.com/aldisetiana/posdash/backend-go/internal/cache"
	"github.com/aldisetiana/posdash/backend-go/internal/config"
	"github.com/aldisetiana/posdash/backend-go/internal/report"
	"github.com/aldisetiana/posdash/backend-go/internal/repository/postgres"
	"github.com/aldisetiana/posdash/backend-go/internal/service"
	"github.com/aldisetiana/posdash/backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("report cache unavailable, continuing without cache")
		reportCache = cache.NewNoopReportCache()
	}

	reportService := service.NewReportService(
		postgres.NewTransactionRepository(db),
		postgres.NewInventoryRepository(db),
		postgres.NewBaselineRepository(db),
		postgres.NewReportRepository(db),
		reportCache,
		report.Config{
			LowStockThreshold:   cfg.Report.LowStockThreshold,
			AnomalyThreshold:    cfg.Report.AnomalyThreshold,
			HighSeverityPercent: cfg.Report.HighSeverityPercent,
			LeaderboardSize:     cfg.Report.LeaderboardSize,
			BaselinePeriods:     cfg.Report.BaselinePeriods,
		},
	)

	router := api.NewRouter(reportService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
