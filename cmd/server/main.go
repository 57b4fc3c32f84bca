// Package main initializes and starts the FairTrack HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, handlers, and routing.
package main

import (
	"cmp"
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/foodfairhq/fairtrack/internal/config"
	"github.com/foodfairhq/fairtrack/internal/db"
	"github.com/foodfairhq/fairtrack/internal/logger"
	"github.com/foodfairhq/fairtrack/internal/repository"
	"github.com/foodfairhq/fairtrack/internal/server/handler/http"
	"github.com/foodfairhq/fairtrack/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Load a local .env if present, then parse configuration.
	_ = godotenv.Load()
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer func() { _ = postgresDB.Close() }()

	// Initialize repositories for the four collections and the report.
	itemRepo := repository.NewPostgresItemRepository(postgresDB)
	saleRepo := repository.NewPostgresSaleRepository(postgresDB)
	costRepo := repository.NewPostgresCostRepository(postgresDB)
	placeRepo := repository.NewPostgresPlaceRepository(postgresDB)
	reportRepo := repository.NewPostgresReportRepository(postgresDB)

	// Initialize business-logic services.
	tokenService := service.NewTokenService(options.TokenSecret)
	itemService := service.NewItemService(itemRepo)
	saleService := service.NewSaleService(saleRepo)
	costService := service.NewCostService(costRepo)
	placeService := service.NewPlaceService(placeRepo)
	reportService := service.NewReportService(reportRepo)

	// Create HTTP handlers for each endpoint group.
	tokenHandler := &http.TokenHandler{TokenService: tokenService}
	itemHandler := &http.ItemHandler{ItemService: itemService}
	saleHandler := &http.SaleHandler{SaleService: saleService}
	costHandler := &http.CostHandler{CostService: costService}
	placeHandler := &http.PlaceHandler{PlaceService: placeService}
	reportHandler := &http.ReportHandler{ReportService: reportService}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		tokenHandler,
		itemHandler,
		saleHandler,
		costHandler,
		placeHandler,
		reportHandler,
		zapLogger,
		http.RouterConfig{
			CORSOrigin:  options.CORSOrigin,
			RequireAuth: options.RequireAuth,
			Verifier:    tokenService,
		},
	)

	server := &nethttp.Server{
		Addr:         options.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Stop on SIGINT/SIGTERM and drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
