package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	ledgerapp "github.com/bukubiz/backend/internal/application/ledger"
	"github.com/bukubiz/backend/internal/infrastructure/config"
	"github.com/bukubiz/backend/internal/infrastructure/logger"
	"github.com/bukubiz/backend/internal/infrastructure/persistence"
	"github.com/bukubiz/backend/internal/interfaces/http/handler"
	"github.com/bukubiz/backend/internal/interfaces/http/router"
)

const version = "0.3.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	businessRepo := persistence.NewGormBusinessRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)

	balanceService := ledgerapp.NewBalanceService(businessRepo, log)
	stockStatusService := ledgerapp.NewStockStatusService(productRepo, log)
	orchestrator := ledgerapp.NewLedgerOrchestrator(transactionRepo, productRepo, businessRepo, balanceService, log)
	queryService := ledgerapp.NewLedgerQueryService(businessRepo, productRepo, transactionRepo)

	ledgerHandler := handler.NewLedgerHandler(orchestrator, queryService, stockStatusService)
	healthHandler := handler.NewHealthHandler(db, version)

	engine := router.New(cfg, log, healthHandler, ledgerHandler).Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
