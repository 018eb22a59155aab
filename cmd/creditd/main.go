package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pkgkafka "github.com/meridianbank/credit-origination/pkg/kafka"
	"github.com/meridianbank/credit-origination/pkg/observability"
	pkgpostgres "github.com/meridianbank/credit-origination/pkg/postgres"

	"github.com/meridianbank/credit-origination/internal/application/usecase"
	"github.com/meridianbank/credit-origination/internal/domain/fraud"
	"github.com/meridianbank/credit-origination/internal/domain/service"
	"github.com/meridianbank/credit-origination/internal/infrastructure/adapter"
	"github.com/meridianbank/credit-origination/internal/infrastructure/cache"
	"github.com/meridianbank/credit-origination/internal/infrastructure/config"
	"github.com/meridianbank/credit-origination/internal/infrastructure/messaging"
	pgRepo "github.com/meridianbank/credit-origination/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/meridianbank/credit-origination/internal/presentation/grpc"
	"github.com/meridianbank/credit-origination/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   "info",
		Format:  "json",
		Service: cfg.ServiceName,
	})

	logger.Info("starting credit-origination",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without them", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Redis backs the fraud engine's seen-IP memory.
	redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.Redis.Addr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close() //nolint:errcheck
	logger.Info("connected to redis")

	// Wire infrastructure adapters.
	appRepo := pgRepo.NewApplicationRepo(pool)
	transitionRepo := pgRepo.NewTransitionLogRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close() //nolint:errcheck
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)
	signals := adapter.NewStubProfileSource()
	ipStore := cache.NewRedisSeenIPStore(redisClient, cfg.Redis.SeenIPTTL)

	// Domain services.
	scorer := service.NewScoringEngine()
	approver := service.NewApprovalEngine()
	fraudEngine := fraud.NewEngine(ipStore,
		fraud.NewUnusualLocationRule(),
		fraud.NewIPNoveltyRule(ipStore),
		fraud.NewLargeAmountRule(),
	)

	// Wire use cases.
	evaluateUC := usecase.NewEvaluateApplicationUseCase(appRepo, transitionRepo, signals, publisher, scorer, approver)
	scoreUC := usecase.NewScoreCustomerUseCase(appRepo, signals, scorer)
	updateStatusUC := usecase.NewUpdateStatusUseCase(appRepo, transitionRepo, publisher)
	stageHistoryUC := usecase.NewStageHistoryUseCase(appRepo, transitionRepo)
	staleUC := usecase.NewStaleApplicationsUseCase(appRepo)
	processingUC := usecase.NewProcessingTimeUseCase(appRepo)
	refinanceUC := usecase.NewRefinanceUseCase(appRepo, transitionRepo, signals, publisher, scorer)
	eligibleUC := usecase.NewFindRefinanceEligibleUseCase(appRepo)
	offerUC := usecase.NewCalculateRefinanceOfferUseCase()
	bankRiskUC := usecase.NewAnalyzeBankRiskUseCase(appRepo, nil)
	appRiskUC := usecase.NewAnalyzeApplicationRiskUseCase(appRepo)
	screenTxUC := usecase.NewEvaluateTransactionUseCase(fraudEngine)

	// gRPC server.
	handler := grpcPresentation.NewCreditHandler(
		evaluateUC, scoreUC, updateStatusUC, stageHistoryUC,
		staleUC, processingUC, refinanceUC, eligibleUC, offerUC,
		bankRiskUC, appRiskUC, screenTxUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, func() error {
		return pkgpostgres.HealthCheck(ctx, pool)
	})
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-origination stopped")
}
