package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/ledgerexport/internal/adapter/http"
	"github.com/iho/ledgerexport/internal/adapter/http/handler"
	"github.com/iho/ledgerexport/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/ledgerexport/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/ledgerexport/internal/adapter/repository/redis"
	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/auth"
	"github.com/iho/ledgerexport/internal/infrastructure/config"
	"github.com/iho/ledgerexport/internal/infrastructure/logger"
	"github.com/iho/ledgerexport/internal/infrastructure/metrics"
	"github.com/iho/ledgerexport/internal/infrastructure/postgres"
	"github.com/iho/ledgerexport/internal/infrastructure/redis"
	"github.com/iho/ledgerexport/internal/usecase"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	logger.Install(logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "ledgerexport"}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Connect to PostgreSQL read replicas
	replicas, err := postgres.ConnectReplicaSet(ctx, newSelector(cfg.DatabaseReplicaSelection),
		cfg.ReadURLs(), cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer replicas.Close()
	log.Info().Int("replicas", replicas.Len()).Str("selection", cfg.DatabaseReplicaSelection).Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, cfg.DatabaseTimeout)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	changeRepo := postgresRepo.NewBalanceChangeRepository(replicas, cfg.DatabaseTimeout)
	transactionRepo := postgresRepo.NewTransactionRepository(replicas, cfg.DatabaseTimeout)
	profileRepo := postgresRepo.NewProfileRepository(replicas, cfg.DatabaseTimeout)
	profileCache := redisRepo.NewProfileCache(redisClient, cfg.ProfileCacheTTL)

	// Initialize use cases
	retrier := postgresRepo.NewRetrier()
	exportUC := usecase.NewExportUseCase(changeRepo, transactionRepo, m, cfg.ExportBatchSize)
	profileUC := usecase.NewProfileUseCase(profileRepo, profileCache, retrier)
	accountingUC := usecase.NewAccountingUseCase(profileRepo, retrier)
	activityUC := usecase.NewActivityUseCase(transactionRepo, m, cfg.ExportBatchSize)

	// Initialize handlers
	window := domain.WindowDefaults{
		Trailing: cfg.ExportDefaultWindow,
		Lookback: cfg.ExportFallbackLookback,
	}
	exportHandler := handler.NewExportHandler(exportUC, profileUC, m, handler.ExportConfig{
		Window:           window,
		FlushRows:        cfg.ExportFlushRows,
		StatementMaxRows: cfg.StatementMaxRows,
	})
	accountingHandler := handler.NewAccountingHandler(accountingUC, m)
	activityHandler := handler.NewActivityHandler(activityUC, m, window, cfg.ExportFlushRows)
	healthHandler := handler.NewHealthHandler(replicas, handler.PingFunc(func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.ExportRateLimitRPS, cfg.ExportRateLimitBurst)
	go rateLimiter.Run(ctx, time.Hour)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ExportHandler:     exportHandler,
		AccountingHandler: accountingHandler,
		ActivityHandler:   activityHandler,
		HealthHandler:     healthHandler,
		TokenVerifier:     auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration),
		RateLimiter:       rateLimiter,
		Logger:            log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}

// newSelector returns the replica selection strategy named by the config.
func newSelector(name string) postgres.Selector {
	if name == config.ReplicaSelectionRoundRobin {
		return &postgres.RoundRobin{}
	}
	return postgres.Random{}
}
