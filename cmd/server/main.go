package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/nesteggapp/nestegg/internal/adapter/http"
	"github.com/nesteggapp/nestegg/internal/adapter/http/handler"
	postgresRepo "github.com/nesteggapp/nestegg/internal/adapter/repository/postgres"
	redisRepo "github.com/nesteggapp/nestegg/internal/adapter/repository/redis"
	"github.com/nesteggapp/nestegg/internal/infrastructure/config"
	"github.com/nesteggapp/nestegg/internal/infrastructure/logger"
	"github.com/nesteggapp/nestegg/internal/infrastructure/metrics"
	"github.com/nesteggapp/nestegg/internal/infrastructure/postgres"
	"github.com/nesteggapp/nestegg/internal/infrastructure/redis"
	"github.com/nesteggapp/nestegg/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	retrier := postgresRepo.NewRetrier()
	entryRepo := postgresRepo.NewEntryRepository(pool)
	snapshotRepo := postgresRepo.NewSnapshotRepository(pool, retrier)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	summaryCache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	appMetrics := metrics.New()

	// Initialize use cases
	entryUC := usecase.NewEntryUseCase(entryRepo, accountRepo, categoryRepo, idGen, appMetrics)
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen)
	snapshotUC := usecase.NewSnapshotUseCase(snapshotRepo, accountRepo, idGen, appMetrics)
	summaryUC := usecase.NewSummaryUseCase(
		entryRepo, snapshotRepo, accountRepo, categoryRepo,
		summaryCache, cfg.SummaryCacheTTL, appMetrics, log.Logger,
	)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SummaryHandler:  handler.NewSummaryHandler(summaryUC),
		EntryHandler:    handler.NewEntryHandler(entryUC),
		AccountHandler:  handler.NewAccountHandler(accountUC),
		CategoryHandler: handler.NewCategoryHandler(categoryUC),
		SnapshotHandler: handler.NewSnapshotHandler(snapshotUC),
		HealthHandler:   handler.NewHealthHandler(pool, redisClient),
		Logger:          log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
