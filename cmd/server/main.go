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

	httpAdapter "github.com/tuitiontrust/treasury/internal/adapter/http"
	"github.com/tuitiontrust/treasury/internal/adapter/http/handler"
	postgresRepo "github.com/tuitiontrust/treasury/internal/adapter/repository/postgres"
	redisRepo "github.com/tuitiontrust/treasury/internal/adapter/repository/redis"
	"github.com/tuitiontrust/treasury/internal/adapter/xrpl"
	"github.com/tuitiontrust/treasury/internal/infrastructure/config"
	"github.com/tuitiontrust/treasury/internal/infrastructure/metrics"
	"github.com/tuitiontrust/treasury/internal/infrastructure/postgres"
	"github.com/tuitiontrust/treasury/internal/infrastructure/redis"
	"github.com/tuitiontrust/treasury/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize adapters
	ledger := xrpl.NewClient(cfg.XRPLRPCURL, cfg.TreasuryAddress, cfg.TreasurySecret, m, log.Logger)
	donationRepo := postgresRepo.NewDonationRepository(pool, m)
	schoolRepo := postgresRepo.NewSchoolRepository(pool, m)
	cache := redisRepo.NewCache(redisClient, m)
	idGen := postgresRepo.NewULIDGenerator()

	treasuryCfg := usecase.TreasuryConfig{
		Address:              cfg.TreasuryAddress,
		IssuedCurrencyCode:   cfg.IssuedCurrencyCode,
		IssuedCurrencyIssuer: cfg.IssuedCurrencyIssuer,
		ExplorerBaseURL:      cfg.ExplorerBaseURL,
		TxLimit:              cfg.AccountTxLimit,
		DistributionAmount:   cfg.DistributionAmount,
	}

	// Initialize use cases
	syncUC := usecase.NewSyncUseCase(ledger, donationRepo, idGen, treasuryCfg)
	donationUC := usecase.NewDonationUseCase(ledger, donationRepo, treasuryCfg)
	outgoingUC := usecase.NewOutgoingUseCase(ledger, schoolRepo, treasuryCfg)
	balanceUC := usecase.NewBalanceUseCase(ledger, cache, treasuryCfg, log.Logger)
	distributionUC := usecase.NewDistributionUseCase(ledger, schoolRepo, treasuryCfg, log.Logger)
	trustlineUC := usecase.NewTrustlineUseCase(ledger, treasuryCfg)
	seedUC := usecase.NewSeedUseCase(schoolRepo, idGen)

	// Initialize handlers
	donationHandler := handler.NewDonationHandler(donationUC, syncUC, balanceUC, outgoingUC, m)
	transactionHandler := handler.NewTransactionHandler(donationUC)
	distributionHandler := handler.NewDistributionHandler(distributionUC, cfg.DistributionAmount, cfg.EnableDistribution, m)
	trustlineHandler := handler.NewTrustlineHandler(trustlineUC, cfg.EnableTrustlineSetup)
	schoolHandler := handler.NewSchoolHandler(seedUC, cfg.EnableSeedSchools)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DonationHandler:     donationHandler,
		TransactionHandler:  transactionHandler,
		DistributionHandler: distributionHandler,
		TrustlineHandler:    trustlineHandler,
		SchoolHandler:       schoolHandler,
		HealthHandler:       healthHandler,
		DistributionSecret:  cfg.DistributionSecret,
		Logger:              log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("treasury", cfg.TreasuryAddress).Msg("starting server")
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
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
