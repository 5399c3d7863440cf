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

	"github.com/rs/zerolog/log"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/api"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/simulation"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/infra/cache"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/infra/database/postgres"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/config"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/logger"
	kepcosvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/kepco"
	profitsvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/profit"
)

const (
	serviceName    = "jssolar-calc-api"
	serviceVersion = "1.0.0"
)

func main() {
	// Set timezone to Asia/Seoul (KST)
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load timezone")
	}
	time.Local = loc

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().
		Str("version", serviceVersion).
		Msg("🚀 Starting JSSolar calculator API Server...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := api.Dependencies{Version: serviceVersion}

	// Simulation storage (optional)
	var repo simulation.Repository
	if cfg.Database.Enabled {
		dbPool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer dbPool.Close()

		simRepo := postgres.NewSimulationRepository(dbPool)
		if err := simRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare simulation schema")
		}

		repo = simRepo
		deps.DBPool = dbPool
		deps.Simulations = simRepo
	} else {
		log.Info().Msg("Database disabled, simulations will not be stored")
	}

	// Result cache: Redis, falling back to in-memory
	memoryCache := cache.NewMemoryCache()
	var resultCache profitsvc.ResultCache = memoryCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️  Redis unavailable, using in-memory cache")
		} else {
			defer redisCache.Close()
			resultCache = redisCache
			deps.Cache = redisCache
		}
	}

	tariff, err := kepcosvc.LoadTariff(cfg.Simulation.TariffFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Simulation.TariffFile).Msg("Failed to load KEPCO tariff")
	}
	log.Info().Str("version", tariff.Version).Msg("✅ KEPCO tariff loaded")

	deps.ProfitService = profitsvc.NewService(profitsvc.AssumptionsFromConfig(cfg.Simulation), resultCache, repo, cfg.Simulation.CacheTTL)
	deps.KepcoService = kepcosvc.NewService(kepcosvc.NewCalculator(tariff), repo)

	router := api.NewRouter(cfg, deps)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("address", addr).
			Msg("🎯 API Server listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("🛑 Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	if hits, misses, size := memoryCache.Stats(); hits+misses > 0 {
		log.Info().
			Int64("hits", hits).
			Int64("misses", misses).
			Int("entries", size).
			Msg("In-memory result cache stats")
	}

	log.Info().Msg("👋 JSSolar calculator API Server stopped")
}
