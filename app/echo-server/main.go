package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myDiverseMarket/app/echo-server/router"
	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/internal/middleware"
	"myDiverseMarket/internal/repository/breaker"
	"myDiverseMarket/internal/repository/memory"
	psqlRepo "myDiverseMarket/internal/repository/postgres"
	redisRepo "myDiverseMarket/internal/repository/redis"
	"myDiverseMarket/internal/rest"
	"myDiverseMarket/pkg/config"
	"myDiverseMarket/pkg/database"
	redisdb "myDiverseMarket/pkg/database/redis"
	"myDiverseMarket/pkg/logger"
	"myDiverseMarket/pkg/metrics"
	"myDiverseMarket/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting diverse recommendation service", "version", cfg.App.Version)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory cache", "error", err)
			redisClient = nil
		} else {
			logger.Info("Redis connected successfully")
		}
	}

	// Init repo
	candidateRepo := psqlRepo.NewCandidateRepository(db)
	diversityCfgRepo := psqlRepo.NewDiversityConfigRepository(db)
	eventRepo := psqlRepo.NewRecommendationEventRepository(db)

	breakerCfg := breaker.DefaultConfig()
	breakerCfg.FailureThreshold = uint32(cfg.Recommendation.BreakerFailures)
	breakerCfg.Timeout = cfg.Recommendation.BreakerTimeout
	candidateSource := breaker.NewCandidateSource(candidateRepo, breakerCfg)

	var (
		resultCache     recommendation.ResultCache
		analyticsReader rest.RecommendationAnalyticsReader
		sinks           = []recommendation.AnalyticsSink{eventRepo}
	)
	if redisClient != nil {
		analyticsRepo := redisRepo.NewAnalyticsRepository(redisClient, cfg.Recommendation.AnalyticsTTL)
		resultCache = redisRepo.NewResultCache(redisClient)
		analyticsReader = analyticsRepo
		sinks = append(sinks, analyticsRepo)
	} else {
		resultCache = memory.NewResultCache(cfg.Recommendation.MemoryCacheSize, cfg.Recommendation.CacheTTL)
	}

	// Init service
	recoCfg := recommendation.DefaultConfig()
	recoCfg.CacheTTL = cfg.Recommendation.CacheTTL
	recoCfg.Oversample = cfg.Recommendation.Oversample
	recoCfg.DefaultLimit = cfg.Recommendation.DefaultLimit
	recoCfg.MaxLimit = cfg.Recommendation.MaxLimit
	recoCfg.AnalyticsTimeout = cfg.Recommendation.AnalyticsTimeout
	recoCfg.Options.MinCategories = cfg.Recommendation.MinCategories

	recoService := recommendation.NewService(candidateSource, resultCache, diversityCfgRepo, recoCfg, sinks...)

	// Init handler
	recoHandler := rest.NewDiverseRecommendationHandler(recoService)
	adminHandler := rest.NewDiversityAdminHandler(diversityCfgRepo, analyticsReader)

	healthChecks := map[string]rest.HealthCheck{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"candidate_breaker": func(context.Context) error {
			if state := candidateSource.State(); state == "open" {
				return fmt.Errorf("circuit %s", state)
			}
			return nil
		},
	}
	if redisClient != nil {
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	healthHandler := rest.NewHealthHandler(healthChecks)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderRequestID, rest.HeaderRegion},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetDiverseRecommendationRoutes(api, recoHandler)
	router.SetDiversityAdminRoutes(api, adminHandler)
	router.SetOpsRoutes(e, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	// Let in-flight analytics writes finish before closing their stores
	recoService.Wait()

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
