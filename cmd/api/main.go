package main

import (
	"context"
	"fmt"
	"os"

	"chatapp/config"
	"chatapp/internal/handler"
	"chatapp/internal/metrics"
	"chatapp/internal/redis"
	"chatapp/internal/repository"
	"chatapp/internal/server"
	"chatapp/internal/services"
	"chatapp/pkg/database"
	"chatapp/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	appLogger := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(appLogger)

	if err := run(cfg, appLogger); err != nil {
		appLogger.Errorf("api exited: %v", err)
		appLogger.Sync()
		os.Exit(1)
	}
	appLogger.Sync()
}

func run(cfg *config.Config, appLogger *logger.Logger) error {
	ctx := context.Background()

	// Connect to Database
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// The cache is probed once; a dead Redis means no caching for the process lifetime.
	cache := services.CacheOrNoop(ctx, services.RedisCacheOpener(
		redis.Config{URL: cfg.RedisURL},
		redis.CacheConfig{KeyPrefix: cfg.CacheKeyPrefix, MessageTTL: cfg.CacheTTL},
	), appLogger.Named("cache"))

	requests := metrics.NewRequests("app_requests_total", "Total HTTP requests")
	metricsServer := metrics.NewServer(cfg.APIMetricsPort, requests, appLogger.Named("metrics"))
	metricsServer.Start()

	messageRepo := repository.NewMessageRepository(db.DB, db.Dialect)
	messageService := services.NewMessageService(messageRepo, cache, appLogger.Named("messages"))

	handlers := &server.Handlers{
		Message: handler.NewMessageHandler(messageService),
		Health:  handler.NewHealthHandler(db, messageService.CacheEnabled),
	}

	srv := server.New(cfg, cfg.AppPort, appLogger)
	srv.SetupAPIRoutes(handlers, requests)
	srv.OnShutdown(metricsServer.Shutdown)
	if closer, ok := cache.(interface{ Close() error }); ok {
		srv.OnShutdown(func(context.Context) error { return closer.Close() })
	}

	return srv.Start()
}
