package main

import (
	"context"
	"os"

	"chatapp/config"
	"chatapp/internal/metrics"
	"chatapp/internal/server"
	"chatapp/internal/websocket"
	"chatapp/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	appLogger := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(appLogger)

	if err := run(cfg, appLogger); err != nil {
		appLogger.Errorf("relay exited: %v", err)
		appLogger.Sync()
		os.Exit(1)
	}
	appLogger.Sync()
}

func run(cfg *config.Config, appLogger *logger.Logger) error {
	events := metrics.NewRequests("http_requests_total", "Total relay events")
	metricsServer := metrics.NewServer(cfg.RealtimeMetricsPort, events, appLogger.Named("metrics"))
	metricsServer.Start()

	wsLogger := websocket.NewLogger(appLogger)
	hub := websocket.NewHub(wsLogger, events)

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go hub.Run(hubCtx)

	srv := server.New(cfg, cfg.RealtimePort, appLogger)
	srv.SetupRealtimeRoutes(websocket.NewHandler(hub, cfg.CORSOrigins, wsLogger))
	srv.OnShutdown(metricsServer.Shutdown)
	srv.OnShutdown(func(ctx context.Context) error {
		stopHub()
		select {
		case <-hub.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	return srv.Start()
}
