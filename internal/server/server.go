package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatapp/config"
	"chatapp/internal/handler"
	"chatapp/internal/metrics"
	"chatapp/internal/middleware"
	"chatapp/internal/websocket"
	"chatapp/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
	port       string
	onShutdown []func(context.Context) error
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Message *handler.MessageHandler
	Health  *handler.HealthHandler
}

func New(cfg *config.Config, port string, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
		port:   port,
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// OnShutdown registers fn to run after the HTTP server has drained.
func (s *Server) OnShutdown(fn func(context.Context) error) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) useCommon() {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSOrigins))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))
}

// SetupAPIRoutes wires the persistence API. requests counts every /message call.
func (s *Server) SetupAPIRoutes(handlers *Handlers, requests *metrics.Requests) {
	s.useCommon()

	s.engine.GET("/ping", handlers.Health.Ping)
	s.engine.GET("/health", handlers.Health.Health)

	messages := s.engine.Group("/message", middleware.MetricsMiddleware(requests))
	{
		messages.GET("", handlers.Message.List)
		messages.POST("", handlers.Message.Create)
	}
}

// SetupRealtimeRoutes wires the relay's upgrade endpoint.
func (s *Server) SetupRealtimeRoutes(ws *websocket.Handler) {
	s.useCommon()

	s.engine.GET("/ws", ws.Connect)
	s.engine.GET("/health", ws.Health)
}

// Start serves until SIGINT/SIGTERM or until the listener fails, then shuts down.
func (s *Server) Start() error {
	listenErr := make(chan error, 1)
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.port)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.port)
	}

	select {
	case err := <-listenErr:
		if s.logger != nil {
			s.logger.Errorf("Error in starting the server: %s", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		s.runShutdownHooks(ctx)
		return fmt.Errorf("listen on :%s: %w", s.port, err)
	case <-quit:
	}

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return s.Shutdown(ctx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	s.runShutdownHooks(ctx)

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}

func (s *Server) runShutdownHooks(ctx context.Context) {
	for _, fn := range s.onShutdown {
		if err := fn(ctx); err != nil && s.logger != nil {
			s.logger.Errorf("shutdown hook failed: %s", err)
		}
	}
}
