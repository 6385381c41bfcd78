package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"chatapp/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Requests counts handled API calls or realtime events.
type Requests struct {
	registry *prometheus.Registry
	counter  prometheus.Counter
}

// NewRequests registers a fresh counter on its own registry.
func NewRequests(name, help string) *Requests {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: name,
		Help: help,
	})
	registry.MustRegister(counter)
	return &Requests{registry: registry, counter: counter}
}

func (r *Requests) Inc() {
	r.counter.Inc()
}

// Collector exposes the counter for inspection.
func (r *Requests) Collector() prometheus.Counter {
	return r.counter
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Requests) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Server is the standalone scrape endpoint.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(port string, requests *Requests, l *logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", requests.Handler())
	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: l,
	}
}

// Start binds the metrics port in the background. A bind failure is logged, never fatal.
func (s *Server) Start() {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.logger.Warnf("Could not start metrics server on %s: %v", s.httpServer.Addr, err)
		return
	}
	s.logger.Infof("Metrics server started on %s", ln.Addr())
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("Metrics server stopped: %v", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
