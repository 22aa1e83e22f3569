package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/wonny/govdash/pkg/config"
	"github.com/wonny/govdash/pkg/logger"
)

// Server represents an HTTP server with graceful shutdown
// ⭐ SSOT: API 서버 설정은 이 파일에서만
type Server struct {
	name       string
	httpServer *http.Server
	logger     *logger.Logger
	config     *config.Config
}

// New creates the dashboard server listening on PORT
func New(cfg *config.Config, log *logger.Logger, router http.Handler) *Server {
	return newServer("api", ":"+cfg.Port, cfg, log, router)
}

// NewMetricsServer creates the /metrics server listening on METRICS_PORT
func NewMetricsServer(cfg *config.Config, log *logger.Logger, m *Metrics) *Server {
	routes := http.NewServeMux()
	routes.Handle("/metrics", m.Handler())
	return newServer("metrics", ":"+cfg.MetricsPort, cfg, log, routes)
}

func newServer(name, addr string, cfg *config.Config, log *logger.Logger, handler http.Handler) *Server {
	return &Server{
		name: name,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: log.Component(name),
		config: cfg,
	}
}

// Addr is the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln; http.ErrServerClosed counts as a clean stop
func (s *Server) Serve(ln net.Listener) error {
	s.logger.WithFields(map[string]interface{}{
		"addr": ln.Addr().String(),
		"env":  s.config.Env,
	}).Info("Starting server")

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
