// Package api exposes the pipeline, job and application services over HTTP
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/events"
)

// Server is the HTTP front end
type Server struct {
	app    *app.App
	broker *events.Broker
	cfg    config.ServerConfig
	engine *gin.Engine
}

// NewServer builds the router. broker may be nil, which disables the event stream.
func NewServer(a *app.App, broker *events.Broker, cfg config.ServerConfig) *Server {
	s := &Server{app: a, broker: broker, cfg: cfg}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors.New(corsConfig(cfg.AllowedOrigins)))
	s.routes(r)

	s.engine = r
	return s
}

// Handler returns the router for use with httptest or a custom http.Server
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(r *gin.Engine) {
	h := &handlers{app: s.app, broker: s.broker}

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/metrics", h.metrics)

		// Public: candidates apply without an organization header
		api.POST("/jobs/:jobId/apply", h.apply)

		tenant := api.Group("", requireOrg())
		tenant.POST("/jobs", h.createJob)
		tenant.GET("/jobs", h.listJobs)
		tenant.GET("/jobs/:jobId", h.getJob)
		tenant.POST("/jobs/:jobId/publish", h.publishJob)
		tenant.POST("/jobs/:jobId/close", h.closeJob)
		tenant.GET("/jobs/:jobId/pipeline", h.getPipeline)
		tenant.GET("/jobs/:jobId/pipeline-columns", h.getPipelineColumns)
		tenant.GET("/jobs/:jobId/events", h.streamEvents)
		tenant.PATCH("/job-candidates/:id/stage", h.moveJobCandidate)
		tenant.GET("/organization/pipeline-columns", h.getOrganizationColumns)
	}
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on an existing listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("http server shutting down", "timeout", timeout)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", orgHeader}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
