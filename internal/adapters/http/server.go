// Package http provides the HTTP adapter layer using Gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/secctx/internal/platform/config"
)

// readHeaderTimeout bounds how long a client may take to send the identity
// headers the security context is built from.
const readHeaderTimeout = 5 * time.Second

// Drainer is work fed by request handlers that must be flushed once the
// server has stopped accepting requests, such as the audit queue.
type Drainer interface {
	Name() string
	Close(ctx context.Context) error
}

// Server wraps http.Server with Gin. Shutdown stops the listener first and
// then drains every registered Drainer in order.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	drainers   []Drainer
	logger     *slog.Logger
}

// New creates a new HTTP server with the provided configuration.
func New(cfg *config.ServerConfig, logger *slog.Logger, drainers ...Drainer) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	// Lets handlers pass the *gin.Context itself to security.FromContext.
	engine.ContextWithFallback = true

	engine.Use(maxBodySize(cfg.MaxRequestSize))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return &Server{
		engine:     engine,
		httpServer: httpServer,
		config:     cfg,
		drainers:   drainers,
		logger:     logger,
	}
}

// Engine returns the underlying Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins listening and serving HTTP requests.
// Returns an error channel that will receive any ListenAndServe errors.
// This method is non-blocking.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", s.httpServer.Addr),
			slog.Duration("read_timeout", s.config.ReadTimeout),
			slog.Duration("write_timeout", s.config.WriteTimeout),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}

		close(errCh)
	}()

	return errCh
}

// Shutdown gracefully stops the server, waiting for active connections to
// finish, then drains each Drainer. No request can enqueue work once the
// listener is closed, so draining afterwards loses nothing.
// The provided context bounds the whole sequence.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	var errs []error

	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		s.logger.Info("HTTP server stopped")
	}

	for _, d := range s.drainers {
		start := time.Now()

		if err := d.Close(ctx); err != nil {
			s.logger.Error("drain failed",
				slog.String("drainer", d.Name()),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("draining %s: %w", d.Name(), err))

			continue
		}

		s.logger.Info("drained",
			slog.String("drainer", d.Name()),
			slog.Duration("duration", time.Since(start)),
		)
	}

	return errors.Join(errs...)
}

// Addr returns the server's listening address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// maxBodySize returns middleware that limits the request body size.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
