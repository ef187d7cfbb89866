// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pmhub/secctx/internal/adapters/audit"
	"github.com/pmhub/secctx/internal/adapters/http"
	"github.com/pmhub/secctx/internal/adapters/http/handlers"
	"github.com/pmhub/secctx/internal/adapters/http/middleware"
	"github.com/pmhub/secctx/internal/app"
	"github.com/pmhub/secctx/internal/platform/config"
	"github.com/pmhub/secctx/internal/platform/logging"
	"github.com/pmhub/secctx/internal/platform/telemetry"
	"github.com/pmhub/secctx/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Profile
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Config, validated before anything starts
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Metrics
	securityMetrics, err := middleware.NewSecurityMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering security metrics: %w", err)
	}

	metricsSink, err := audit.NewMetricsSink(prometheus.DefaultRegisterer, cfg.Audit.MetricActions)
	if err != nil {
		return fmt.Errorf("registering audit metrics: %w", err)
	}

	// 6. Application services
	auditService := app.NewAuditService(app.AuditServiceConfig{
		Sinks:     []ports.AuditSink{audit.NewLogSink(slog.LevelInfo), metricsSink},
		QueueSize: cfg.Audit.QueueSize,
		Workers:   cfg.Audit.Workers,
		Logger:    logger,
	})
	profileService := app.NewProfileService()

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(auditService); err != nil {
		return fmt.Errorf("registering audit health check: %w", err)
	}

	// 7. Handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo, prometheus.DefaultGatherer)
	contextHandler := handlers.NewContextHandler(profileService, auditService)

	// 8. HTTP server and routes
	// The audit queue drains after the listener closes.
	server := http.New(&cfg.Server, logger, auditService)
	http.SetupRouter(server.Engine(), http.NewRouterConfig(cfg, securityMetrics, healthHandler, contextHandler))

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal or a server error, then
// drains the HTTP server and the work its handlers queued.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
