package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/secctx/internal/adapters/http/handlers"
	"github.com/pmhub/secctx/internal/adapters/http/middleware"
	"github.com/pmhub/secctx/internal/platform/config"
	"github.com/pmhub/secctx/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	AppConfig *config.AppConfig

	// SecurityConfig names the identity headers. Nil uses the defaults.
	SecurityConfig  *config.SecurityConfig
	SecurityMetrics *middleware.SecurityMetrics

	HealthHandler  *handlers.HealthHandler
	ContextHandler *handlers.ContextHandler

	// Timeout bounds /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Request ID
//  3. OpenTelemetry tracing and metrics
//  4. Security context, populated from the identity headers
//  5. Logging (skips /-/ endpoints)
//
// Route groups:
//   - /-/ (internal): health, build info and metrics
//   - /api/v1/: business endpoints, with the request timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(NotFound)
	engine.NoMethod(MethodNotAllowed)

	engine.Use(middleware.Recovery(), middleware.RequestID())

	if cfg.AppConfig != nil {
		engine.Use(telemetry.Tracing(cfg.AppConfig.Name), telemetry.Middleware())
	}

	engine.Use(
		middleware.SecurityContext(cfg.SecurityConfig, cfg.SecurityMetrics),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.ContextHandler != nil {
		cfg.ContextHandler.RegisterContextRoutes(apiV1)
	}
}

// NewRouterConfig builds a RouterConfig from the loaded configuration.
func NewRouterConfig(
	cfg *config.Config,
	metrics *middleware.SecurityMetrics,
	health *handlers.HealthHandler,
	ctxHandler *handlers.ContextHandler,
) RouterConfig {
	timeout := cfg.Server.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	return RouterConfig{
		AppConfig:       &cfg.App,
		SecurityConfig:  &cfg.Security,
		SecurityMetrics: metrics,
		HealthHandler:   health,
		ContextHandler:  ctxHandler,
		Timeout:         timeout,
	}
}
