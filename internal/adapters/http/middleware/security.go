package middleware

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pmhub/secctx/internal/platform/config"
	"github.com/pmhub/secctx/internal/platform/logging"
	"github.com/pmhub/secctx/internal/security"
)

// ContextKeySecurity is the gin context key for the request's security store.
const ContextKeySecurity = "security"

type identityHeaders struct {
	userID     string
	userName   string
	userKey    string
	permission string
}

func headersFrom(cfg *config.SecurityConfig) identityHeaders {
	h := identityHeaders{
		userID:     security.KeyUserID,
		userName:   security.KeyUserName,
		userKey:    security.KeyUserKey,
		permission: security.KeyPermission,
	}

	if cfg == nil {
		return h
	}

	if cfg.UserIDHeader != "" {
		h.userID = cfg.UserIDHeader
	}

	if cfg.UserNameHeader != "" {
		h.userName = cfg.UserNameHeader
	}

	if cfg.UserKeyHeader != "" {
		h.userKey = cfg.UserKeyHeader
	}

	if cfg.PermissionHeader != "" {
		h.permission = cfg.PermissionHeader
	}

	return h
}

// SecurityContext returns middleware that builds the request's security
// context from the identity headers set by the gateway. The headers are
// trusted as-is; no credential is verified here.
//
// Every well-known key is written, so a missing header reads back as the
// empty value. The store is attached to the request context and to the gin
// context, and is reset when the handler chain returns. Handlers that start
// goroutines must pass security.Fork(ctx) to them.
func SecurityContext(cfg *config.SecurityConfig, metrics *SecurityMetrics) gin.HandlerFunc {
	headers := headersFrom(cfg)
	decode := cfg == nil || cfg.DecodeHeaders

	return func(c *gin.Context) {
		store := security.New()
		defer store.Reset()

		store.SetUserID(headerValue(c, headers.userID, decode))
		store.SetUserName(headerValue(c, headers.userName, decode))
		store.SetUserKey(headerValue(c, headers.userKey, decode))
		store.SetPermission(headerValue(c, headers.permission, decode))

		ctx := security.WithContext(c.Request.Context(), store)
		ctx = logging.WithUser(ctx, store.UserID(), store.UserName())

		if span := trace.SpanFromContext(ctx); span.IsRecording() && store.UserID() != 0 {
			span.SetAttributes(attribute.Int64("enduser.id", store.UserID()))
		}

		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextKeySecurity, store)

		done := metrics.track(store)
		defer done()

		c.Next()
	}
}

// GetSecurityStore returns the request's store from the gin context, or nil.
// The nil store is safe to read from.
func GetSecurityStore(c *gin.Context) *security.Store {
	if v, ok := c.Get(ContextKeySecurity); ok {
		if s, ok := v.(*security.Store); ok {
			return s
		}
	}

	return nil
}

// headerValue reads a header, URL-decoding it when asked. A value that fails
// to decode is kept raw.
func headerValue(c *gin.Context, name string, decode bool) string {
	v := c.GetHeader(name)
	if !decode || v == "" {
		return v
	}

	decoded, err := url.QueryUnescape(v)
	if err != nil {
		return v
	}

	return decoded
}
