// Package audit provides ports.AuditSink implementations.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/pmhub/secctx/internal/domain"
	"github.com/pmhub/secctx/internal/platform/logging"
	"github.com/pmhub/secctx/internal/security"
)

// LogSink writes audit entries as structured log records using the logger
// carried by ctx, so request-scoped attributes such as request_id follow the
// entry into the background worker.
type LogSink struct {
	level slog.Level
}

// NewLogSink creates a sink that logs at the given level.
func NewLogSink(level slog.Level) *LogSink {
	return &LogSink{level: level}
}

// Name implements ports.AuditSink.
func (s *LogSink) Name() string {
	return "log"
}

// Write implements ports.AuditSink.
func (s *LogSink) Write(ctx context.Context, entry *domain.AuditEntry) error {
	logging.FromContext(ctx).Log(ctx, s.level, "audit",
		slog.String("audit_id", entry.ID),
		slog.String("action", entry.Action),
		slog.String("detail", entry.Detail),
		slog.Time("occurred_at", entry.OccurredAt),
		slog.Duration("lag", time.Since(entry.OccurredAt)),
		slog.Any("security", security.FromContext(ctx)),
	)

	return ctx.Err()
}
