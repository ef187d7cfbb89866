// Package ports defines the interfaces the application layer depends on.
// Adapters implement them.
package ports

import (
	"context"

	"github.com/pmhub/secctx/internal/domain"
)

// AuditSink persists audit entries. Write is called from background workers,
// never from the request goroutine, so implementations must not rely on the
// request being in flight. The security context in ctx is a snapshot taken
// when the entry was recorded.
type AuditSink interface {
	Name() string
	Write(ctx context.Context, entry *domain.AuditEntry) error
}
