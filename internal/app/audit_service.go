package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/pmhub/secctx/internal/domain"
	"github.com/pmhub/secctx/internal/platform/logging"
	"github.com/pmhub/secctx/internal/platform/telemetry"
	"github.com/pmhub/secctx/internal/ports"
	"github.com/pmhub/secctx/internal/security"
)

const auditServiceName = "audit"

var errAuditClosed = errors.New("audit service closed")

// AuditServiceConfig contains configuration for the audit service.
type AuditServiceConfig struct {
	Sinks     []ports.AuditSink
	QueueSize int
	Workers   int
	Logger    *slog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// AuditService records actions on behalf of the caller and writes them to
// the configured sinks from background workers. Each queued entry carries a
// snapshot of the caller's security context, so a request finishing (and
// resetting its context) never changes what the worker sees.
type AuditService struct {
	sinks  []ports.AuditSink
	queue  chan auditJob
	logger *slog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	closed bool
	group  errgroup.Group
}

type auditJob struct {
	ctx   context.Context
	entry *domain.AuditEntry
}

// NewAuditService creates the service and starts its workers.
func NewAuditService(cfg AuditServiceConfig) *AuditService {
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &AuditService{
		sinks:  cfg.Sinks,
		queue:  make(chan auditJob, cfg.QueueSize),
		logger: cfg.Logger.With(slog.String("component", "app.AuditService")),
		now:    cfg.Now,
	}

	for range cfg.Workers {
		s.group.Go(func() error {
			for job := range s.queue {
				s.dispatch(job)
			}

			return nil
		})
	}

	return s
}

// Record queues an audit entry for the caller identified by ctx and returns
// it without waiting for the sinks. It fails with domain.ErrUnavailable when
// the queue is full or the service is closed.
func (s *AuditService) Record(ctx context.Context, action, detail string) (*domain.AuditEntry, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, domain.NewValidationError("action", "is required")
	}

	store := security.FromContext(ctx)
	entry := &domain.AuditEntry{
		ID:         uuid.NewString(),
		Action:     action,
		Detail:     detail,
		UserID:     store.UserID(),
		UserName:   store.UserName(),
		Permission: store.Permission(),
		OccurredAt: s.now().UTC(),
	}

	job := auditJob{ctx: Detach(ctx), entry: entry}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, domain.NewUnavailableError(auditServiceName, "closed")
	}

	select {
	case s.queue <- job:
		return entry, nil
	default:
		logging.FromContext(ctx).WarnContext(ctx, "audit queue full, entry dropped",
			slog.String("action", action),
		)

		return nil, domain.NewUnavailableError(auditServiceName, "queue full")
	}
}

func (s *AuditService) dispatch(job auditJob) {
	ctx, span := telemetry.Tracer().Start(job.ctx, "audit.dispatch", trace.WithAttributes(
		attribute.String("audit.id", job.entry.ID),
		attribute.String("audit.action", job.entry.Action),
		attribute.Int64("enduser.id", job.entry.UserID),
	))
	defer span.End()

	writes := make([]func(context.Context) (string, error), 0, len(s.sinks))
	for _, sink := range s.sinks {
		writes = append(writes, func(ctx context.Context) (string, error) {
			return sink.Name(), sink.Write(ctx, job.entry)
		})
	}

	for _, r := range ParallelPartial(ctx, writes...) {
		if r.Err != nil {
			span.RecordError(r.Err, trace.WithAttributes(attribute.String("audit.sink", r.Value)))
			span.SetStatus(codes.Error, "audit sink failed")

			s.logger.ErrorContext(ctx, "audit sink failed",
				slog.String("sink", r.Value),
				slog.String("audit_id", job.entry.ID),
				slog.Any("error", r.Err),
			)
		}
	}
}

// Close stops accepting entries and waits for queued ones to be written,
// or for ctx to expire.
func (s *AuditService) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = s.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Name implements ports.HealthChecker.
func (s *AuditService) Name() string {
	return auditServiceName
}

// Check implements ports.HealthChecker. A closed service or a saturated
// queue reports unhealthy.
func (s *AuditService) Check(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errAuditClosed
	}

	if len(s.queue) == cap(s.queue) {
		return domain.NewUnavailableError(auditServiceName, "queue saturated")
	}

	return nil
}
