package audit

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pmhub/secctx/internal/domain"
)

// otherAction labels entries whose action is not in the allow-list.
const otherAction = "other"

// MetricsSink counts audit entries per action and caller kind.
// Only allow-listed actions get their own series; the rest share "other".
type MetricsSink struct {
	entries *prometheus.CounterVec
	actions map[string]struct{}
}

// NewMetricsSink registers the audit counter with reg. actions lists the
// action names that are exported as label values.
func NewMetricsSink(reg prometheus.Registerer, actions []string) (*MetricsSink, error) {
	entries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "security",
		Subsystem: "audit",
		Name:      "entries_total",
		Help:      "Audit entries written, by action and whether the caller was identified.",
	}, []string{"action", "identity"})

	if err := reg.Register(entries); err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		allowed[a] = struct{}{}
	}

	return &MetricsSink{entries: entries, actions: allowed}, nil
}

// Name implements ports.AuditSink.
func (s *MetricsSink) Name() string {
	return "metrics"
}

// Write implements ports.AuditSink.
func (s *MetricsSink) Write(_ context.Context, entry *domain.AuditEntry) error {
	identity := "identified"
	if entry.UserID == 0 && entry.UserName == "" {
		identity = "anonymous"
	}

	s.entries.WithLabelValues(s.actionLabel(entry.Action), identity).Inc()

	return nil
}

func (s *MetricsSink) actionLabel(action string) string {
	if _, ok := s.actions[action]; ok {
		return action
	}

	return otherAction
}
