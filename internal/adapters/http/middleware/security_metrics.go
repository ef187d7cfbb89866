package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pmhub/secctx/internal/security"
)

// SecurityMetrics counts requests by whether they carried an identity and
// tracks how many security contexts are live. A nil *SecurityMetrics is a
// no-op.
type SecurityMetrics struct {
	requests *prometheus.CounterVec
	active   prometheus.Gauge
}

// NewSecurityMetrics registers the security context collectors with reg.
func NewSecurityMetrics(reg prometheus.Registerer) (*SecurityMetrics, error) {
	m := &SecurityMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "security",
			Subsystem: "context",
			Name:      "requests_total",
			Help:      "Requests that passed through the security context middleware.",
		}, []string{"identity"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "security",
			Subsystem: "context",
			Name:      "active",
			Help:      "Security contexts currently attached to in-flight requests.",
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.active} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// track records a request and returns the func that marks it finished.
func (m *SecurityMetrics) track(s *security.Store) func() {
	if m == nil {
		return func() {}
	}

	identity := "anonymous"
	if s.UserID() != 0 || s.UserName() != security.Empty {
		identity = "identified"
	}

	m.requests.WithLabelValues(identity).Inc()
	m.active.Inc()

	return m.active.Dec
}
