package runtime

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PublishMetrics tracks publish outcomes. Publish failures are invisible to
// the business caller, so these counters and the diagnostic log are the only
// places where a broken transport shows up.
type PublishMetrics struct {
	mu sync.Mutex

	publishedTotal  *prometheus.CounterVec
	failedTotal     *prometheus.CounterVec
	durationSeconds *prometheus.HistogramVec

	registerer prometheus.Registerer
	registered bool
}

func newPublishCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventlog",
			Subsystem: "publish",
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// NewPublishMetrics creates a publish metrics collector. A nil registerer
// falls back to the Prometheus default registerer.
func NewPublishMetrics(registerer prometheus.Registerer) *PublishMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &PublishMetrics{
		registerer:     registerer,
		publishedTotal: newPublishCounterVec("events_total", "Total number of envelopes successfully handed to the transport", []string{"topic", "level"}),
		failedTotal:    newPublishCounterVec("failures_total", "Total number of envelope publishes the transport rejected", []string{"topic", "level"}),
		durationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "eventlog",
				Subsystem: "publish",
				Name:      "duration_seconds",
				Help:      "Time spent in the transport publish call",
				Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"topic"},
		),
	}
}

// Register registers the Prometheus collectors. Safe to call multiple times.
func (m *PublishMetrics) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}

	collectors := []prometheus.Collector{m.publishedTotal, m.failedTotal, m.durationSeconds}
	for _, c := range collectors {
		if err := m.registerer.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	m.registered = true
	return nil
}

// ObservePublished records a successful publish.
func (m *PublishMetrics) ObservePublished(topic, level string, seconds float64) {
	m.publishedTotal.WithLabelValues(topic, level).Inc()
	m.durationSeconds.WithLabelValues(topic).Observe(seconds)
}

// ObserveFailure records a swallowed publish failure.
func (m *PublishMetrics) ObserveFailure(topic, level string, seconds float64) {
	m.failedTotal.WithLabelValues(topic, level).Inc()
	m.durationSeconds.WithLabelValues(topic).Observe(seconds)
}
