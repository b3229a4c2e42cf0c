package runtime

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPublishMetrics(reg)
	require.NoError(t, metrics.Register())

	metrics.ObservePublished("events", "info", 0.002)
	metrics.ObservePublished("events", "info", 0.004)
	metrics.ObservePublished("events", "error", 0.001)
	metrics.ObserveFailure("events", "info", 0.010)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.publishedTotal.WithLabelValues("events", "info")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.publishedTotal.WithLabelValues("events", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.failedTotal.WithLabelValues("events", "info")))
}

func TestPublishMetricsRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPublishMetrics(reg)

	require.NoError(t, metrics.Register())
	require.NoError(t, metrics.Register())
}

func TestPublishMetricsSharedRegistererTolerated(t *testing.T) {
	// Two collectors against the same registerer, as happens when Init is
	// called twice in one process with the default registerer.
	reg := prometheus.NewRegistry()

	first := NewPublishMetrics(reg)
	require.NoError(t, first.Register())

	second := NewPublishMetrics(reg)
	require.NoError(t, second.Register())
}
