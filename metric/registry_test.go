package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/RobertoRoos/custom-containers/errors"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.PrometheusRegistry())
}

func TestRegistry_RegisterCounter(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "A test counter",
	})

	err := registry.RegisterCounter("test-fifo", "test_counter", counter)
	require.NoError(t, err)

	counter.Inc()

	// Verify the counter is registered in the underlying Prometheus registry
	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range metricFamilies {
		if mf.GetName() == "test_counter" {
			found = true
			break
		}
	}
	assert.True(t, found, "Counter should be registered in Prometheus registry")
}

func TestRegistry_RegisterGauge(t *testing.T) {
	registry := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_gauge",
		Help: "A test gauge",
	})

	err := registry.RegisterGauge("test-fifo", "test_gauge", gauge)
	require.NoError(t, err)

	gauge.Set(42)

	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range metricFamilies {
		if mf.GetName() == "test_gauge" {
			found = true
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, 42.0, mf.GetMetric()[0].GetGauge().GetValue())
			break
		}
	}
	assert.True(t, found, "Gauge should be registered in Prometheus registry")
}

func TestRegistry_RegisterHistogram(t *testing.T) {
	registry := NewRegistry()

	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "test_histogram",
		Help: "A test histogram",
	})

	err := registry.RegisterHistogram("test-fifo", "test_histogram", histogram)
	require.NoError(t, err)

	histogram.Observe(0.5)
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dup_counter",
		Help: "A counter registered twice",
	})

	require.NoError(t, registry.RegisterCounter("fifo", "dup_counter", counter))

	err := registry.RegisterCounter("fifo", "dup_counter", counter)
	require.Error(t, err)
	assert.True(t, cerrors.IsInvalid(err), "duplicate registration should be classified invalid")
}

func TestRegistry_DuplicatePrometheusCollector(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shared_counter",
		Help: "Same collector under two keys",
	})

	require.NoError(t, registry.RegisterCounter("fifo-a", "shared", counter))

	// Different registry key, same underlying collector: Prometheus rejects it
	err := registry.RegisterCounter("fifo-b", "shared", counter)
	require.Error(t, err)
	assert.True(t, cerrors.IsInvalid(err))
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "removable_counter",
		Help: "A counter to remove",
	})

	require.NoError(t, registry.RegisterCounter("fifo", "removable", counter))

	assert.True(t, registry.Unregister("fifo", "removable"))
	assert.False(t, registry.Unregister("fifo", "removable"), "second unregister should report false")

	// Re-registration after unregister must succeed
	require.NoError(t, registry.RegisterCounter("fifo", "removable", counter))
}
