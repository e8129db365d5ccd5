package bounded

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/RobertoRoos/custom-containers/metric"
)

// bufferMetrics holds Prometheus metrics for buffer operations.
type bufferMetrics struct {
	writes  prometheus.Counter
	reads   prometheus.Counter
	rejects prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newBufferMetrics creates and registers buffer metrics with the provided registry.
func newBufferMetrics(registry *metric.Registry, name string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "containers",
			Subsystem:   "bounded",
			Name:        "writes_total",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Total number of elements written",
		}),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "containers",
			Subsystem:   "bounded",
			Name:        "reads_total",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Total number of elements read",
		}),
		rejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "containers",
			Subsystem:   "bounded",
			Name:        "rejects_total",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Total number of operations rejected for range violations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "containers",
			Subsystem:   "bounded",
			Name:        "size",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Current logical size",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "containers",
			Subsystem:   "bounded",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Buffer utilization as a fraction (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(name, "bounded_writes", m.writes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "bounded_reads", m.reads); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "bounded_rejects", m.rejects); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "bounded_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "bounded_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *bufferMetrics) recordWrite(size, capacity int) {
	m.writes.Inc()
	m.updateSize(size, capacity)
}

func (m *bufferMetrics) recordWriteN(n, size, capacity int) {
	m.writes.Add(float64(n))
	m.updateSize(size, capacity)
}

func (m *bufferMetrics) recordRead(size, capacity int) {
	m.reads.Inc()
	m.updateSize(size, capacity)
}

func (m *bufferMetrics) recordReject() {
	m.rejects.Inc()
}

func (m *bufferMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
