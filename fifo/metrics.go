package fifo

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/RobertoRoos/custom-containers/metric"
)

// fifoMetrics holds Prometheus metrics for queue operations.
type fifoMetrics struct {
	pushes  prometheus.Counter
	pops    prometheus.Counter
	peeks   prometheus.Counter
	rejects prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newFifoMetrics creates and registers queue metrics with the provided registry.
func newFifoMetrics(registry *metric.Registry, name string) (*fifoMetrics, error) {
	m := &fifoMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "containers",
			Subsystem:   "fifo",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Total number of elements pushed",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "containers",
			Subsystem:   "fifo",
			Name:        "pops_total",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Total number of elements popped",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "containers",
			Subsystem:   "fifo",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Total number of peek operations",
		}),
		rejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "containers",
			Subsystem:   "fifo",
			Name:        "rejects_total",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Total number of operations rejected for range violations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "containers",
			Subsystem:   "fifo",
			Name:        "size",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Current number of queued elements",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "containers",
			Subsystem:   "fifo",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"container": name},
			Help:        "Queue utilization as a fraction (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(name, "fifo_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "fifo_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "fifo_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "fifo_rejects", m.rejects); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "fifo_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "fifo_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *fifoMetrics) recordPush(size, capacity int) {
	m.pushes.Inc()
	m.updateSize(size, capacity)
}

func (m *fifoMetrics) recordPushN(n, size, capacity int) {
	m.pushes.Add(float64(n))
	m.updateSize(size, capacity)
}

func (m *fifoMetrics) recordPop(size, capacity int) {
	m.pops.Inc()
	m.updateSize(size, capacity)
}

func (m *fifoMetrics) recordPopN(n, size, capacity int) {
	m.pops.Add(float64(n))
	m.updateSize(size, capacity)
}

func (m *fifoMetrics) recordPeek() {
	m.peeks.Inc()
}

func (m *fifoMetrics) recordReject() {
	m.rejects.Inc()
}

func (m *fifoMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
