package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/RobertoRoos/custom-containers/errors"
)

// Registrar defines the interface for registering container metrics
type Registrar interface {
	RegisterCounter(containerName, metricName string, counter prometheus.Counter) error
	RegisterGauge(containerName, metricName string, gauge prometheus.Gauge) error
	RegisterHistogram(containerName, metricName string, histogram prometheus.Histogram) error
	Unregister(containerName, metricName string) bool
}

// Registry manages the registration and lifecycle of metrics
type Registry struct {
	prometheusRegistry *prometheus.Registry
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a new metrics registry with Go runtime collectors
func NewRegistry() *Registry {
	prometheusRegistry := prometheus.NewRegistry()

	registry := &Registry{
		prometheusRegistry: prometheusRegistry,
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	// Add Go runtime metrics
	registry.prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// RegisterCounter registers a counter metric for a container
func (r *Registry) RegisterCounter(containerName, metricName string, counter prometheus.Counter) error {
	return r.register(containerName, metricName, "RegisterCounter", counter)
}

// RegisterGauge registers a gauge metric for a container
func (r *Registry) RegisterGauge(containerName, metricName string, gauge prometheus.Gauge) error {
	return r.register(containerName, metricName, "RegisterGauge", gauge)
}

// RegisterHistogram registers a histogram metric for a container
func (r *Registry) RegisterHistogram(containerName, metricName string, histogram prometheus.Histogram) error {
	return r.register(containerName, metricName, "RegisterHistogram", histogram)
}

// register adds a collector under "container.metric", rejecting duplicates
// both at the registry key level and at the Prometheus level
func (r *Registry) register(containerName, metricName, operation string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", containerName, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered for container %s", metricName, containerName),
			"Registry", operation, "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		// Check if it's a duplicate registration error from Prometheus
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapInvalid(err, "Registry", operation,
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.WrapFatal(err, "Registry", operation,
			"failed to register collector with prometheus")
	}

	r.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a metric from the registry
func (r *Registry) Unregister(containerName, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", containerName, metricName)

	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	success := r.prometheusRegistry.Unregister(collector)
	if success {
		delete(r.registeredMetrics, key)
	}

	return success
}
