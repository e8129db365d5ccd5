package fifo

import (
	"github.com/RobertoRoos/custom-containers/metric"
)

// Option configures queue behavior using the functional options pattern.
type Option func(*fifoOptions)

// fifoOptions holds internal configuration for queue instances.
// Stats are always collected; Prometheus metrics are opt-in.
type fifoOptions struct {
	// metricsReg is optional - if provided, queue stats are also exposed
	// as Prometheus metrics
	metricsReg *metric.Registry

	// metricsName is used as the container label for Prometheus metrics
	metricsName string
}

// WithMetrics enables Prometheus metrics export for queue statistics.
// If registry is nil or name is empty, this option is ignored.
func WithMetrics(registry *metric.Registry, name string) Option {
	return func(opts *fifoOptions) {
		if registry != nil && name != "" {
			opts.metricsReg = registry
			opts.metricsName = name
		}
	}
}

// applyOptions applies functional options to create final queue configuration.
func applyOptions(options ...Option) *fifoOptions {
	opts := &fifoOptions{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
