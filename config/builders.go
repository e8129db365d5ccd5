package config

import (
	"fmt"

	"github.com/RobertoRoos/custom-containers/bounded"
	"github.com/RobertoRoos/custom-containers/errors"
	"github.com/RobertoRoos/custom-containers/fifo"
	"github.com/RobertoRoos/custom-containers/metric"
)

// NewFifo builds a FIFO queue from a manifest definition. The registry may
// be nil; metrics are attached only when the definition enables them.
func NewFifo[T any](def Container, registry *metric.Registry) (*fifo.Fifo[T], error) {
	if def.Kind != KindFifo {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "NewFifo",
			fmt.Sprintf("container %q has kind %q", def.Name, def.Kind))
	}

	var options []fifo.Option
	if def.Metrics && registry != nil {
		options = append(options, fifo.WithMetrics(registry, def.Name))
	}

	return fifo.New[T](def.Capacity, options...)
}

// NewBounded builds a bounded buffer from a manifest definition. The
// registry may be nil; metrics are attached only when the definition
// enables them.
func NewBounded[T any](def Container, registry *metric.Registry) (*bounded.Buffer[T], error) {
	if def.Kind != KindBounded {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "NewBounded",
			fmt.Sprintf("container %q has kind %q", def.Name, def.Kind))
	}

	var options []bounded.Option
	if def.Metrics && registry != nil {
		options = append(options, bounded.WithMetrics(registry, def.Name))
	}

	return bounded.New[T](def.Capacity, options...)
}
