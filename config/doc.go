// Package config loads and validates YAML container manifests.
//
// A manifest declares a set of named containers to build:
//
//	containers:
//	  - name: samples
//	    kind: fifo
//	    capacity: 256
//	    metrics: true
//	  - name: scratch
//	    kind: bounded
//	    capacity: 64
//
// Validation happens in two stages. The raw document is first checked
// against an embedded JSON Schema, which catches structural mistakes
// (missing fields, wrong types, unknown keys) with field-level error
// messages. The decoded config is then checked semantically: names must
// be unique and every definition must be buildable.
//
// NewFifo and NewBounded turn a validated definition into a live
// container, wiring Prometheus metrics when the definition asks for them.
package config
