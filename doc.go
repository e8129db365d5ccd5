// Package containers provides fixed-capacity container primitives for
// performance-sensitive code paths where dynamic allocation is undesirable.
//
// # Overview
//
// The library offers two independent, generic containers, both sized once at
// construction and never reallocated afterwards:
//
//   - bounded.Buffer: a fixed array with a tracked logical size. Append and
//     remove at the end, sparse assignment, and a deliberate dual-access
//     model: size-aware operations honor the logical watermark while raw
//     storage access behaves like a plain fixed array.
//
//   - fifo.Fifo: a circular first-in, first-out queue. Single-element push
//     and pop in O(1), bulk transfers that copy in at most two contiguous
//     runs across the wrap boundary, and non-consuming in-order iteration.
//
// Both containers reject operations that would violate their capacity or
// size preconditions with a classified out-of-range error before any state
// is mutated. See the errors package for the error taxonomy.
//
// # Package layout
//
//   - bounded: fixed-capacity buffer with a logical-size watermark
//   - fifo: fixed-capacity circular FIFO queue
//   - stats: always-on operation statistics shared by both containers
//   - metric: Prometheus registry wrapper and HTTP exposition
//   - config: YAML container manifests with JSON-Schema validation
//   - errors: classified error framework and domain sentinels
//
// # Concurrency
//
// The containers are single-threaded by design and perform no internal
// locking. Callers needing concurrent access must synchronize externally.
package containers
