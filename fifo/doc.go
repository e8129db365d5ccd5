// Package fifo implements a fixed-capacity circular first-in, first-out
// queue with built-in statistics tracking and optional Prometheus metrics.
//
// # Overview
//
// The queue is backed by a contiguous array sized once at construction and
// never reallocated. Single-element push and pop are O(1); bulk transfers
// are O(k) and copy in at most two contiguous runs so they stay efficient
// when the transfer spans the physical wrap boundary.
//
// # Quick start
//
//	q, err := fifo.New[int](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = q.Push(42)
//	v, err := q.Pop()
//
// Bulk transfer:
//
//	err = q.PushList(samples)
//
//	out := make([]int, q.Size())
//	n, err := q.PopList(out, 0) // 0 means everything queued
//
// # Cursor model
//
// The queue tracks unbounded logical cursors rather than pre-reduced
// physical indices: the physical slot for a cursor is cursor % capacity.
// Only the pop side normalizes, subtracting the capacity from both cursors
// once the read cursor would leave [0, capacity). The write cursor may
// therefore exceed the capacity between pops; the difference between the
// cursors is always the exact queue size, with no modulo on the hot
// dequeue path.
//
// # Failure semantics
//
// Push on a full queue, pop or peek on an empty queue, and bulk transfers
// that do not fit are rejected with an error wrapping errors.ErrOutOfRange.
// All checks happen before any element is copied, so bulk operations are
// all-or-nothing: a failed PushList or PopList leaves the queue unchanged.
//
// # Iteration
//
// Values returns a non-consuming iterator in FIFO order:
//
//	for v := range q.Values() {
//		...
//	}
//
// Iterating never advances the read cursor; Pop and PopList are the only
// consuming operations.
//
// # Observability
//
// Statistics are always collected and available via Stats(). Prometheus
// export is opt-in:
//
//	q, err := fifo.New[[]byte](4096,
//		fifo.WithMetrics(registry, "telemetry"),
//	)
//
// # Concurrency
//
// The queue performs no locking and is intended for single-threaded use.
// Callers needing concurrent access must synchronize externally.
package fifo
