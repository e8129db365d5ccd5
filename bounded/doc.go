// Package bounded implements a fixed-capacity buffer with a tracked
// logical size, built-in statistics and optional Prometheus metrics.
//
// # Overview
//
// The buffer is a contiguous array sized once at construction, with a
// watermark counting how many leading slots hold valid data. It behaves
// like a variable-length sequence without ever reallocating: appends move
// the watermark up, removals move it down, and an explicit Reset can force
// it anywhere within the capacity.
//
// # Quick start
//
//	buf, err := bounded.New[float32](8)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = buf.PushBack(1.0)
//	v, err := buf.Get(0)
//
//	for v := range buf.Values() {
//		...
//	}
//
// # Dual access model
//
// Not all element access honors the logical size, and that is intentional.
// Size-aware operations (Get, PushBack, PopBack, the iterators) are bounds
// checked against the watermark. Raw returns the backing storage as a
// plain slice; reads and writes through it ignore and never move the
// watermark, exactly like a plain fixed array. Combined with Assign and
// Reset this lets advanced callers pre-populate storage first and commit
// to a logical size afterwards:
//
//	raw := buf.Raw()
//	raw[0], raw[1], raw[2] = 1, 2, 3
//	buf.Reset(3) // the three slots are now logically live
//
// Assign writes through to a physical index and drags the watermark up to
// cover it; any slots skipped over keep stale storage contents, which the
// caller asserts are meaningful.
//
// # Failure semantics
//
// Get beyond the watermark, PushBack on a full buffer, and PopBack on an
// empty one are rejected with an error wrapping errors.ErrOutOfRange
// before any state changes.
//
// # Concurrency
//
// The buffer performs no locking and is intended for single-threaded use.
package bounded
