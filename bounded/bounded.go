package bounded

import (
	"fmt"
	"iter"

	"github.com/RobertoRoos/custom-containers/errors"
	"github.com/RobertoRoos/custom-containers/stats"
)

// Buffer presents a fixed array as a variable-length sequence without
// reallocation. A watermark tracks how many leading slots hold logically
// valid data; slots beyond it exist physically but are not part of the
// sequence.
//
// The buffer deliberately offers two access models. Size-aware operations
// (Get, PushBack, PopBack, iteration) honor the watermark. Raw access via
// Raw behaves like a plain fixed array: it ignores the watermark entirely,
// which lets callers pre-populate storage before committing to a logical
// size with Assign or Reset.
type Buffer[T any] struct {
	items   []T
	used    int // Count of logically valid leading slots, always <= len(items)
	stats   *stats.Statistics
	metrics *bufferMetrics
}

// New creates a buffer holding up to capacity elements of type T.
// Returns an error if capacity is not positive or if metrics registration
// fails when requested.
func New[T any](capacity int, options ...Option) (*Buffer[T], error) {
	if capacity < 1 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Buffer", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	opts := applyOptions(options...)

	var metrics *bufferMetrics
	if opts.metricsReg != nil && opts.metricsName != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.metricsName)
		if err != nil {
			return nil, err
		}
	}

	return &Buffer[T]{
		items:   make([]T, capacity),
		stats:   stats.New(),
		metrics: metrics,
	}, nil
}

// Capacity returns the fixed physical size of the buffer.
func (b *Buffer[T]) Capacity() int {
	return len(b.items)
}

// Size returns the current logical size.
func (b *Buffer[T]) Size() int {
	return b.used
}

// Free returns the number of slots still unused.
func (b *Buffer[T]) Free() int {
	return len(b.items) - b.used
}

// Empty returns true if no slots are used yet.
func (b *Buffer[T]) Empty() bool {
	return b.used == 0
}

// Full returns true if the logical size has reached the capacity.
func (b *Buffer[T]) Full() bool {
	return b.used == len(b.items)
}

// Get returns the element at logical index n.
// Fails with an out-of-range error if n is not below the current size;
// bounds are checked against the logical size, not the physical capacity.
func (b *Buffer[T]) Get(n int) (T, error) {
	var zero T

	if n < 0 || n >= b.used {
		b.reject()
		return zero, errors.WrapOutOfRange(errors.ErrIndexOutOfRange, "Buffer", "Get",
			fmt.Sprintf("read index %d with size %d", n, b.used))
	}

	b.stats.Read()
	if b.metrics != nil {
		b.metrics.recordRead(b.used, len(b.items))
	}

	return b.items[n], nil
}

// Assign writes v at physical index n and advances the watermark to at
// least n+1. Slots skipped over keep whatever the storage held, so sparse
// fill patterns can commit uninitialized gaps; that is the caller's
// responsibility. Fails with an out-of-range error if n is not a valid
// physical index.
func (b *Buffer[T]) Assign(n int, v T) error {
	if n < 0 || n >= len(b.items) {
		b.reject()
		return errors.WrapOutOfRange(errors.ErrIndexOutOfRange, "Buffer", "Assign",
			fmt.Sprintf("write index %d with capacity %d", n, len(b.items)))
	}

	b.items[n] = v
	b.used = max(b.used, n+1)

	b.stats.Write()
	b.stats.UpdateSize(int64(b.used))
	if b.metrics != nil {
		b.metrics.recordWrite(b.used, len(b.items))
	}

	return nil
}

// PushBack appends v at the current logical end.
// Fails with an out-of-range error when the buffer is full.
func (b *Buffer[T]) PushBack(v T) error {
	if b.used == len(b.items) {
		b.reject()
		return errors.WrapOutOfRange(errors.ErrFull, "Buffer", "PushBack", "append element")
	}

	b.items[b.used] = v
	b.used++

	b.stats.Write()
	b.stats.UpdateSize(int64(b.used))
	if b.metrics != nil {
		b.metrics.recordWrite(b.used, len(b.items))
	}

	return nil
}

// PopBack removes and returns the element at the logical end.
// Fails with an out-of-range error when the buffer is empty. The removed
// element stays in storage until overwritten; only the watermark moves.
func (b *Buffer[T]) PopBack() (T, error) {
	var zero T

	if b.used == 0 {
		b.reject()
		return zero, errors.WrapOutOfRange(errors.ErrEmpty, "Buffer", "PopBack", "remove element")
	}

	b.used--
	v := b.items[b.used]

	b.stats.Read()
	b.stats.UpdateSize(int64(b.used))
	if b.metrics != nil {
		b.metrics.recordRead(b.used, len(b.items))
	}

	return v, nil
}

// Reset forces the logical size to n, or to zero when called with 0.
// The caller asserts that the data up to n is meaningful; values outside
// [0, capacity] are clamped to keep the watermark invariant intact.
func (b *Buffer[T]) Reset(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(b.items) {
		n = len(b.items)
	}
	b.used = n

	b.stats.UpdateSize(int64(b.used))
	if b.metrics != nil {
		b.metrics.updateSize(b.used, len(b.items))
	}
}

// FillUsed overwrites the first Size() slots with v without changing the
// logical size.
func (b *Buffer[T]) FillUsed(v T) {
	for i := 0; i < b.used; i++ {
		b.items[i] = v
	}

	b.stats.AddWrites(int64(b.used))
	if b.metrics != nil {
		b.metrics.recordWriteN(b.used, b.used, len(b.items))
	}
}

// FillAll sets the logical size to the capacity and overwrites every slot
// with v.
func (b *Buffer[T]) FillAll(v T) {
	b.used = len(b.items)
	for i := range b.items {
		b.items[i] = v
	}

	b.stats.AddWrites(int64(b.used))
	b.stats.UpdateSize(int64(b.used))
	if b.metrics != nil {
		b.metrics.recordWriteN(b.used, b.used, len(b.items))
	}
}

// Raw exposes the backing storage as a plain slice of the full capacity.
// Reads and writes through it ignore the watermark completely and never
// move it, matching plain fixed-array semantics. Indexing past the
// capacity panics like any slice access.
func (b *Buffer[T]) Raw() []T {
	return b.items
}

// Values returns an iterator over the used elements in index order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.used; i++ {
			if !yield(b.items[i]) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs for the used elements
// in index order.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.used; i++ {
			if !yield(i, b.items[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs for the used
// elements in reverse index order.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.used - 1; i >= 0; i-- {
			if !yield(i, b.items[i]) {
				return
			}
		}
	}
}

// Stats returns buffer statistics (always collected).
func (b *Buffer[T]) Stats() *stats.Statistics {
	return b.stats
}

func (b *Buffer[T]) reject() {
	b.stats.Reject()
	if b.metrics != nil {
		b.metrics.recordReject()
	}
}
