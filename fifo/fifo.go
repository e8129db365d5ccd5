package fifo

import (
	"fmt"
	"iter"

	"github.com/RobertoRoos/custom-containers/errors"
	"github.com/RobertoRoos/custom-containers/stats"
)

// Fifo is a fixed-capacity circular first-in, first-out queue.
//
// The queue tracks two logical cursors over a physically circular store:
// tail is the logical index of the next element to read, head the logical
// index of the next slot to write. Cursors are plain counters, not
// pre-reduced modulo capacity; the physical slot for a cursor is
// cursor % capacity. The tail cursor is kept inside [0, capacity) by
// normalization on the pop side, while head may exceed capacity, so the
// difference head-tail is always the exact queue size.
type Fifo[T any] struct {
	items    []T
	capacity int
	head     int // Logical index of the next slot to write; may exceed capacity
	tail     int // Logical index of the next element to read; always < capacity
	stats    *stats.Statistics
	metrics  *fifoMetrics
}

// New creates a fifo holding up to capacity elements of type T.
// Returns an error if capacity is not positive or if metrics registration
// fails when requested.
func New[T any](capacity int, options ...Option) (*Fifo[T], error) {
	if capacity < 1 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Fifo", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	opts := applyOptions(options...)

	var metrics *fifoMetrics
	if opts.metricsReg != nil && opts.metricsName != "" {
		var err error
		metrics, err = newFifoMetrics(opts.metricsReg, opts.metricsName)
		if err != nil {
			return nil, err
		}
	}

	return &Fifo[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		stats:    stats.New(),
		metrics:  metrics,
	}, nil
}

// slot maps a logical cursor to its physical storage index.
func (f *Fifo[T]) slot(cursor int) int {
	return cursor % f.capacity
}

// advanceTail moves the read cursor forward by incr and normalizes both
// cursors once tail leaves [0, capacity). Normalizing both keeps the
// head-tail difference exact without a modulo on every operation.
func (f *Fifo[T]) advanceTail(incr int) {
	f.tail += incr
	if f.tail >= f.capacity {
		f.tail -= f.capacity
		f.head -= f.capacity
	}
}

// Capacity returns the maximum number of elements the queue can hold.
func (f *Fifo[T]) Capacity() int {
	return f.capacity
}

// Size returns the current number of queued elements.
func (f *Fifo[T]) Size() int {
	return f.head - f.tail
}

// Free returns the number of elements that can still be pushed.
func (f *Fifo[T]) Free() int {
	return f.capacity - f.Size()
}

// Empty returns true if no elements are queued.
func (f *Fifo[T]) Empty() bool {
	return f.head == f.tail
}

// Full returns true if the queue is at capacity.
func (f *Fifo[T]) Full() bool {
	return f.head == f.tail+f.capacity
}

// Push enqueues a single element.
// Fails with an out-of-range error when the queue is full; the queue never
// silently overwrites queued elements.
func (f *Fifo[T]) Push(v T) error {
	if f.Full() {
		f.reject()
		return errors.WrapOutOfRange(errors.ErrFull, "Fifo", "Push", "enqueue element")
	}

	f.items[f.slot(f.head)] = v
	// head may exceed capacity; only tail advances normalize
	f.head++

	f.stats.Write()
	f.stats.UpdateSize(int64(f.Size()))
	if f.metrics != nil {
		f.metrics.recordPush(f.Size(), f.capacity)
	}

	return nil
}

// Pop dequeues the oldest element.
// Fails with an out-of-range error when the queue is empty.
func (f *Fifo[T]) Pop() (T, error) {
	var zero T

	if f.Empty() {
		f.reject()
		return zero, errors.WrapOutOfRange(errors.ErrEmpty, "Fifo", "Pop", "dequeue element")
	}

	// tail is always below capacity, no modulo needed on the read side
	v := f.items[f.tail]
	f.advanceTail(1)

	f.stats.Read()
	f.stats.UpdateSize(int64(f.Size()))
	if f.metrics != nil {
		f.metrics.recordPop(f.Size(), f.capacity)
	}

	return v, nil
}

// Peek returns the oldest element without dequeuing it.
// Fails with an out-of-range error when the queue is empty.
func (f *Fifo[T]) Peek() (T, error) {
	var zero T

	if f.Empty() {
		f.reject()
		return zero, errors.WrapOutOfRange(errors.ErrEmpty, "Fifo", "Peek", "inspect element")
	}

	f.stats.Peek()
	if f.metrics != nil {
		f.metrics.recordPeek()
	}

	return f.items[f.tail], nil
}

// PushList enqueues all elements of src in order.
// The operation is all-or-nothing: if src does not fit in the free space it
// fails with an out-of-range error and nothing is copied. Elements are
// copied in at most two contiguous runs, the first up to the physical end
// of storage, the remainder from physical index 0.
func (f *Fifo[T]) PushList(src []T) error {
	n := len(src)
	if n > f.Free() {
		f.reject()
		return errors.WrapOutOfRange(errors.ErrInsufficientSpace, "Fifo", "PushList",
			fmt.Sprintf("enqueue %d elements with %d free", n, f.Free()))
	}
	if n == 0 {
		return nil
	}

	// Copy elements until the end of physical storage, then wrap to the start
	n1 := min(n, f.capacity-f.slot(f.head))
	copy(f.items[f.slot(f.head):], src[:n1])
	copy(f.items, src[n1:])
	// No normalization here; tail advances handle that
	f.head += n

	f.stats.AddWrites(int64(n))
	f.stats.UpdateSize(int64(f.Size()))
	if f.metrics != nil {
		f.metrics.recordPushN(n, f.Size(), f.capacity)
	}

	return nil
}

// PopList dequeues n elements into dst in FIFO order and reports how many
// were transferred. A zero n means "all currently queued". The operation is
// all-or-nothing: if n is negative or exceeds the queued count, or dst
// cannot hold n elements, it fails with an out-of-range error and nothing
// is copied.
func (f *Fifo[T]) PopList(dst []T, n int) (int, error) {
	if n < 0 || n > f.Size() {
		f.reject()
		return 0, errors.WrapOutOfRange(errors.ErrInsufficientItems, "Fifo", "PopList",
			fmt.Sprintf("dequeue %d elements with %d queued", n, f.Size()))
	}
	if n == 0 {
		n = f.Size()
	}
	if n > len(dst) {
		f.reject()
		return 0, errors.WrapOutOfRange(errors.ErrInsufficientSpace, "Fifo", "PopList",
			fmt.Sprintf("store %d elements in destination of %d", n, len(dst)))
	}
	if n == 0 {
		return 0, nil
	}

	// Copy elements until the end of physical storage, then wrap to the start
	n1 := min(n, f.capacity-f.tail)
	copy(dst[:n1], f.items[f.tail:f.tail+n1])
	copy(dst[n1:n], f.items[:n-n1])
	// Normalize once after the full advance, not per element
	f.advanceTail(n)

	f.stats.AddReads(int64(n))
	f.stats.UpdateSize(int64(f.Size()))
	if f.metrics != nil {
		f.metrics.recordPopN(n, f.Size(), f.capacity)
	}

	return n, nil
}

// Clear resets both cursors, making the queue empty.
// Storage contents are not erased; the elements are simply no longer
// reachable through the queue.
func (f *Fifo[T]) Clear() {
	f.tail = 0
	f.head = 0

	f.stats.UpdateSize(0)
	if f.metrics != nil {
		f.metrics.updateSize(0, f.capacity)
	}
}

// Values returns an iterator over the queued elements in FIFO order,
// oldest first. Iteration is non-consuming: the read cursor is not
// advanced, and Pop or PopList remain the only consuming operations.
// The cursors are captured when iteration starts; do not mutate the queue
// while iterating.
func (f *Fifo[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, end := f.tail, f.head; i != end; i++ {
			if !yield(f.items[f.slot(i)]) {
				return
			}
		}
	}
}

// Stats returns queue statistics (always collected).
func (f *Fifo[T]) Stats() *stats.Statistics {
	return f.stats
}

func (f *Fifo[T]) reject() {
	f.stats.Reject()
	if f.metrics != nil {
		f.metrics.recordReject()
	}
}
