package fifo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/RobertoRoos/custom-containers/errors"
	"github.com/RobertoRoos/custom-containers/metric"
)

func TestFifoEmpty(t *testing.T) {
	q, err := New[float64](10)
	require.NoError(t, err, "Failed to create fifo")

	assert.Equal(t, 10, q.Capacity())
	assert.Equal(t, 0, q.Size())
	assert.Equal(t, 10, q.Free())
	assert.True(t, q.Empty())
	assert.False(t, q.Full())
}

func TestFifoInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := New[int](capacity)
		require.Error(t, err)
		assert.True(t, cerrors.IsInvalid(err))
	}
}

func TestFifoPushFull(t *testing.T) {
	q, err := New[float64](3)
	require.NoError(t, err)

	require.NoError(t, q.Push(1.0))
	require.NoError(t, q.Push(2.0))
	require.NoError(t, q.Push(3.0))

	assert.Equal(t, 3, q.Size())
	assert.Equal(t, 0, q.Free())
	assert.True(t, q.Full())

	err = q.Push(4.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrOutOfRange))
	assert.True(t, errors.Is(err, cerrors.ErrFull))

	// State must be unchanged after the rejected push
	assert.Equal(t, 3, q.Size())
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestFifoPopEmpty(t *testing.T) {
	q, err := New[int](3)
	require.NoError(t, err)

	_, err = q.Pop()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrEmpty))

	_, err = q.Peek()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrOutOfRange))
}

func TestFifoPushPop(t *testing.T) {
	q, err := New[float64](5)
	require.NoError(t, err)

	require.NoError(t, q.Push(1.0))
	require.NoError(t, q.Push(2.0))
	assert.Equal(t, 2, q.Size())

	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1, q.Size())

	v, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, 0, q.Size())

	// Refill to capacity; the write cursor wraps past the physical end
	for _, x := range []float64{3, 4, 5, 6, 7} {
		require.NoError(t, q.Push(x))
	}

	assert.Equal(t, 5, q.Size())
	assert.Equal(t, 0, q.Free())
	assert.True(t, q.Full())

	for _, want := range []float64{3, 4, 5, 6, 7} {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	assert.Equal(t, 0, q.Size())
	assert.Equal(t, 5, q.Free())
	assert.True(t, q.Empty())
}

func TestFifoPeek(t *testing.T) {
	q, err := New[string](3)
	require.NoError(t, err)

	require.NoError(t, q.Push("first"))
	require.NoError(t, q.Push("second"))

	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "first", v)
	assert.Equal(t, 2, q.Size(), "peek must not consume")

	v, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

// TestFifoWraparound drives the cursors past the capacity more than twice
// and verifies FIFO behavior is identical to the non-wrapped case.
func TestFifoWraparound(t *testing.T) {
	q, err := New[int](3)
	require.NoError(t, err)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	require.NoError(t, q.Push(3))

	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, q.Push(4))

	v, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.NoError(t, q.Push(5))

	// The three most recent values in order
	for _, want := range []int{3, 4, 5} {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, q.Empty())

	// Keep cycling so the cursors pass the capacity several more times
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Push(i))
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
		assert.Equal(t, 0, q.Size())
		assert.Equal(t, 3, q.Free())
	}
}

// TestFifoNormalization checks the internal cursor invariant: tail stays
// inside [0, capacity) while the head-tail difference stays exact.
func TestFifoNormalization(t *testing.T) {
	q, err := New[int](4)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		require.NoError(t, q.Push(i))
		_, err := q.Pop()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, q.tail, 0)
		assert.Less(t, q.tail, q.capacity)
		assert.Equal(t, q.Size(), q.head-q.tail)
	}
}

func TestFifoPushList(t *testing.T) {
	q, err := New[float64](5)
	require.NoError(t, err)

	src := []float64{1.0, 2.0, 3.0}

	require.NoError(t, q.PushList(src))
	assert.Equal(t, 3, q.Size())

	for _, want := range src {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, q.Empty())

	// Reusable after drain; the second transfer wraps physically
	require.NoError(t, q.PushList(src))
	assert.Equal(t, 3, q.Size())

	for _, want := range src {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, q.Empty())
}

func TestFifoPushListAllOrNothing(t *testing.T) {
	q, err := New[int](4)
	require.NoError(t, err)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))

	err = q.PushList([]int{3, 4, 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientSpace))

	// No partial copy: size and contents unchanged
	assert.Equal(t, 2, q.Size())
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestFifoPushListEmptySlice(t *testing.T) {
	q, err := New[int](3)
	require.NoError(t, err)

	require.NoError(t, q.PushList(nil))
	assert.Equal(t, 0, q.Size())
}

func TestFifoPopList(t *testing.T) {
	q, err := New[float64](5)
	require.NoError(t, err)

	require.NoError(t, q.Push(1.0))
	require.NoError(t, q.Push(2.0))
	require.NoError(t, q.Push(3.0))

	// Zero count means "everything queued"
	dst := make([]float64, 3)
	n, err := q.PopList(dst, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, dst)
	assert.Equal(t, 0, q.Size())

	require.NoError(t, q.Push(1.0))
	require.NoError(t, q.Push(2.0))
	require.NoError(t, q.Push(3.0))

	// Explicit count
	dst = make([]float64, 3)
	n, err = q.PopList(dst, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, dst)
	assert.Equal(t, 0, q.Size())
}

func TestFifoPopListPartial(t *testing.T) {
	q, err := New[int](5)
	require.NoError(t, err)

	require.NoError(t, q.PushList([]int{1, 2, 3, 4}))

	dst := make([]int, 2)
	n, err := q.PopList(dst, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 2}, dst)
	assert.Equal(t, 2, q.Size())

	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestFifoPopListAllOrNothing(t *testing.T) {
	q, err := New[int](5)
	require.NoError(t, err)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))

	dst := make([]int, 5)
	_, err = q.PopList(dst, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientItems))
	assert.Equal(t, 2, q.Size(), "failed pop must not consume")

	// Destination too small for the requested count
	short := make([]int, 1)
	_, err = q.PopList(short, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientSpace))
	assert.Equal(t, 2, q.Size())
}

func TestFifoPopListNegativeCount(t *testing.T) {
	q, err := New[int](5)
	require.NoError(t, err)

	require.NoError(t, q.Push(1))

	// A negative count is a precondition violation like any other: it must
	// be rejected before any copy, never reach the slice arithmetic
	dst := make([]int, 5)
	n, err := q.PopList(dst, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientItems))
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, q.Size(), "failed pop must not consume")

	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFifoPopListEmptyQueue(t *testing.T) {
	q, err := New[int](3)
	require.NoError(t, err)

	dst := make([]int, 3)
	n, err := q.PopList(dst, 0)
	require.NoError(t, err, "draining an empty queue is a no-op, not an error")
	assert.Equal(t, 0, n)
}

// TestFifoBulkWrapBoundary pushes the cursors near the physical end and
// verifies a bulk round trip that spans the wrap boundary preserves order.
func TestFifoBulkWrapBoundary(t *testing.T) {
	q, err := New[int](5)
	require.NoError(t, err)

	// Move the cursors close to the physical end
	require.NoError(t, q.PushList([]int{10, 20, 30, 40}))
	dst := make([]int, 4)
	n, err := q.PopList(dst, 0)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.True(t, q.Empty())

	// This transfer wraps: one run to the physical end, one from slot 0
	src := []int{7, 8, 9}
	require.NoError(t, q.PushList(src))
	assert.Equal(t, 3, q.Size())

	out := make([]int, 3)
	n, err = q.PopList(out, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, src, out)
	assert.True(t, q.Empty())
	assert.Equal(t, 5, q.Free())
}

func TestFifoClear(t *testing.T) {
	q, err := New[string](5)
	require.NoError(t, err)

	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))
	require.NoError(t, q.Push("c"))
	assert.Equal(t, 3, q.Size())

	q.Clear()

	assert.Equal(t, 0, q.Size())
	assert.True(t, q.Empty())
	assert.Equal(t, 5, q.Free())

	// Queue is fully usable after a clear
	require.NoError(t, q.Push("d"))
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "d", v)
}

func TestFifoValues(t *testing.T) {
	q, err := New[float64](5)
	require.NoError(t, err)

	require.NoError(t, q.Push(1.0))
	require.NoError(t, q.Push(2.0))
	require.NoError(t, q.Push(3.0))

	check := 1.0
	for v := range q.Values() {
		assert.Equal(t, check, v)
		check += 1.0
	}
	assert.Equal(t, 4.0, check, "iteration should visit all queued elements")

	// Iteration is non-consuming and restartable
	assert.Equal(t, 3, q.Size())
	count := 0
	for range q.Values() {
		count++
	}
	assert.Equal(t, 3, count)

	// Early break
	count = 0
	for range q.Values() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, 3, q.Size())
}

func TestFifoValuesWrapped(t *testing.T) {
	q, err := New[int](3)
	require.NoError(t, err)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	require.NoError(t, q.Push(3))
	_, err = q.Pop()
	require.NoError(t, err)
	require.NoError(t, q.Push(4))

	// Logical sequence spans the physical boundary
	var got []int
	for v := range q.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestFifoGenericTypes(t *testing.T) {
	type sample struct {
		ID   int
		Name string
	}

	q, err := New[sample](2)
	require.NoError(t, err)

	require.NoError(t, q.Push(sample{ID: 1, Name: "first"}))
	require.NoError(t, q.Push(sample{ID: 2, Name: "second"}))

	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, sample{ID: 1, Name: "first"}, v)
}

func TestFifoCapacityOne(t *testing.T) {
	q, err := New[int](1)
	require.NoError(t, err)

	require.NoError(t, q.Push(1))
	assert.True(t, q.Full())

	require.Error(t, q.Push(2))

	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, q.Empty())
}

func TestFifoStats(t *testing.T) {
	q, err := New[int](2)
	require.NoError(t, err)

	st := q.Stats()
	require.NotNil(t, st)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	_ = q.Push(3) // rejected

	assert.Equal(t, int64(2), st.Writes())
	assert.Equal(t, int64(1), st.Rejects())

	_, err = q.Peek()
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.Peeks())

	_, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.Reads())
	assert.Equal(t, int64(1), st.CurrentSize())
	assert.Equal(t, int64(2), st.MaxSize())
}

func TestFifoStatsBulk(t *testing.T) {
	q, err := New[int](5)
	require.NoError(t, err)

	require.NoError(t, q.PushList([]int{1, 2, 3}))
	dst := make([]int, 3)
	_, err = q.PopList(dst, 0)
	require.NoError(t, err)

	st := q.Stats()
	assert.Equal(t, int64(3), st.Writes())
	assert.Equal(t, int64(3), st.Reads())
	assert.Equal(t, int64(3), st.MaxSize())
}

func TestFifoWithMetrics(t *testing.T) {
	registry := metric.NewRegistry()

	q, err := New[int](3, WithMetrics(registry, "test-queue"))
	require.NoError(t, err)

	require.NoError(t, q.Push(1))
	_, err = q.Pop()
	require.NoError(t, err)

	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range metricFamilies {
		names[mf.GetName()] = true
	}
	assert.True(t, names["containers_fifo_pushes_total"])
	assert.True(t, names["containers_fifo_pops_total"])
	assert.True(t, names["containers_fifo_size"])
}

func TestFifoMetricsRegistrationConflict(t *testing.T) {
	registry := metric.NewRegistry()

	_, err := New[int](3, WithMetrics(registry, "dup"))
	require.NoError(t, err)

	// Same name on the same registry collides
	_, err = New[int](3, WithMetrics(registry, "dup"))
	require.Error(t, err)
	assert.True(t, cerrors.IsInvalid(err))
}
