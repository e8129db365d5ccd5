package fifo

import (
	"fmt"
	"testing"
)

// BenchmarkFifoPushPop benchmarks single-element cycles across capacities.
func BenchmarkFifoPushPop(b *testing.B) {
	capacities := []int{16, 256, 4096}

	for _, capacity := range capacities {
		b.Run(fmt.Sprintf("Capacity_%d", capacity), func(b *testing.B) {
			q, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = q.Push(i)
				_, _ = q.Pop()
			}
		})
	}
}

// BenchmarkFifoPushList benchmarks bulk enqueue across batch sizes,
// including transfers that span the wrap boundary.
func BenchmarkFifoPushList(b *testing.B) {
	batchSizes := []int{1, 8, 64, 512}

	for _, batchSize := range batchSizes {
		b.Run(fmt.Sprintf("BatchSize_%d", batchSize), func(b *testing.B) {
			q, err := New[int](1024)
			if err != nil {
				b.Fatal(err)
			}

			src := make([]int, batchSize)
			for i := range src {
				src[i] = i
			}
			dst := make([]int, batchSize)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := q.PushList(src); err != nil {
					b.Fatal(err)
				}
				if _, err := q.PopList(dst, batchSize); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFifoValues benchmarks non-consuming iteration.
func BenchmarkFifoValues(b *testing.B) {
	q, err := New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		_ = q.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range q.Values() {
			sum += v
		}
		_ = sum
	}
}
