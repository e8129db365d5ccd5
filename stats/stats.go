// Package stats tracks container operation statistics. Statistics are
// always collected by both container types so that basic observability is
// available without any external dependency.
package stats

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks container operation counters and size history.
type Statistics struct {
	// Atomic counters for thread-safe updates
	writes  int64
	reads   int64
	peeks   int64
	rejects int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// New creates a new statistics tracker.
func New() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Write records a successful write operation (push, assign, fill).
func (s *Statistics) Write() {
	atomic.AddInt64(&s.writes, 1)
}

// AddWrites records n successful write operations at once.
func (s *Statistics) AddWrites(n int64) {
	atomic.AddInt64(&s.writes, n)
}

// Read records a successful read operation (pop, get).
func (s *Statistics) Read() {
	atomic.AddInt64(&s.reads, 1)
}

// AddReads records n successful read operations at once.
func (s *Statistics) AddReads(n int64) {
	atomic.AddInt64(&s.reads, n)
}

// Peek records a non-consuming read operation.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Reject records an operation refused because a capacity or size
// precondition was violated.
func (s *Statistics) Reject() {
	atomic.AddInt64(&s.rejects, 1)
}

// UpdateSize updates the current container size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Writes returns the total number of write operations.
func (s *Statistics) Writes() int64 {
	return atomic.LoadInt64(&s.writes)
}

// Reads returns the total number of read operations.
func (s *Statistics) Reads() int64 {
	return atomic.LoadInt64(&s.reads)
}

// Peeks returns the total number of peek operations.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Rejects returns the total number of rejected operations.
func (s *Statistics) Rejects() int64 {
	return atomic.LoadInt64(&s.rejects)
}

// CurrentSize returns the current number of items in the container.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the maximum number of items the container has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of writes per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Writes()) / elapsed.Seconds()
}

// ReadThroughput returns the average number of reads per second.
func (s *Statistics) ReadThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Reads()) / elapsed.Seconds()
}

// RejectRate returns the fraction of attempted operations that were
// rejected (0.0 to 1.0).
func (s *Statistics) RejectRate() float64 {
	attempts := s.Writes() + s.Reads() + s.Rejects()
	if attempts == 0 {
		return 0.0
	}

	return float64(s.Rejects()) / float64(attempts)
}

// Utilization returns the current container utilization as a fraction of
// capacity (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the container has been tracked.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.writes, 0)
	atomic.StoreInt64(&s.reads, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.rejects, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// Summary is a snapshot of all statistics.
type Summary struct {
	Writes         int64         `json:"writes"`
	Reads          int64         `json:"reads"`
	Peeks          int64         `json:"peeks"`
	Rejects        int64         `json:"rejects"`
	CurrentSize    int64         `json:"current_size"`
	MaxSize        int64         `json:"max_size"`
	Throughput     float64       `json:"throughput"`
	ReadThroughput float64       `json:"read_throughput"`
	RejectRate     float64       `json:"reject_rate"`
	Uptime         time.Duration `json:"uptime"`
}

// Snapshot returns a snapshot of all statistics.
func (s *Statistics) Snapshot() Summary {
	return Summary{
		Writes:         s.Writes(),
		Reads:          s.Reads(),
		Peeks:          s.Peeks(),
		Rejects:        s.Rejects(),
		CurrentSize:    s.CurrentSize(),
		MaxSize:        s.MaxSize(),
		Throughput:     s.Throughput(),
		ReadThroughput: s.ReadThroughput(),
		RejectRate:     s.RejectRate(),
		Uptime:         s.Uptime(),
	}
}
