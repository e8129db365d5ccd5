package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsCounters(t *testing.T) {
	s := New()

	s.Write()
	s.Write()
	s.Read()
	s.Peek()
	s.Reject()

	assert.Equal(t, int64(2), s.Writes())
	assert.Equal(t, int64(1), s.Reads())
	assert.Equal(t, int64(1), s.Peeks())
	assert.Equal(t, int64(1), s.Rejects())
}

func TestStatisticsBulkCounters(t *testing.T) {
	s := New()

	s.AddWrites(5)
	s.AddReads(3)

	assert.Equal(t, int64(5), s.Writes())
	assert.Equal(t, int64(3), s.Reads())
}

func TestStatisticsSizeTracking(t *testing.T) {
	s := New()

	s.UpdateSize(3)
	s.UpdateSize(7)
	s.UpdateSize(2)

	assert.Equal(t, int64(2), s.CurrentSize())
	assert.Equal(t, int64(7), s.MaxSize(), "max size should keep the high-water mark")
}

func TestStatisticsRejectRate(t *testing.T) {
	s := New()

	assert.Equal(t, 0.0, s.RejectRate(), "no operations yet")

	s.Write()
	s.Write()
	s.Write()
	s.Reject()

	assert.InDelta(t, 0.25, s.RejectRate(), 1e-9)
}

func TestStatisticsUtilization(t *testing.T) {
	s := New()
	s.UpdateSize(5)

	assert.InDelta(t, 0.5, s.Utilization(10), 1e-9)
	assert.Equal(t, 0.0, s.Utilization(0), "zero capacity must not divide")
}

func TestStatisticsReset(t *testing.T) {
	s := New()

	s.Write()
	s.Read()
	s.Reject()
	s.UpdateSize(4)

	s.Reset()

	assert.Equal(t, int64(0), s.Writes())
	assert.Equal(t, int64(0), s.Reads())
	assert.Equal(t, int64(0), s.Rejects())
	assert.Equal(t, int64(0), s.CurrentSize())
	assert.Equal(t, int64(0), s.MaxSize())
}

func TestStatisticsSnapshot(t *testing.T) {
	s := New()

	s.Write()
	s.Write()
	s.Read()
	s.Peek()
	s.UpdateSize(1)

	summary := s.Snapshot()
	require.Equal(t, int64(2), summary.Writes)
	require.Equal(t, int64(1), summary.Reads)
	require.Equal(t, int64(1), summary.Peeks)
	require.Equal(t, int64(0), summary.Rejects)
	require.Equal(t, int64(1), summary.CurrentSize)
	require.Equal(t, int64(1), summary.MaxSize)
	assert.Positive(t, summary.Uptime)
}
