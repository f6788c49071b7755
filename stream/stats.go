package stream

import (
	"sync/atomic"
)

// Stats tracks handle statistics
type Stats struct {
	// WritesTotal counts completed writes
	WritesTotal uint64
	// BytesTotal counts bytes accepted by the underlying writer
	BytesTotal uint64
	// FailedTotal counts writes that returned an error
	FailedTotal uint64
	// CancelledTotal counts writes abandoned before they started
	CancelledTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWrites atomically increments the completed write counter
func (s *Stats) IncrementWrites() {
	atomic.AddUint64(&s.WritesTotal, 1)
}

// AddBytes atomically adds n to the byte counter
func (s *Stats) AddBytes(n int) {
	if n > 0 {
		atomic.AddUint64(&s.BytesTotal, uint64(n))
	}
}

// IncrementFailed atomically increments the failed write counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// IncrementCancelled atomically increments the cancelled write counter
func (s *Stats) IncrementCancelled() {
	atomic.AddUint64(&s.CancelledTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WritesTotal, 0)
	atomic.StoreUint64(&s.BytesTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
	atomic.StoreUint64(&s.CancelledTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	WritesTotal    uint64
	BytesTotal     uint64
	FailedTotal    uint64
	CancelledTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WritesTotal:    atomic.LoadUint64(&s.WritesTotal),
		BytesTotal:     atomic.LoadUint64(&s.BytesTotal),
		FailedTotal:    atomic.LoadUint64(&s.FailedTotal),
		CancelledTotal: atomic.LoadUint64(&s.CancelledTotal),
	}
}
