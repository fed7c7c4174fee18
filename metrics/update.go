package metrics

import "sync/atomic"

// SyncMetrics counts per-record outcomes of one catalog sync run.
// Skipped records are the difference between processed and inserted.
type SyncMetrics struct {
	ProcessedProducts atomic.Int32
	InsertedProducts  atomic.Int32
	ErroredProducts   atomic.Int32

	ProcessedPrices atomic.Int32
	InsertedPrices  atomic.Int32
	ErroredPrices   atomic.Int32
}

func NewSyncMetrics() *SyncMetrics {
	return &SyncMetrics{}
}
