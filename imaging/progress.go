package imaging

import (
	"fmt"
	"sync"
)

// ProgressSnapshot is a point-in-time copy of the shared batch counters
type ProgressSnapshot struct {
	Processed  int
	Total      int
	Failed     int
	BytesSaved int64
}

// Description renders the live progress label with the running total
func (s ProgressSnapshot) Description() string {
	return fmt.Sprintf("Processing images (Total size reduction: %s)", FormatSize(s.BytesSaved))
}

// AggregateProgress accumulates results from concurrent workers. Every
// mutation is a combined add-and-snapshot under one mutex, so two workers
// finishing near-simultaneously cannot lose an update.
type AggregateProgress struct {
	mu         sync.Mutex
	total      int
	processed  int
	failed     int
	bytesSaved int64
}

// NewAggregateProgress creates the shared counter for a batch of total jobs
func NewAggregateProgress(total int) *AggregateProgress {
	return &AggregateProgress{total: total}
}

// Record counts one completed job and its size delta, returning the
// aggregate state as of this update. Negative deltas reduce the total.
func (p *AggregateProgress) Record(bytesSaved int64) ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed++
	p.bytesSaved += bytesSaved
	return p.snapshotLocked()
}

// RecordFailure counts one failed job. Failed jobs still count as
// processed so the final count matches the number of discovered files.
func (p *AggregateProgress) RecordFailure() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed++
	p.failed++
	return p.snapshotLocked()
}

// Snapshot returns the current aggregate state without recording anything
func (p *AggregateProgress) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *AggregateProgress) snapshotLocked() ProgressSnapshot {
	return ProgressSnapshot{
		Processed:  p.processed,
		Total:      p.total,
		Failed:     p.failed,
		BytesSaved: p.bytesSaved,
	}
}

// FormatSize renders a byte count with two decimals in the largest unit
// that keeps the scaled value below 1024, from B up to TB.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f TB", size)
}
