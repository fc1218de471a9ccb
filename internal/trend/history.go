package trend

import (
	"context"
	"sort"
	"time"

	"trendpulse/internal/models"
)

// historyLimit caps the per-keyword history length. Eviction is FIFO by
// entry timestamp, not insertion order, so out-of-order writes still evict
// the oldest data point.
const historyLimit = 30

// HistoryTracker keeps a bounded, time-ordered trend history per keyword in
// the history cache region. The region is its own source of truth: losing it
// loses recent trend shape, which is acceptable.
type HistoryTracker struct {
	cache *Orchestrator
	limit int
}

// NewHistoryTracker returns a tracker over the given orchestrator.
func NewHistoryTracker(cache *Orchestrator) *HistoryTracker {
	return &HistoryTracker{cache: cache, limit: historyLimit}
}

// Append adds an entry to the keyword's history, truncating to the most
// recent entries by timestamp.
func (t *HistoryTracker) Append(ctx context.Context, keywordID uint, entry models.HistoryEntry) error {
	entries, _, err := Get[[]models.HistoryEntry](ctx, t.cache, RegionHistory, keywordID)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
	if len(entries) > t.limit {
		entries = entries[len(entries)-t.limit:]
	}

	return Put(ctx, t.cache, RegionHistory, keywordID, entries)
}

// Query returns the keyword's history entries recorded at or after since, in
// chronological order.
func (t *HistoryTracker) Query(ctx context.Context, keywordID uint, since time.Time) ([]models.HistoryEntry, error) {
	entries, _, err := Get[[]models.HistoryEntry](ctx, t.cache, RegionHistory, keywordID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if !e.RecordedAt.Before(since) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
