// Package trend implements the trend analysis engine: the cache orchestrator,
// snapshot builder, history tracker, ranking engine, and comparison engine.
package trend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trendpulse/internal/cache"
	"trendpulse/internal/observability"
)

// Region identifies one independently-TTL'd cache tier. Each region's values
// are opaque structured records; no region depends on another region's shape.
type Region string

const (
	RegionSnapshot Region = "snapshot"
	RegionHistory  Region = "history"
	RegionRanking  Region = "ranking"
	RegionSummary  Region = "summary"
)

func (r Region) key(id uint) string {
	switch r {
	case RegionSnapshot:
		return cache.SnapshotKey(id)
	case RegionHistory:
		return cache.HistoryKey(id)
	case RegionRanking:
		return cache.RankingKey(id)
	case RegionSummary:
		return cache.SummaryKey(id)
	}
	return fmt.Sprintf("trend:%s:%d", r, id)
}

// TTL returns the region's time-to-live.
func (r Region) TTL() time.Duration {
	switch r {
	case RegionSnapshot:
		return cache.SnapshotTTL
	case RegionHistory:
		return cache.HistoryTTL
	case RegionRanking:
		return cache.RankingTTL
	case RegionSummary:
		return cache.SummaryTTL
	}
	return cache.SnapshotTTL
}

// Orchestrator fronts the byte store with typed, region-scoped access. It is
// strictly a memoization layer: every region is reconstructible by re-running
// the compute function that fills it.
type Orchestrator struct {
	store cache.Store
}

// NewOrchestrator returns an orchestrator over the given byte store.
func NewOrchestrator(store cache.Store) *Orchestrator {
	return &Orchestrator{store: store}
}

// Invalidate drops a region entry. Used by force refresh; the caller is
// expected to write through again afterwards.
func (o *Orchestrator) Invalidate(ctx context.Context, region Region, id uint) error {
	return o.store.Delete(ctx, region.key(id))
}

// Get reads a region entry. The second return value is false on a miss.
func Get[T any](ctx context.Context, o *Orchestrator, region Region, id uint) (T, bool, error) {
	var value T
	found, err := cache.GetJSON(ctx, o.store, region.key(id), &value)
	if err != nil {
		return value, false, err
	}
	if found {
		observability.CacheHits.WithLabelValues(string(region)).Inc()
	} else {
		observability.CacheMisses.WithLabelValues(string(region)).Inc()
	}
	return value, found, nil
}

// Put writes a region entry with the region's TTL. Writes are unconditional
// overwrites; concurrent writers rely on key isolation, not compare-and-swap.
func Put[T any](ctx context.Context, o *Orchestrator, region Region, id uint, value T) error {
	return cache.SetJSON(ctx, o.store, region.key(id), value, region.TTL())
}

// Cacheable recomputes a region value on a miss. Implementations must be
// pure with respect to the cache: running Compute twice yields equivalent
// values.
type Cacheable[T any] interface {
	Compute(ctx context.Context) (T, error)
	TTL() time.Duration
}

type cacheableFunc[T any] struct {
	ttl time.Duration
	fn  func(ctx context.Context) (T, error)
}

func (c cacheableFunc[T]) Compute(ctx context.Context) (T, error) { return c.fn(ctx) }
func (c cacheableFunc[T]) TTL() time.Duration                     { return c.ttl }

// NewCacheable wraps a compute function and TTL as a Cacheable.
func NewCacheable[T any](ttl time.Duration, fn func(ctx context.Context) (T, error)) Cacheable[T] {
	return cacheableFunc[T]{ttl: ttl, fn: fn}
}

// Resolve reads cache-first and, on a miss, computes the value and writes it
// through with the Cacheable's TTL. The write is best-effort: a failed cache
// write leaves the computed value authoritative and is not an error.
func Resolve[T any](ctx context.Context, o *Orchestrator, region Region, id uint, c Cacheable[T]) (T, error) {
	value, found, err := Get[T](ctx, o, region, id)
	if err != nil {
		return value, err
	}
	if found {
		return value, nil
	}

	value, err = c.Compute(ctx)
	if err != nil {
		return value, err
	}
	if err := cache.SetJSON(ctx, o.store, region.key(id), value, c.TTL()); err != nil {
		observability.Logger.WarnContext(ctx, "cache write-through failed",
			slog.String("region", string(region)),
			slog.String("error", err.Error()))
	}
	return value, nil
}
