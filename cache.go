// cache.go: the cache facade — key routing, aggregation, lifecycle
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0

package foldcache

import (
	"sync"
	"sync/atomic"
)

// Cache is a fixed-capacity, thread-safe, approximate-LRU key-value cache.
// Its topology (fold count and per-fold capacity) is immutable once
// constructed by New. All exported methods are safe for concurrent use.
type Cache struct {
	folds         []*Fold
	hasher        Hasher
	totalCapacity int

	logger       Logger
	timeProvider TimeProvider
	metrics      MetricsCollector

	hits    atomic.Int64
	misses  atomic.Int64
	puts    atomic.Int64
	removes atomic.Int64

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New constructs a Cache from cfg, distributing TotalCapacity as evenly as
// possible across FoldCount folds. It returns an error — rather than
// panicking — for every invalid-argument case: a non-positive
// TotalCapacity, or a FoldCount that is negative or exceeds TotalCapacity.
// A zero FoldCount is not an error: Validate replaces it with
// DefaultFoldCount, clamped to TotalCapacity.
func New(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	folds := make([]*Fold, cfg.FoldCount)
	base := cfg.TotalCapacity / cfg.FoldCount
	remainder := cfg.TotalCapacity % cfg.FoldCount
	for i := range folds {
		size := base
		if i < remainder {
			size++
		}
		folds[i] = newFold(i, size, cfg.MetricsCollector, cfg.Logger)
	}

	c := &Cache{
		folds:         folds,
		hasher:        cfg.Hasher,
		totalCapacity: cfg.TotalCapacity,
		logger:        cfg.Logger,
		timeProvider:  cfg.TimeProvider,
		metrics:       cfg.MetricsCollector,
		stop:          make(chan struct{}),
	}

	if cfg.DecayInterval > 0 {
		c.wg.Add(1)
		go c.decayLoop(cfg.DecayInterval)
	}

	return c, nil
}

// foldIndex routes key to its owning fold: hash(key) mod number_of_folds.
func (c *Cache) foldIndex(key int64) int {
	h := c.hasher(key)
	return int(h % uint64(len(c.folds)))
}

// Get retrieves the value published for key. A zero key is always a miss
// and never mutates state.
func (c *Cache) Get(key int64) (value int64, ok bool) {
	if key == freeKey {
		return 0, false
	}

	start := c.timeProvider.Now()
	value, ok = c.folds[c.foldIndex(key)].get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	c.metrics.RecordGet(c.timeProvider.Now()-start, ok)
	return value, ok
}

// Put stores value under key, updating it in place if key is already
// live, or evicting the target fold's least-used slot if the fold is
// full. Eviction is silent — it is never an error. The only error this
// returns is a rejected zero key.
func (c *Cache) Put(key, value int64) error {
	if key == freeKey {
		c.logger.Warn("foldcache: rejected zero key", "operation", "Put")
		return NewErrZeroKey("Put")
	}

	start := c.timeProvider.Now()
	c.folds[c.foldIndex(key)].put(key, value)
	c.puts.Add(1)
	c.metrics.RecordPut(c.timeProvider.Now() - start)
	return nil
}

// Remove clears key if present, returning whether it was found. The only
// error this returns is a rejected zero key.
func (c *Cache) Remove(key int64) (wasPresent bool, err error) {
	if key == freeKey {
		c.logger.Warn("foldcache: rejected zero key", "operation", "Remove")
		return false, NewErrZeroKey("Remove")
	}

	start := c.timeProvider.Now()
	wasPresent = c.folds[c.foldIndex(key)].remove(key)
	if wasPresent {
		c.removes.Add(1)
	}
	c.metrics.RecordRemove(c.timeProvider.Now() - start)
	return wasPresent, nil
}

// Len returns the best-effort sum of live entries across all folds. It is
// sampled without a global lock, so under concurrent writers it may
// transiently disagree with the true instantaneous count, but it never
// exceeds Capacity at rest.
func (c *Cache) Len() int {
	total := 0
	for _, f := range c.folds {
		total += f.len()
	}
	return total
}

// Capacity returns the cache's total capacity, as given to New.
func (c *Cache) Capacity() int {
	return c.totalCapacity
}

// FoldSnapshot is one fold's contents at the instant its lock was held,
// returned by DebugSnapshot.
type FoldSnapshot struct {
	Index   int
	Entries []Slot
}

// DebugSnapshot acquires each fold's lock in index order and returns a
// per-fold consistent listing. It is not a consistent instant across the
// whole cache — a fold locked later may already reflect a write that
// happened after an earlier fold's snapshot was taken.
func (c *Cache) DebugSnapshot() []FoldSnapshot {
	out := make([]FoldSnapshot, len(c.folds))
	for i, f := range c.folds {
		out[i] = FoldSnapshot{Index: i, Entries: f.snapshot()}
	}
	return out
}

// CacheStats summarizes best-effort operation counters.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Puts      int64
	Removes   int64
	Size      int
	Capacity  int
	FoldCount int
}

// HitRatio returns Hits / (Hits + Misses) as a percentage, or 0 if there
// have been no Get calls yet.
func (s CacheStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Stats returns a snapshot of the cache's operation counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Puts:      c.puts.Load(),
		Removes:   c.removes.Load(),
		Size:      c.Len(),
		Capacity:  c.totalCapacity,
		FoldCount: len(c.folds),
	}
}

// Close stops the background janitor, if one was started, and waits for
// it to exit. Safe to call multiple times; a no-op if DecayInterval was
// never configured.
func (c *Cache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stop)
	})
	c.wg.Wait()
	return nil
}
