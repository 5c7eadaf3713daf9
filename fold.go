// fold.go: an independent cache shard — the unit of locking and storage
//
// A Fold owns a fixed-size, contiguous block of slots laid out as three
// parallel arrays (keys, values, hits) rather than an array of slot
// structs, so that the whole key array — the thing every reader touches —
// stays dense and cache-line-friendly. Reads never take a lock; writes
// (Put, Remove, and eviction) are serialized by a single mutex per fold.
//
// The correctness of the lock-free read path rests entirely on the
// publication protocol below:
//
//   - A writer publishes a new key only after its value has been written,
//     using a release store on the key cell.
//   - A writer clears a key (eviction or Remove) with a release store of
//     zero before the slot is ever reused for a different key.
//   - A reader acquire-loads the key, reads the value, and acquire-reloads
//     the key to confirm it is unchanged. A confirmed match guarantees the
//     value read belongs to that key, because the writer never reuses a
//     slot without first clearing it to zero.
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0

package foldcache

import (
	"sync"
	"sync/atomic"
)

// Fold is one independently-locked shard of a Cache.
type Fold struct {
	index int

	mu        sync.Mutex
	keys      []atomic.Int64
	values    []int64
	hits      []atomic.Uint32
	liveCount atomic.Int32

	metrics MetricsCollector
	logger  Logger
}

func newFold(index, slotCount int, metrics MetricsCollector, logger Logger) *Fold {
	return &Fold{
		index:   index,
		keys:    make([]atomic.Int64, slotCount),
		values:  make([]int64, slotCount),
		hits:    make([]atomic.Uint32, slotCount),
		metrics: metrics,
		logger:  logger,
	}
}

// get scans the fold lock-free and returns the value published under key,
// if any. See the publication protocol above: a candidate slot's value is
// only trusted once the key has been confirmed unchanged after the read.
func (f *Fold) get(key int64) (int64, bool) {
	for i := range f.keys {
		if f.keys[i].Load() != key {
			continue
		}

		// Candidate found. Read the value, then reconfirm the key. One
		// retry covers a writer reusing this exact slot mid-read; a
		// second failure means we give up on this slot for this pass
		// rather than spin.
		for attempt := 0; attempt < 2; attempt++ {
			v := f.values[i]
			if f.keys[i].Load() == key {
				incrementHits(&f.hits[i])
				return v, true
			}
		}
		return 0, false
	}
	return 0, false
}

// put inserts or updates key under the fold's write lock, evicting the
// least-used live slot if the fold is full. Panics during the critical
// section are recovered and logged rather than left to propagate, so a
// misbehaving caller (e.g. a panicking MetricsCollector) can't wedge the
// fold for every future writer.
func (f *Fold) put(key, value int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.recoverPoisoning("put")

	// Scan 1: update in place if the key is already live here. The key
	// cell is the reader's only synchronization point (see Fold.get), so
	// even though the key itself is unchanged, it must be re-stored after
	// the value write: that release store is what gives a concurrent
	// reader's acquire-reload something to happen-before against.
	for i := range f.keys {
		if f.keys[i].Load() == key {
			f.values[i] = value
			f.keys[i].Store(key)
			incrementHits(&f.hits[i])
			return
		}
	}

	// Scan 2: claim a free slot if one exists.
	for i := range f.keys {
		if f.keys[i].Load() == freeKey {
			f.values[i] = value
			f.hits[i].Store(1)
			f.keys[i].Store(key)
			f.liveCount.Add(1)
			return
		}
	}

	// Scan 3: the fold is full. Evict the least-used slot, clearing its
	// key before reusing it so a concurrent reader never observes a slot
	// whose key is the old key but whose value has already changed.
	victim := f.selectVictim()
	f.keys[victim].Store(freeKey)
	f.values[victim] = value
	f.hits[victim].Store(1)
	f.keys[victim].Store(key)
	f.metrics.RecordEviction()
}

// selectVictim returns the index of the live slot with the lowest hit
// count, ties broken by lowest index. Called only when every slot is
// live, under the write lock.
func (f *Fold) selectVictim() int {
	victim := 0
	min := f.hits[0].Load()
	for i := 1; i < len(f.hits); i++ {
		if h := f.hits[i].Load(); h < min {
			min = h
			victim = i
		}
	}
	f.metrics.RecordEvictionScan(len(f.hits))
	return victim
}

// remove clears key under the fold's write lock, if present. Returns
// whether the key was found.
func (f *Fold) remove(key int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.recoverPoisoning("remove")

	for i := range f.keys {
		if f.keys[i].Load() == key {
			f.keys[i].Store(freeKey)
			f.hits[i].Store(0)
			f.liveCount.Add(-1)
			return true
		}
	}
	return false
}

// decay halves every slot's hit counter under the write lock, aging out
// stale usage history. Each counter is updated via compare-and-swap rather
// than a plain store, because a concurrent Get can still be incrementing
// it lock-free while the janitor runs.
func (f *Fold) decay() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.hits {
		for {
			h := f.hits[i].Load()
			if f.hits[i].CompareAndSwap(h, h/2) {
				break
			}
		}
	}
	f.metrics.RecordDecay(f.index)
}

// len returns the fold's live entry count. Safe to call without the lock;
// it is the primitive Cache.Len sums to produce its best-effort total.
func (f *Fold) len() int {
	return int(f.liveCount.Load())
}

// snapshot returns every live slot in this fold, locked for the duration of
// the scan. It is consistent for this fold alone, not across the whole
// Cache — see Cache.DebugSnapshot.
func (f *Fold) snapshot() []Slot {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Slot, 0, f.liveCount.Load())
	for i := range f.keys {
		k := f.keys[i].Load()
		if k == freeKey {
			continue
		}
		out = append(out, Slot{Key: k, Value: f.values[i], Hits: f.hits[i].Load()})
	}
	return out
}

// recoverPoisoning swallows a panic raised inside a locked critical
// section and logs it. Go's sync.Mutex has no poisoning concept: once
// this function returns, the deferred Unlock still runs and the next
// acquirer proceeds against whatever partial state the panic left
// behind, rather than every future acquirer observing a permanently
// poisoned lock.
func (f *Fold) recoverPoisoning(operation string) {
	if r := recover(); r != nil {
		f.logger.Error("foldcache: recovered panic in fold operation", "fold_index", f.index, "operation", operation, "panic", r)
	}
}
