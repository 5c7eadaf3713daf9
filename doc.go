// Package foldcache provides a fixed-capacity, thread-safe, approximate-LRU
// in-memory cache for integer keys and values, built for read-heavy,
// highly concurrent workloads.
//
// # Overview
//
// foldcache partitions its storage into independent shards called folds.
// Each fold owns a fixed-size, contiguous block of slots and a single write
// mutex; reads never take a lock. Within a fold, a slot is published to
// readers through a release-ordered store of its key, and readers confirm
// what they read by re-checking that key with an acquire load. This is the
// entire correctness mechanism: no reader ever blocks, and no reader can
// observe a value that was never paired with the key it matched.
//
// Eviction, when a fold is full, picks the slot with the lowest hit count
// in that fold (ties go to the lowest index) — an approximation of LRU
// driven by usage counting rather than access-order bookkeeping, because a
// true LRU list would require reordering a linked structure on every read,
// which is hostile to lock-free access.
//
// # Quick start
//
//	cache, err := foldcache.New(foldcache.Config{
//	    TotalCapacity: 10_000,
//	    FoldCount:     64,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
//	cache.Put(42, 100)
//	if value, ok := cache.Get(42); ok {
//	    fmt.Println(value)
//	}
//
// # Concurrency model
//
//   - Reads (Get): lock-free. Acquire-load the key, read the value, and
//     acquire-reload the key to confirm nothing changed underneath.
//   - Writes (Put, Remove): serialized per fold via a single mutex. Writes
//     to different folds never contend with each other.
//   - Eviction: performed by the writer holding the fold's lock. The
//     victim's key is cleared (published as free) before the slot is
//     reused, so a concurrent reader either sees the old key/value pair or
//     a free slot — never a torn mix of the two.
//
// Len is best-effort: it sums each fold's live count without a global
// barrier, so it may transiently disagree with the true instantaneous
// count by the number of folds with an in-flight write, but it never
// exceeds the cache's total capacity at rest.
//
// # What this cache is not
//
// foldcache does not implement strict LRU ordering, persistence, multi-key
// atomic operations, or a stable-snapshot iterator. It has no wire
// protocol, no file format, no CLI, and no environment-based
// configuration — it is a library, linked directly into a host process.
//
// # Error handling
//
// Construction and operations reject invalid arguments (a zero key, a
// non-positive capacity, a fold count that doesn't fit the capacity)
// synchronously, via a structured error with one of the FOLDCACHE_* codes
// in errors.go. Get has no error result: a zero key passed to Get is
// simply a miss. Evictions are silent — they are never errors. A cache
// miss is a distinct, non-error result, not an error.
//
// # Observability
//
// Config accepts an optional Logger, TimeProvider, and MetricsCollector.
// Left nil, Logger and MetricsCollector default to no-op implementations,
// and TimeProvider defaults to a go-timecache-backed cached system clock
// that stamps Get/Put/Remove latencies.
package foldcache
