// slot.go: the slot value type and the hit-counter saturation helper
//
// A Slot is not a pointer into a Fold's arrays — a Fold has no array of
// slot structs. It is three parallel cells (keys, values, hits) at the
// same index across three separate slices, exactly as described by the
// publication protocol in fold.go. Slot itself is only the read-only value a
// scan returns once it has applied that protocol.
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0

package foldcache

import (
	"math"
	"sync/atomic"
)

// freeKey is the reserved sentinel meaning "this slot is unused". Callers
// may never use it as a key.
const freeKey int64 = 0

// Slot is a read-only snapshot of one fold slot, returned by DebugSnapshot.
type Slot struct {
	Key   int64
	Value int64
	Hits  uint32
}

// incrementHits atomically increments hits by one, saturating at
// math.MaxUint32 instead of wrapping. Saturating is simpler and cheaper
// on the hot read path than periodically resetting on overflow; the
// optional janitor in janitor.go covers aging instead.
func incrementHits(hits *atomic.Uint32) {
	for {
		h := hits.Load()
		if h == math.MaxUint32 {
			return
		}
		if hits.CompareAndSwap(h, h+1) {
			return
		}
	}
}
