// cache_behavior_test.go: end-to-end behavioral tests against the Cache
// facade — eviction, reuse, rejection, and idempotence under realistic
// multi-operation sequences.
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0

package foldcache

import "testing"

// Basic put/get/eviction across a multi-fold cache: once the cache fills,
// exactly one of the inserted keys is evicted and everything else stays
// retrievable.
func TestCache_EvictsOnOverflowAcrossFolds(t *testing.T) {
	c, err := New(Config{TotalCapacity: 4, FoldCount: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	c.Put(1, 10)
	c.Put(2, 20)
	if v, ok := c.Get(1); !ok || v != 10 {
		t.Fatalf("Get(1) = (%d, %v), want (10, true)", v, ok)
	}
	if _, ok := c.Get(3); ok {
		t.Fatal("Get(3) hit before 3 was ever put")
	}
	c.Put(3, 30)
	c.Put(4, 40)
	c.Put(5, 50)

	if got := c.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}

	absent := 0
	for _, k := range []int64{1, 2, 3, 4, 5} {
		if _, ok := c.Get(k); !ok {
			absent++
		}
	}
	if absent != 1 {
		t.Fatalf("%d of {1,2,3,4,5} absent, want exactly 1", absent)
	}
}

// Repeated gets protect a key from eviction by raising its hit count.
func TestCache_RepeatedGetsProtectFromEviction(t *testing.T) {
	c, err := New(Config{TotalCapacity: 2, FoldCount: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	c.Put(1, 10)
	c.Put(2, 20)
	c.Get(1)
	c.Get(1)
	c.Get(1)
	c.Put(3, 30)

	if _, ok := c.Get(2); ok {
		t.Error("Get(2) hit, want it evicted as the fewest-hits key")
	}
	if v, ok := c.Get(1); !ok || v != 10 {
		t.Errorf("Get(1) = (%d, %v), want (10, true)", v, ok)
	}
	if v, ok := c.Get(3); !ok || v != 30 {
		t.Errorf("Get(3) = (%d, %v), want (30, true)", v, ok)
	}
}

// A single-slot fold correctly clears and reuses its one slot.
func TestCache_SingleSlotFoldClearsAndReuses(t *testing.T) {
	c, err := New(Config{TotalCapacity: 1, FoldCount: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	c.Put(1, 10)
	c.Put(2, 20)

	if _, ok := c.Get(1); ok {
		t.Error("Get(1) hit, want 1 evicted to make room for 2")
	}
	if v, ok := c.Get(2); !ok || v != 20 {
		t.Errorf("Get(2) = (%d, %v), want (20, true)", v, ok)
	}
}

// The zero key is always rejected and never mutates state.
func TestCache_ZeroKeyNeverMutatesState(t *testing.T) {
	c, err := New(Config{TotalCapacity: 4, FoldCount: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if err := c.Put(0, 99); !IsInvalidArgument(err) {
		t.Fatalf("Put(0, 99) error = %v, want an invalid-argument error", err)
	}
	if v, ok := c.Get(0); ok || v != 0 {
		t.Fatalf("Get(0) = (%d, %v), want (0, false)", v, ok)
	}
	if got := c.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0 (Put(0, ...) must not mutate state)", got)
	}
}

// Repeating a put or remove is observably equivalent (modulo hit
// counters) to doing it once.
func TestCache_RepeatedPutAndRemoveAreIdempotent(t *testing.T) {
	c, err := New(Config{TotalCapacity: 4, FoldCount: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	c.Put(1, 10)
	c.Put(1, 10)
	if v, ok := c.Get(1); !ok || v != 10 {
		t.Fatalf("Get(1) = (%d, %v), want (10, true) after a repeated put", v, ok)
	}
	if got := c.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1 after put(1,10) twice", got)
	}

	first, err := c.Remove(1)
	if err != nil || !first {
		t.Fatalf("first Remove(1) = (%v, %v), want (true, nil)", first, err)
	}
	second, err := c.Remove(1)
	if err != nil || second {
		t.Fatalf("second Remove(1) = (%v, %v), want (false, nil)", second, err)
	}
}

// The (capacity+1)-th distinct key into a single fold triggers exactly
// one eviction and leaves the live count at fold capacity.
func TestCache_SingleEvictionAtCapacityBoundary(t *testing.T) {
	c, err := New(Config{TotalCapacity: 3, FoldCount: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30)
	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3 before the boundary insert", got)
	}

	c.Put(4, 40)
	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3 (fold capacity) after the boundary insert", got)
	}

	present := 0
	for _, k := range []int64{1, 2, 3, 4} {
		if _, ok := c.Get(k); ok {
			present++
		}
	}
	if present != 3 {
		t.Fatalf("%d of {1,2,3,4} present, want exactly 3 (one eviction)", present)
	}
}
