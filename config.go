// config.go: configuration for foldcache
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0

package foldcache

import (
	"time"

	"github.com/agilira/go-timecache"
)

// Config holds construction parameters for a Cache.
type Config struct {
	// TotalCapacity is the maximum number of live entries across all
	// folds. Must be > 0; zero is rejected, not defaulted.
	// DefaultConfig sets it to DefaultTotalCapacity.
	TotalCapacity int

	// FoldCount is the number of independent shards capacity is split
	// across. Must be between 1 and TotalCapacity. Default:
	// DefaultFoldCount (clamped to TotalCapacity if that's smaller).
	FoldCount int

	// Hasher maps a key to a non-negative fold-routing hash. If nil, a
	// splitmix64-style integer mixer is used.
	Hasher Hasher

	// DecayInterval, if non-zero, starts a background janitor goroutine
	// that halves every fold's hit counters once per interval, ageing
	// out stale usage history. If zero (the default), no goroutine is
	// started and hit counters only ever grow (saturating) until their
	// slot is freed or overwritten.
	DecayInterval time.Duration

	// Logger is used for cold-path diagnostics (rejected arguments,
	// recovered panics, janitor activity). Default: NoOpLogger.
	Logger Logger

	// TimeProvider supplies the current time used to measure Get/Put/
	// Remove latency for MetricsCollector. Default: a go-timecache-backed
	// system clock.
	TimeProvider TimeProvider

	// MetricsCollector receives per-operation metrics. Default:
	// NoOpMetricsCollector (zero overhead).
	MetricsCollector MetricsCollector
}

// Validate normalizes cfg in place, filling in defaults, and returns an
// error if a parameter cannot be made valid by defaulting (a non-positive
// TotalCapacity, or a FoldCount that doesn't fit TotalCapacity).
//
// New calls Validate automatically; it's exported so callers can inspect
// the normalized configuration ahead of time.
func (c *Config) Validate() error {
	if c.TotalCapacity <= 0 {
		return NewErrInvalidCapacity(c.TotalCapacity)
	}

	if c.FoldCount == 0 {
		c.FoldCount = DefaultFoldCount
		if c.FoldCount > c.TotalCapacity {
			c.FoldCount = c.TotalCapacity
		}
	}
	if c.FoldCount < 0 || c.FoldCount > c.TotalCapacity {
		return NewErrInvalidFoldCount(c.FoldCount, c.TotalCapacity)
	}

	if c.Hasher == nil {
		c.Hasher = defaultHasher
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults and
// DefaultTotalCapacity/DefaultFoldCount already applied.
func DefaultConfig() Config {
	return Config{
		TotalCapacity:    DefaultTotalCapacity,
		FoldCount:        DefaultFoldCount,
		Hasher:           defaultHasher,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default TimeProvider, backed by go-timecache's
// cached clock rather than time.Now() directly.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
