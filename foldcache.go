// foldcache.go: package-level constants
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0

package foldcache

const (
	// Version of the foldcache library.
	Version = "v0.1.0-dev"

	// DefaultTotalCapacity is the total capacity set by DefaultConfig. A
	// Config.TotalCapacity left at zero is rejected by Validate, not
	// replaced by this value.
	DefaultTotalCapacity = 10_000

	// DefaultFoldCount is the fold count used when Config.FoldCount is left at
	// zero. Chosen so that, combined with DefaultTotalCapacity, each fold
	// holds a small, cache-line-friendly number of slots.
	DefaultFoldCount = 64
)
