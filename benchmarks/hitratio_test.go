// hitratio_test.go: hit-ratio characterization across Zipf skew and key
// space size, not a throughput benchmark.
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0

package benchmarks

import "testing"

// TestHitRatioExtended averages hit ratio over several runs for a stable
// reading under the default medium cache/key-space configuration.
func TestHitRatioExtended(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping extended hit ratio test in short mode")
	}

	const runs = 10
	const requestsPerRun = 100_000

	totalHits := 0
	totalRequests := 0

	for run := 0; run < runs; run++ {
		c := newBenchCache(t, mediumCacheSize)

		zipf := NewZipfGenerator(1.0, 1.0, uint64(mediumKeySpace-1))
		for i := 0; i < mediumKeySpace; i++ {
			c.Put(zipf.Next(), int64(i))
		}

		zipf = NewZipfGenerator(1.0, 1.0, uint64(mediumKeySpace-1))
		hits := 0
		for i := 0; i < requestsPerRun; i++ {
			if _, ok := c.Get(zipf.Next()); ok {
				hits++
			}
		}

		totalHits += hits
		totalRequests += requestsPerRun
		c.Close()
	}

	avgHitRatio := float64(totalHits) / float64(totalRequests) * 100
	t.Logf("foldcache Average Hit Ratio (%d runs): %.2f%% (total hits: %d/%d)",
		runs, avgHitRatio, totalHits, totalRequests)
}

// TestHitRatioDifferentWorkloads tests hit ratio under different access
// patterns: Zipf skew and key space size.
func TestHitRatioDifferentWorkloads(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping workload hit ratio test in short mode")
	}

	workloads := []struct {
		name     string
		s        float64 // Zipf exponent (higher = more skewed)
		keySpace int
	}{
		{"Highly Skewed (s=1.5)", 1.5, mediumKeySpace},
		{"Moderate (s=1.0, raised to 1.01)", 1.0, mediumKeySpace},
		{"Less Skewed (s=1.01)", 1.01, mediumKeySpace},
		{"Large KeySpace", 1.0, largeKeySpace},
	}

	for _, wl := range workloads {
		c := newBenchCache(t, mediumCacheSize)

		zipf := NewZipfGenerator(wl.s, 1.0, uint64(wl.keySpace-1))
		for i := 0; i < wl.keySpace/2; i++ {
			c.Put(zipf.Next(), int64(i))
		}

		zipf = NewZipfGenerator(wl.s, 1.0, uint64(wl.keySpace-1))
		hits := 0
		requests := 100_000
		for i := 0; i < requests; i++ {
			if _, ok := c.Get(zipf.Next()); ok {
				hits++
			}
		}

		hitRatio := float64(hits) / float64(requests) * 100
		t.Logf("%s: %.2f%% (hits: %d/%d)", wl.name, hitRatio, hits, requests)
		c.Close()
	}
}
