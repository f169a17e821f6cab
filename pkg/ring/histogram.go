// Copyright 2026 The ptop Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ring

import "time"

// bucketBounds are the upper edges (exclusive) of the seven fixed latency
// buckets, in milliseconds. The last bucket has no upper bound.
var bucketBounds = [7]float64{1, 5, 10, 50, 100, 500, -1}

// NumBuckets is the fixed number of LatencyHistogram buckets.
const NumBuckets = 7

// LatencyHistogram is a fixed, seven-bucket exponential latency histogram
// with O(1) Record and no allocation after construction.
type LatencyHistogram struct {
	counts [NumBuckets]uint64
	total  uint64
}

// NewLatencyHistogram returns an empty histogram.
func NewLatencyHistogram() *LatencyHistogram {
	return &LatencyHistogram{}
}

// Record adds one observation of duration d.
func (h *LatencyHistogram) Record(d time.Duration) {
	ms := float64(d) / float64(time.Millisecond)
	for i, bound := range bucketBounds {
		if bound < 0 || ms < bound {
			h.counts[i]++
			h.total++
			return
		}
	}
}

// Count returns the number of observations in bucket i.
func (h *LatencyHistogram) Count(i int) uint64 { return h.counts[i] }

// Total returns the total number of observations recorded.
func (h *LatencyHistogram) Total() uint64 { return h.total }

// Percentile approximates the p-th percentile (0..100) by locating the
// bucket containing that rank and reporting its upper bound. This is a
// coarse approximation appropriate for a seven-bucket histogram, not an
// exact quantile.
func (h *LatencyHistogram) Percentile(p float64) time.Duration {
	if h.total == 0 {
		return 0
	}
	target := uint64(p / 100 * float64(h.total))
	var cum uint64
	for i, c := range h.counts {
		cum += c
		if cum > target {
			bound := bucketBounds[i]
			if bound < 0 {
				bound = 500 * 2 // open-ended top bucket: report 2x its floor
			}
			return time.Duration(bound * float64(time.Millisecond))
		}
	}
	return 500 * 2 * time.Millisecond
}
