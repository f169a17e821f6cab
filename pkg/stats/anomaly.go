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

package stats

import "math"

// madToStdDev scales a median absolute deviation to an approximately
// equivalent standard deviation for a normal distribution.
const madToStdDev = 1.4826

// AnomalyDetector flags samples far from the recent robust baseline using
// a median + MAD z-score, which tolerates the heavy-tailed, bursty
// distributions typical of system metrics better than mean/stddev.
type AnomalyDetector struct {
	baseline  *SlidingMedian
	zScoreCut float64
}

// NewAnomalyDetector returns a detector over the given window size that
// flags samples whose robust z-score exceeds zScoreCut (3.0 is a
// reasonable default).
func NewAnomalyDetector(window int, zScoreCut float64) *AnomalyDetector {
	if zScoreCut <= 0 {
		zScoreCut = 3.0
	}
	return &AnomalyDetector{baseline: NewSlidingMedian(window), zScoreCut: zScoreCut}
}

// Update folds in a new sample and reports whether it is anomalous
// relative to the baseline built from prior samples, along with its
// z-score. The sample is folded into the baseline regardless.
func (a *AnomalyDetector) Update(sample float64) (anomalous bool, zScore float64) {
	med := a.baseline.Median()
	mad := a.baseline.MAD()
	a.baseline.Update(sample)

	if a.baseline.Len() < 5 {
		return false, 0
	}
	std := mad * madToStdDev
	if std < 1e-9 {
		// Zero spread: any departure from the median is unbounded in
		// robust z-score terms.
		if sample == med {
			return false, 0
		}
		return true, math.Inf(1)
	}
	z := (sample - med) / std
	if z < 0 {
		z = -z
	}
	return z > a.zScoreCut, z
}
