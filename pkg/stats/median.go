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

import "sort"

// maxSlidingWindow caps SlidingMedian's window so Update stays O(window)
// with a small constant instead of growing unbounded.
const maxSlidingWindow = 64

// SlidingMedian maintains the median of the last N samples using an
// insertion-sorted window. N is capped at maxSlidingWindow.
type SlidingMedian struct {
	window  []float64 // insertion order, oldest first
	sorted  []float64 // kept sorted for O(log n) median lookup
	cap     int
	nextOut int
}

// NewSlidingMedian returns a SlidingMedian over the last window samples.
func NewSlidingMedian(window int) *SlidingMedian {
	if window <= 0 {
		window = 8
	}
	if window > maxSlidingWindow {
		window = maxSlidingWindow
	}
	return &SlidingMedian{
		window: make([]float64, 0, window),
		sorted: make([]float64, 0, window),
		cap:    window,
	}
}

// Update folds in a new sample and returns the current median.
func (m *SlidingMedian) Update(sample float64) float64 {
	if len(m.window) < m.cap {
		m.window = append(m.window, sample)
		m.insertSorted(sample)
	} else {
		old := m.window[m.nextOut]
		m.window[m.nextOut] = sample
		m.nextOut = (m.nextOut + 1) % m.cap
		m.removeSorted(old)
		m.insertSorted(sample)
	}
	return m.Median()
}

func (m *SlidingMedian) insertSorted(v float64) {
	i := sort.SearchFloat64s(m.sorted, v)
	m.sorted = append(m.sorted, 0)
	copy(m.sorted[i+1:], m.sorted[i:])
	m.sorted[i] = v
}

func (m *SlidingMedian) removeSorted(v float64) {
	i := sort.SearchFloat64s(m.sorted, v)
	if i < len(m.sorted) && m.sorted[i] == v {
		m.sorted = append(m.sorted[:i], m.sorted[i+1:]...)
	}
}

// Median returns the current median, or 0 if no samples recorded.
func (m *SlidingMedian) Median() float64 {
	n := len(m.sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return m.sorted[n/2]
	}
	return (m.sorted[n/2-1] + m.sorted[n/2]) / 2
}

// MAD returns the median absolute deviation from the current median, used
// by AnomalyDetector as a robust scale estimate.
func (m *SlidingMedian) MAD() float64 {
	med := m.Median()
	if len(m.sorted) == 0 {
		return 0
	}
	devs := make([]float64, len(m.sorted))
	for i, v := range m.sorted {
		d := v - med
		if d < 0 {
			d = -d
		}
		devs[i] = d
	}
	sort.Float64s(devs)
	n := len(devs)
	if n%2 == 1 {
		return devs[n/2]
	}
	return (devs[n/2-1] + devs[n/2]) / 2
}

// Len reports how many samples are currently in the window.
func (m *SlidingMedian) Len() int { return len(m.window) }
