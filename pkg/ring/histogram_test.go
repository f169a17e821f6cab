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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLatencyHistogramBuckets(t *testing.T) {
	h := NewLatencyHistogram()
	h.Record(500 * time.Microsecond) // bucket 0 (<1ms)
	h.Record(3 * time.Millisecond)   // bucket 1 (<5ms)
	h.Record(2 * time.Second)        // bucket 6 (>=500ms)

	require.EqualValues(t, 3, h.Total())
	require.EqualValues(t, 1, h.Count(0))
	require.EqualValues(t, 1, h.Count(1))
	require.EqualValues(t, 1, h.Count(6))
}

func TestLatencyHistogramPercentileEmpty(t *testing.T) {
	h := NewLatencyHistogram()
	require.Equal(t, time.Duration(0), h.Percentile(95))
}
