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

package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSparklineRightAlignsNewestSample(t *testing.T) {
	s := &Sparkline{Samples: []float64{0, 100}}
	s.Layout(Rect{0, 0, 5, 1})
	c := NewCanvas(5, 1)
	s.Paint(c)
	require.Equal(t, ' ', c.cells[0].Rune)
	require.Equal(t, ' ', c.cells[1].Rune)
	require.Equal(t, ' ', c.cells[2].Rune)
	// The oldest sample sits at the range minimum, which maps to blank.
	require.Equal(t, ' ', c.cells[3].Rune)
	require.Equal(t, '█', c.cells[4].Rune)
}

func TestSparklineTruncatesToNewestColumns(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	s := &Sparkline{Samples: samples}
	s.Layout(Rect{0, 0, 3, 1})
	c := NewCanvas(3, 1)
	require.NotPanics(t, func() { s.Paint(c) })
}

func TestSparklineEmptySamplesNoop(t *testing.T) {
	s := &Sparkline{}
	s.Layout(Rect{0, 0, 5, 1})
	c := NewCanvas(5, 1)
	require.NotPanics(t, func() { s.Paint(c) })
	require.Equal(t, ' ', c.cells[0].Rune)
}

func TestSparklineFixedScaleClamps(t *testing.T) {
	s := &Sparkline{Samples: []float64{150}, Min: 0, Max: 100}
	s.Layout(Rect{0, 0, 1, 1})
	c := NewCanvas(1, 1)
	s.Paint(c)
	require.Equal(t, '█', c.cells[0].Rune)
}
