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

func TestGaugeFillsProportionally(t *testing.T) {
	g := &Gauge{Ratio: 0.5}
	g.Layout(Rect{0, 0, 10, 1})
	c := NewCanvas(10, 1)
	g.Paint(c)
	filled := 0
	for x := 0; x < 10; x++ {
		if c.cells[x].Rune == '█' {
			filled++
		}
	}
	require.Equal(t, 5, filled)
}

func TestGaugeClampsOutOfRangeRatio(t *testing.T) {
	g := &Gauge{Ratio: 1.5}
	g.Layout(Rect{0, 0, 10, 1})
	c := NewCanvas(10, 1)
	require.NotPanics(t, func() { g.Paint(c) })
}

func TestGaugeDefaultLabelShowsPercentage(t *testing.T) {
	g := &Gauge{Ratio: 0.42}
	g.Layout(Rect{0, 0, 20, 1})
	c := NewCanvas(20, 1)
	g.Paint(c)
	line := cellsToString(c, 0, 20)
	require.Contains(t, line, "42%")
}

func TestGaugeZeroWidthRectIsNoop(t *testing.T) {
	g := &Gauge{Ratio: 0.5}
	g.Layout(Rect{0, 0, 0, 1})
	c := NewCanvas(1, 1)
	require.NotPanics(t, func() { g.Paint(c) })
}
