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

func TestBarChartFullBarForMaxValue(t *testing.T) {
	b := &BarChart{Items: []BarChartItem{{Label: "c0", Value: 100}}, LabelW: 2}
	b.Layout(Rect{0, 0, 12, 1})
	c := NewCanvas(12, 1)
	b.Paint(c)
	require.Equal(t, '█', c.cells[11].Rune)
}

func TestBarChartAutoSizesLabelColumn(t *testing.T) {
	b := &BarChart{Items: []BarChartItem{{Label: "longlabel", Value: 1}, {Label: "x", Value: 1}}}
	b.Layout(Rect{0, 0, 20, 2})
	c := NewCanvas(20, 2)
	require.NotPanics(t, func() { b.Paint(c) })
}

func TestBarChartClampsRowsToItems(t *testing.T) {
	b := &BarChart{Items: []BarChartItem{{Label: "a", Value: 1}, {Label: "b", Value: 2}, {Label: "c", Value: 3}}}
	b.Layout(Rect{0, 0, 10, 2})
	c := NewCanvas(10, 2)
	require.NotPanics(t, func() { b.Paint(c) })
}

func TestStackedBarFillsFullWidth(t *testing.T) {
	s := &StackedBar{Segments: []StackedBarSegment{
		{Label: "used", Value: 30},
		{Label: "cached", Value: 20},
		{Label: "free", Value: 50},
	}}
	s.Layout(Rect{0, 0, 10, 1})
	c := NewCanvas(10, 1)
	s.Paint(c)
	for x := 0; x < 10; x++ {
		require.Equal(t, '█', c.cells[x].Rune)
	}
}

func TestStackedBarZeroTotalNoop(t *testing.T) {
	s := &StackedBar{Segments: []StackedBarSegment{{Label: "a", Value: 0}}}
	s.Layout(Rect{0, 0, 5, 1})
	c := NewCanvas(5, 1)
	require.NotPanics(t, func() { s.Paint(c) })
}
