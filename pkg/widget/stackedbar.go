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

import "github.com/charmbracelet/lipgloss"

// StackedBarSegment is one labeled portion of a StackedBar's total.
type StackedBarSegment struct {
	Label string
	Value float64
	Style lipgloss.Style
}

// StackedBar renders a single row split proportionally across
// segments, e.g. memory Used|Cached|Free. Segments are drawn in order
// left to right; any remainder from rounding goes to the last segment
// so the bar always fills its full width.
type StackedBar struct {
	Segments []StackedBarSegment
	Total    float64 // 0 sums Segments

	rect Rect
}

func (s *StackedBar) Measure(avail Size) Size { return Size{W: avail.W, H: 1} }

func (s *StackedBar) Layout(rect Rect) { s.rect = rect }

func (s *StackedBar) Paint(c *Canvas) {
	if s.rect.W <= 0 || s.rect.H <= 0 || len(s.Segments) == 0 {
		return
	}
	total := s.Total
	if total <= 0 {
		for _, seg := range s.Segments {
			total += seg.Value
		}
		if total <= 0 {
			return
		}
	}

	x := s.rect.X
	end := s.rect.X + s.rect.W
	for i, seg := range s.Segments {
		var width int
		if i == len(s.Segments)-1 {
			width = end - x
		} else {
			width = int(seg.Value / total * float64(s.rect.W))
		}
		for j := 0; j < width && x+j < end; j++ {
			c.Set(x+j, s.rect.Y, Cell{Rune: '█', Style: seg.Style})
		}
		x += width
	}
}
