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
	"github.com/charmbracelet/lipgloss"
	"github.com/ptop-project/ptop/pkg/theme"
)

// sparkBlocks are the nine levels sparkline bucketing quantizes each
// sample column to: a blank followed by the eight eighth-block glyphs.
var sparkBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a ring buffer of recent samples as one row of block
// glyphs, one column per sample, right-aligned so the newest sample is
// always in the rightmost column.
type Sparkline struct {
	Samples []float64 // oldest first
	Min, Max float64  // fixed scale; if Max <= Min, auto-ranges from Samples
	Colored bool      // color each column by its own percent-of-range

	rect Rect
}

func (s *Sparkline) Measure(avail Size) Size { return Size{W: avail.W, H: 1} }

func (s *Sparkline) Layout(rect Rect) { s.rect = rect }

func (s *Sparkline) Paint(c *Canvas) {
	if s.rect.W <= 0 || s.rect.H <= 0 || len(s.Samples) == 0 {
		return
	}
	lo, hi := s.Min, s.Max
	if hi <= lo {
		lo, hi = s.Samples[0], s.Samples[0]
		for _, v := range s.Samples {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi == lo {
			hi = lo + 1
		}
	}

	samples := s.Samples
	if len(samples) > s.rect.W {
		samples = samples[len(samples)-s.rect.W:]
	}
	offset := s.rect.W - len(samples)

	style := lipgloss.NewStyle()
	for i, v := range samples {
		ratio := (v - lo) / (hi - lo)
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		idx := int(ratio * float64(len(sparkBlocks)-1))
		cellStyle := style
		if s.Colored {
			cellStyle = lipgloss.NewStyle().Foreground(theme.PercentColor(ratio * 100))
		}
		c.Set(s.rect.X+offset+i, s.rect.Y, Cell{Rune: sparkBlocks[idx], Style: cellStyle})
	}
}
