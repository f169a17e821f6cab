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
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// BarChartItem is one labeled bar.
type BarChartItem struct {
	Label string
	Value float64
	Style lipgloss.Style
}

// BarChart renders one horizontal bar per row: a label column followed
// by a proportional bar, used for things like per-core CPU or
// per-process memory rankings.
type BarChart struct {
	Items    []BarChartItem
	LabelW   int // fixed label column width; 0 auto-sizes to the longest label
	MaxValue float64 // 0 auto-ranges from Items

	rect Rect
}

func (b *BarChart) Measure(avail Size) Size { return Size{W: avail.W, H: len(b.Items)} }

func (b *BarChart) Layout(rect Rect) { b.rect = rect }

func (b *BarChart) Paint(c *Canvas) {
	if b.rect.W <= 0 || b.rect.H <= 0 || len(b.Items) == 0 {
		return
	}
	labelW := b.LabelW
	if labelW == 0 {
		for _, it := range b.Items {
			if w := runewidth.StringWidth(it.Label); w > labelW {
				labelW = w
			}
		}
	}
	if labelW > b.rect.W-2 {
		labelW = max(0, b.rect.W-2)
	}
	barW := b.rect.W - labelW - 1
	if barW < 0 {
		barW = 0
	}

	maxVal := b.MaxValue
	if maxVal <= 0 {
		for _, it := range b.Items {
			if it.Value > maxVal {
				maxVal = it.Value
			}
		}
		if maxVal == 0 {
			maxVal = 1
		}
	}

	for i, it := range b.Items {
		if i >= b.rect.H {
			break
		}
		y := b.rect.Y + i
		c.WriteString(b.rect.X, y, truncateToWidth(it.Label, labelW), it.Style)
		ratio := math.Max(0, math.Min(1, it.Value/maxVal))
		filled := int(math.Round(ratio * float64(barW)))
		for x := 0; x < barW; x++ {
			r := '░'
			if x < filled {
				r = '█'
			}
			c.Set(b.rect.X+labelW+1+x, y, Cell{Rune: r, Style: it.Style})
		}
	}
}
