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
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/ptop-project/ptop/pkg/theme"
)

// Gauge paints a single-row progress bar with an overlaid label, colored
// by theme.PercentColor.
type Gauge struct {
	Ratio       float64 // 0..1
	Label       string  // overridden label; defaults to a percentage
	EmptyStyle  lipgloss.Style

	rect Rect
}

func (g *Gauge) Measure(avail Size) Size { return Size{W: avail.W, H: 1} }

func (g *Gauge) Layout(rect Rect) { g.rect = rect }

func (g *Gauge) Paint(c *Canvas) {
	if g.rect.W <= 0 || g.rect.H <= 0 {
		return
	}
	ratio := math.Max(0, math.Min(1, g.Ratio))
	filledStyle := lipgloss.NewStyle().Foreground(theme.PercentColor(ratio * 100))
	filled := int(math.Round(ratio * float64(g.rect.W)))

	for x := 0; x < g.rect.W; x++ {
		style := g.EmptyStyle
		r := '░'
		if x < filled {
			style = filledStyle
			r = '█'
		}
		c.Set(g.rect.X+x, g.rect.Y, Cell{Rune: r, Style: style})
	}

	label := g.Label
	if label == "" {
		label = fmt.Sprintf("%3.0f%%", ratio*100)
	}
	if len(label) > g.rect.W {
		return
	}
	lx := g.rect.X + (g.rect.W-len(label))/2
	c.WriteString(lx, g.rect.Y, label, filledStyle.Reverse(true))
}
