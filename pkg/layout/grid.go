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

package layout

import (
	"math"
	"sort"

	"github.com/ptop-project/ptop/pkg/widget"
)

// DefaultGridSize is the character-cell size layout coordinates snap to.
const DefaultGridSize = 1

// DefaultMinPanelWidth and DefaultMinPanelHeight are the configurable
// minimum panel dimensions below which a panel is evicted rather than
// rendered too small to be useful.
const (
	DefaultMinPanelWidth  = 30
	DefaultMinPanelHeight = 6
)

// Panel is one named, priority-ordered region the Grid lays out.
type Panel struct {
	Name     string
	Priority int // lower evicted first when space is short
}

// Grid computes the adaptive two-row panel layout described by
// spec.md's layout engine: panels split across two rows (ceil(n/2) on
// top, the remainder on the bottom), 45%/55% height split, equal-ratio
// widths within a row, coordinates snapped to GridSize, and lowest
// priority panels evicted first when the minimum size can't be met.
type Grid struct {
	GridSize        int
	MinPanelWidth   int
	MinPanelHeight  int
	ExplodedPanel   string // "" means no panel is exploded
}

// NewGrid returns a Grid with spec-default snap size and minimums.
func NewGrid() *Grid {
	return &Grid{
		GridSize:       DefaultGridSize,
		MinPanelWidth:  DefaultMinPanelWidth,
		MinPanelHeight: DefaultMinPanelHeight,
	}
}

// Layout computes each visible panel's rect within termW x termH.
// Panels are given in priority order (any order; Layout sorts a copy).
// The returned map omits any panel evicted for insufficient space, and
// omits every panel but ExplodedPanel when explode mode is active.
func (g *Grid) Layout(panels []Panel, termW, termH int) map[string]widget.Rect {
	if g.ExplodedPanel != "" {
		for _, p := range panels {
			if p.Name == g.ExplodedPanel {
				return map[string]widget.Rect{p.Name: {X: 0, Y: 0, W: termW, H: termH}}
			}
		}
	}

	ordered := make([]Panel, len(panels))
	copy(ordered, panels)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	for {
		rects := g.computeRows(ordered, termW, termH)
		evicted := g.lowestPriorityViolator(ordered, rects)
		if evicted == "" {
			return rects
		}
		ordered = removePanel(ordered, evicted)
		if len(ordered) == 0 {
			return map[string]widget.Rect{}
		}
	}
}

func removePanel(panels []Panel, name string) []Panel {
	out := make([]Panel, 0, len(panels))
	for _, p := range panels {
		if p.Name != name {
			out = append(out, p)
		}
	}
	return out
}

// lowestPriorityViolator returns the name of the lowest-priority panel
// whose rect violates the minimum size, or "" if every rect satisfies
// it. ordered is sorted highest-priority-first, so scanning from the
// back finds the lowest-priority offender.
func (g *Grid) lowestPriorityViolator(ordered []Panel, rects map[string]widget.Rect) string {
	for i := len(ordered) - 1; i >= 0; i-- {
		r, ok := rects[ordered[i].Name]
		if ok && (r.W < g.MinPanelWidth || r.H < g.MinPanelHeight) {
			return ordered[i].Name
		}
	}
	return ""
}

// computeRows lays panels into two rows: ceil(n/2) on top, the
// remainder on bottom, 45%/55% height split, equal-ratio widths.
func (g *Grid) computeRows(panels []Panel, termW, termH int) map[string]widget.Rect {
	rects := make(map[string]widget.Rect, len(panels))
	if len(panels) == 0 {
		return rects
	}

	topCount := int(math.Ceil(float64(len(panels)) / 2))
	top := panels[:topCount]
	bottom := panels[topCount:]

	topH := g.snap(int(math.Round(float64(termH) * 0.45)))
	bottomH := termH - topH

	g.layoutRow(top, 0, termW, topH, rects)
	g.layoutRow(bottom, topH, termW, bottomH, rects)
	return rects
}

func (g *Grid) layoutRow(row []Panel, y, termW, h int, rects map[string]widget.Rect) {
	if len(row) == 0 {
		return
	}
	colW := termW / len(row)
	x := 0
	for i, p := range row {
		w := colW
		if i == len(row)-1 {
			w = termW - x // last column absorbs remainder
		}
		rects[p.Name] = g.snapRect(widget.Rect{X: x, Y: y, W: w, H: h}, termW, y+h)
		x += colW
	}
}

func (g *Grid) snap(v int) int {
	if g.GridSize <= 1 {
		return v
	}
	return (v / g.GridSize) * g.GridSize
}

func (g *Grid) snapRect(r widget.Rect, boundW, boundH int) widget.Rect {
	r.X = g.snap(r.X)
	r.Y = g.snap(r.Y)
	r.W = g.snap(r.W)
	r.H = g.snap(r.H)
	if r.X+r.W > boundW {
		r.W = boundW - r.X
	}
	if r.Y+r.H > boundH {
		r.H = boundH - r.Y
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}
