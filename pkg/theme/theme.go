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

// Package theme centralizes ptop's color palette. Widgets never embed
// inline RGB literals; they ask this package for a named color or for
// PercentColor's perceptually-uniform gradient.
package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with a float32 alpha channel; alpha 0 means "terminal
// default", never RGB(0,0,0) black.
type RGBA struct {
	R, G, B, A float32
}

// Palette is ptop's fixed set of named colors.
type Palette struct {
	Background RGBA
	Foreground RGBA
	Border     RGBA
	BorderFocus RGBA
	Muted      RGBA
	Good       RGBA
	Warn       RGBA
	Bad        RGBA
}

// Default is the compiled-in palette; spec.md centralizes themes here
// rather than letting rendering code pick inline colors.
var Default = Palette{
	Background:  RGBA{0.09, 0.09, 0.11, 1},
	Foreground:  RGBA{0.92, 0.93, 0.94, 1},
	Border:      RGBA{0.35, 0.37, 0.42, 1},
	BorderFocus: RGBA{0.36, 0.68, 0.96, 1},
	Muted:       RGBA{0.55, 0.57, 0.6, 1},
	Good:        RGBA{0.31, 0.78, 0.47, 1},
	Warn:        RGBA{0.94, 0.77, 0.25, 1},
	Bad:         RGBA{0.92, 0.33, 0.33, 1},
}

// gradientStops is the cyan->green->yellow->orange->red 5-stop ramp
// percent_color interpolates across, in CIELAB space so the midpoints
// don't muddy the way naive RGB lerp would.
var gradientStops = [5]colorful.Color{
	mustHex("#22d3ee"), // cyan
	mustHex("#22c55e"), // green
	mustHex("#eab308"), // yellow
	mustHex("#f97316"), // orange
	mustHex("#ef4444"), // red
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// PercentColor maps p in [0,100] to a point along the 5-stop gradient,
// blending adjacent stops in CIELAB space.
func PercentColor(p float64) lipgloss.Color {
	p = math.Max(0, math.Min(100, p))
	segment := p / 100 * float64(len(gradientStops)-1)
	i := int(math.Floor(segment))
	if i >= len(gradientStops)-1 {
		i = len(gradientStops) - 2
	}
	t := segment - float64(i)
	blended := gradientStops[i].BlendLab(gradientStops[i+1], t)
	return lipgloss.Color(blended.Hex())
}

// ToLipgloss converts a palette RGBA into a lipgloss.Color, mapping
// alpha 0 to the terminal's default reset color rather than black.
func ToLipgloss(c RGBA) lipgloss.TerminalColor {
	if c.A == 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hex())
}

// relativeLuminance implements the WCAG definition over sRGB channels
// in [0,1].
func relativeLuminance(c RGBA) float64 {
	lin := func(v float32) float64 {
		f := float64(v)
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio computes the WCAG contrast ratio between two colors,
// always >= 1.
func ContrastRatio(fg, bg RGBA) float64 {
	l1 := relativeLuminance(fg) + 0.05
	l2 := relativeLuminance(bg) + 0.05
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return l1 / l2
}

// AssertContrast reports whether fg over bg meets WCAG AA for normal
// text (ratio >= 4.5). Used by a test asserting that the default
// Foreground over Background pairing meets the threshold; not called
// at runtime since the palette is fixed at compile time.
func AssertContrast(fg, bg RGBA) bool {
	return ContrastRatio(fg, bg) >= 4.5
}
