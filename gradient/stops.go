// seehuhn.de/go/svgpptx - convert SVG graphics to PowerPoint DrawingML
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gradient

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/svgpptx/color"
)

// parseStops extracts and normalizes the stop list of a gradient
// element.
func parseStops(e Element) []Stop {
	children := e.Stops()
	stops := make([]Stop, 0, len(children))
	for _, se := range children {
		stops = append(stops, parseStop(se))
	}
	return normalizeStops(stops)
}

// parseStop reads one <stop> element.  The color and the opacity can
// be given either as presentation attributes or inside a style
// attribute; the presentation attribute wins.
func parseStop(se StopElement) Stop {
	s := Stop{Opacity: 1}

	if v, ok := se.Attr("offset"); ok {
		s.Pos = parseOffset(v)
	}

	colorStr, ok := se.Attr("stop-color")
	if !ok {
		colorStr, _ = stopStyle(se, "stop-color")
	}
	s.Color = color.Parse(colorStr)

	opacityStr, ok := se.Attr("stop-opacity")
	if !ok {
		opacityStr, ok = stopStyle(se, "stop-opacity")
	}
	if ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(opacityStr), 64); err == nil {
			s.Opacity = clamp01(v)
		}
	}

	return s
}

// stopStyle looks up a property in the element's style attribute.
func stopStyle(se StopElement, property string) (string, bool) {
	style, ok := se.Attr("style")
	if !ok {
		return "", false
	}
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(name) == property {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

// parseOffset reads a stop offset.  Percentages divide by 100; bare
// values larger than 1 are treated as percentages, too, since that is
// the only plausible reading.  The result is clamped to [0, 1].
func parseOffset(s string) float64 {
	s = strings.TrimSpace(s)
	if t, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return clamp01(v / 100)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if v > 1 {
		v /= 100
	}
	return clamp01(v)
}

// normalizeStops establishes the stop list invariants: sorted by
// position, at least two entries, first position 0 and last position
// 1.  Missing anchors are synthesized as copies of the boundary stops;
// an empty list becomes a black to white ramp.
func normalizeStops(stops []Stop) []Stop {
	if len(stops) == 0 {
		return []Stop{
			{Pos: 0, Color: color.Black, Opacity: 1},
			{Pos: 1, Color: color.White, Opacity: 1},
		}
	}

	for i := range stops {
		stops[i].Pos = clamp01(stops[i].Pos)
	}
	slices.SortStableFunc(stops, func(a, b Stop) int {
		switch {
		case a.Pos < b.Pos:
			return -1
		case a.Pos > b.Pos:
			return 1
		}
		return 0
	})

	if len(stops) == 1 {
		s := stops[0]
		first, last := s, s
		first.Pos = 0
		last.Pos = 1
		return []Stop{first, last}
	}

	if stops[0].Pos > 0 {
		first := stops[0]
		first.Pos = 0
		stops = append([]Stop{first}, stops...)
	}
	if last := stops[len(stops)-1]; last.Pos < 1 {
		last.Pos = 1
		stops = append(stops, last)
	}
	return stops
}

// resampleStops replaces a stop list by n evenly spaced stops whose
// colors are interpolated in L*a*b* between the surrounding original
// stops.  The input must satisfy the stop list invariants.
func resampleStops(stops []Stop, n int, cv *color.Converter) []Stop {
	out := make([]Stop, n)
	seg := 0
	for i := range n {
		pos := float64(i) / float64(n-1)
		for seg+2 < len(stops) && stops[seg+1].Pos <= pos {
			seg++
		}
		a, b := stops[seg], stops[seg+1]
		var t float64
		if b.Pos > a.Pos {
			t = (pos - a.Pos) / (b.Pos - a.Pos)
		} else if pos >= b.Pos {
			t = 1
		}
		t = clamp01(t)
		out[i] = Stop{
			Pos:     pos,
			Color:   cv.InterpolateLabBatch(a.Color, b.Color, []float64{t})[0],
			Opacity: a.Opacity + (b.Opacity-a.Opacity)*t,
		}
	}
	return out
}

// EnhanceSmoothness inserts L*a*b*-interpolated intermediate stops to
// smooth out banding in renderers that interpolate stops linearly in
// sRGB.  Level 1 resamples to at most 10 stops, level 2 to at most 20;
// level 0 and below leave the list unchanged.  Once a list has reached
// the target stop count the call is a no-op, so the operation is
// idempotent.
func (e *Engine) EnhanceSmoothness(stops []Stop, level int) []Stop {
	var target int
	switch {
	case level <= 0:
		return stops
	case level == 1:
		target = 10
	default:
		target = 20
	}
	if len(stops) >= target || len(stops) < 2 {
		return stops
	}
	return resampleStops(stops, target, e.Colors)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
