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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/svgpptx/color"
)

// stop builds a DOMStop from attribute pairs.
func stop(kv ...string) *DOMStop {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return &DOMStop{Attributes: m}
}

// elem builds a DOMElement with the given tag, attribute pairs and
// stops.
func elem(tag string, stops []*DOMStop, kv ...string) *DOMElement {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return &DOMElement{Tag: tag, Attributes: m, StopNodes: stops}
}

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"0.5", 0.5},
		{"50%", 0.5},
		{" 50% ", 0.5},
		{"150%", 1},
		{"-0.5", 0},
		{"50", 0.5}, // bare value above 1 reads as a percentage
		{"garbage", 0},
		{"", 0},
	}
	for _, test := range cases {
		if got := parseOffset(test.in); got != test.want {
			t.Errorf("parseOffset(%q) = %g, want %g", test.in, got, test.want)
		}
	}
}

func TestParseStop(t *testing.T) {
	cases := []struct {
		name string
		se   *DOMStop
		want Stop
	}{
		{
			"attributes",
			stop("offset", "0.5", "stop-color", "red", "stop-opacity", "0.25"),
			Stop{Pos: 0.5, Color: color.RGB{255, 0, 0}, Opacity: 0.25},
		},
		{
			"style",
			stop("offset", "25%", "style", "stop-color: #00ff00; stop-opacity: 0.5"),
			Stop{Pos: 0.25, Color: color.RGB{0, 255, 0}, Opacity: 0.5},
		},
		{
			"attributeWinsOverStyle",
			stop("stop-color", "blue", "style", "stop-color: red"),
			Stop{Pos: 0, Color: color.RGB{0, 0, 255}, Opacity: 1},
		},
		{
			"defaults",
			stop(),
			Stop{Pos: 0, Color: color.Black, Opacity: 1},
		},
		{
			"opacityClamped",
			stop("stop-opacity", "7"),
			Stop{Pos: 0, Color: color.Black, Opacity: 1},
		},
		{
			"badOpacityIgnored",
			stop("stop-opacity", "x"),
			Stop{Pos: 0, Color: color.Black, Opacity: 1},
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			if got := parseStop(test.se); got != test.want {
				t.Errorf("got %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestNormalizeStops(t *testing.T) {
	red := color.RGB{255, 0, 0}
	blue := color.RGB{0, 0, 255}
	cases := []struct {
		name string
		in   []Stop
		want []Stop
	}{
		{
			"empty",
			nil,
			[]Stop{
				{Pos: 0, Color: color.Black, Opacity: 1},
				{Pos: 1, Color: color.White, Opacity: 1},
			},
		},
		{
			"single",
			[]Stop{{Pos: 0.5, Color: red, Opacity: 0.5}},
			[]Stop{
				{Pos: 0, Color: red, Opacity: 0.5},
				{Pos: 1, Color: red, Opacity: 0.5},
			},
		},
		{
			"unsorted",
			[]Stop{
				{Pos: 1, Color: blue, Opacity: 1},
				{Pos: 0, Color: red, Opacity: 1},
			},
			[]Stop{
				{Pos: 0, Color: red, Opacity: 1},
				{Pos: 1, Color: blue, Opacity: 1},
			},
		},
		{
			"missingAnchors",
			[]Stop{
				{Pos: 0.25, Color: red, Opacity: 1},
				{Pos: 0.75, Color: blue, Opacity: 1},
			},
			[]Stop{
				{Pos: 0, Color: red, Opacity: 1},
				{Pos: 0.25, Color: red, Opacity: 1},
				{Pos: 0.75, Color: blue, Opacity: 1},
				{Pos: 1, Color: blue, Opacity: 1},
			},
		},
		{
			"outOfRange",
			[]Stop{
				{Pos: -1, Color: red, Opacity: 1},
				{Pos: 2, Color: blue, Opacity: 1},
			},
			[]Stop{
				{Pos: 0, Color: red, Opacity: 1},
				{Pos: 1, Color: blue, Opacity: 1},
			},
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got := normalizeStops(test.in)
			if d := cmp.Diff(test.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestNormalizeStopsStable checks that stops sharing a position keep
// their document order.
func TestNormalizeStopsStable(t *testing.T) {
	red := color.RGB{255, 0, 0}
	blue := color.RGB{0, 0, 255}
	got := normalizeStops([]Stop{
		{Pos: 0.5, Color: red, Opacity: 1},
		{Pos: 0.5, Color: blue, Opacity: 1},
		{Pos: 0, Color: color.Black, Opacity: 1},
		{Pos: 1, Color: color.White, Opacity: 1},
	})
	if got[1].Color != red || got[2].Color != blue {
		t.Errorf("coincident stops reordered: %+v", got)
	}
}

func TestEnhanceSmoothness(t *testing.T) {
	e := &Engine{}
	base := []Stop{
		{Pos: 0, Color: color.RGB{255, 0, 0}, Opacity: 1},
		{Pos: 1, Color: color.RGB{0, 0, 255}, Opacity: 0},
	}

	cases := []struct {
		level int
		want  int
	}{
		{0, 2},
		{-1, 2},
		{1, 10},
		{2, 20},
		{5, 20},
	}
	for _, test := range cases {
		got := e.EnhanceSmoothness(append([]Stop(nil), base...), test.level)
		if len(got) != test.want {
			t.Errorf("level %d: got %d stops, want %d",
				test.level, len(got), test.want)
		}
	}
}

// TestEnhanceSmoothnessEndpoints checks that resampling keeps the
// boundary colors and opacities and produces increasing positions.
func TestEnhanceSmoothnessEndpoints(t *testing.T) {
	e := &Engine{}
	in := []Stop{
		{Pos: 0, Color: color.RGB{255, 0, 0}, Opacity: 1},
		{Pos: 1, Color: color.RGB{0, 0, 255}, Opacity: 0.5},
	}
	got := e.EnhanceSmoothness(in, 1)

	first, last := got[0], got[len(got)-1]
	approx := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff(0.0, first.Pos, approx); d != "" {
		t.Error("first position:", d)
	}
	if d := cmp.Diff(1.0, last.Pos, approx); d != "" {
		t.Error("last position:", d)
	}
	for ch := range 3 {
		if d := int(first.Color[ch]) - int(in[0].Color[ch]); d < -1 || d > 1 {
			t.Errorf("first color drifted: %v", first.Color)
			break
		}
	}
	for ch := range 3 {
		if d := int(last.Color[ch]) - int(in[1].Color[ch]); d < -1 || d > 1 {
			t.Errorf("last color drifted: %v", last.Color)
			break
		}
	}
	if d := cmp.Diff(0.5, last.Opacity, approx); d != "" {
		t.Error("last opacity:", d)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Pos <= got[i-1].Pos {
			t.Fatalf("positions not increasing at %d: %g after %g",
				i, got[i].Pos, got[i-1].Pos)
		}
	}
}

// TestEnhanceSmoothnessIdempotent checks that resampling an already
// resampled list changes nothing.
func TestEnhanceSmoothnessIdempotent(t *testing.T) {
	e := &Engine{}
	in := []Stop{
		{Pos: 0, Color: color.RGB{255, 0, 0}, Opacity: 1},
		{Pos: 1, Color: color.RGB{0, 0, 255}, Opacity: 1},
	}
	once := e.EnhanceSmoothness(in, 2)
	twice := e.EnhanceSmoothness(once, 2)
	if d := cmp.Diff(once, twice); d != "" {
		t.Error(d)
	}
}

func TestParseStopsFromElement(t *testing.T) {
	el := elem("linearGradient", []*DOMStop{
		stop("offset", "100%", "stop-color", "blue"),
		stop("offset", "0%", "stop-color", "red"),
	})
	got := parseStops(el)
	want := []Stop{
		{Pos: 0, Color: color.RGB{255, 0, 0}, Opacity: 1},
		{Pos: 1, Color: color.RGB{0, 0, 255}, Opacity: 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}
