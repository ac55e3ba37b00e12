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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertRadialCentered(t *testing.T) {
	el := elem("radialGradient", []*DOMStop{
		stop("offset", "0%", "stop-color", "white"),
		stop("offset", "100%", "stop-color", "black"),
	})

	e := &Engine{}
	got, err := e.ConvertRadial([]Element{el})
	if err != nil {
		t.Fatal(err)
	}
	want := `<a:gradFill flip="none" rotWithShape="1">` +
		`<a:gsLst>` +
		`<a:gs pos="0"><a:srgbClr val="000000"/></a:gs>` +
		`<a:gs pos="1000"><a:srgbClr val="FFFFFF"/></a:gs>` +
		`</a:gsLst>` +
		`<a:path path="circle">` +
		`<a:fillToRect l="50000" t="50000" r="50000" b="50000"/>` +
		`</a:path>` +
		`</a:gradFill>`
	if d := cmp.Diff([]string{want}, got); d != "" {
		t.Error(d)
	}
}

// TestConvertRadialOffCenterFocal checks that an off-center focal
// point switches to a shape path with a shifted fill-to-rect.
func TestConvertRadialOffCenterFocal(t *testing.T) {
	el := elem("radialGradient", []*DOMStop{
		stop("offset", "0", "stop-color", "white"),
		stop("offset", "1", "stop-color", "black"),
	}, "fx", "80%", "fy", "50%")

	e := &Engine{}
	got, err := e.ConvertRadial([]Element{el})
	if err != nil {
		t.Fatal(err)
	}
	want := `<a:path path="shape">` +
		`<a:fillToRect l="80000" t="50000" r="20000" b="50000"/>` +
		`</a:path>`
	if !strings.Contains(got[0], want) {
		t.Errorf("focal path wrong: %s", got[0])
	}
}

// TestConvertRadialStopOrder checks that a three stop ramp comes out
// reversed, with the interior position mirrored.
func TestConvertRadialStopOrder(t *testing.T) {
	el := elem("radialGradient", []*DOMStop{
		stop("offset", "0", "stop-color", "red"),
		stop("offset", "0.25", "stop-color", "lime"),
		stop("offset", "1", "stop-color", "blue"),
	})

	e := &Engine{}
	got, err := e.ConvertRadial([]Element{el})
	if err != nil {
		t.Fatal(err)
	}
	want := `<a:gsLst>` +
		`<a:gs pos="0"><a:srgbClr val="0000FF"/></a:gs>` +
		`<a:gs pos="750"><a:srgbClr val="00FF00"/></a:gs>` +
		`<a:gs pos="1000"><a:srgbClr val="FF0000"/></a:gs>` +
		`</a:gsLst>`
	if !strings.Contains(got[0], want) {
		t.Errorf("stop order wrong: %s", got[0])
	}
}

// TestConvertRadialMatrixTransform checks that a bare matrix transform
// moves the focal point while transform lists are ignored.
func TestConvertRadialMatrixTransform(t *testing.T) {
	stops := func() []*DOMStop {
		return []*DOMStop{
			stop("offset", "0", "stop-color", "white"),
			stop("offset", "1", "stop-color", "black"),
		}
	}

	// matrix(0.5,0,0,0.5,0,0) halves the explicit fx=0.8
	el := elem("radialGradient", stops(),
		"fx", "0.8", "gradientTransform", "matrix(0.5,0,0,0.5,0,0)")
	e := &Engine{}
	got, err := e.ConvertRadial([]Element{el})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got[0], `<a:fillToRect l="40000"`) {
		t.Errorf("matrix transform not applied: %s", got[0])
	}

	// a scale() list is not interpreted for radial gradients
	el = elem("radialGradient", stops(),
		"fx", "0.8", "gradientTransform", "scale(0.5)")
	got, err = e.ConvertRadial([]Element{el})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got[0], `<a:fillToRect l="80000"`) {
		t.Errorf("transform list should fall back to the identity: %s", got[0])
	}
}

func TestConvertRadialWrongKind(t *testing.T) {
	e := &Engine{}
	_, err := e.ConvertRadial([]Element{elem("linearGradient", nil)})
	if err == nil {
		t.Fatal("expected an error for a linearGradient element")
	}
	if !strings.Contains(err.Error(), "expected <radialGradient>") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestParseRadialCoords(t *testing.T) {
	cases := []struct {
		name string
		el   *DOMElement
		want [5]float64
	}{
		{
			"defaults",
			elem("radialGradient", nil),
			[5]float64{0.5, 0.5, 0.5, 0.5, 0.5},
		},
		{
			"explicit",
			elem("radialGradient", nil,
				"cx", "30%", "cy", "40%", "r", "25%", "fx", "0.1", "fy", "0.2"),
			[5]float64{0.3, 0.4, 0.25, 0.1, 0.2},
		},
		{
			"focalDefaultsToCenter",
			elem("radialGradient", nil, "cx", "0.2", "cy", "0.3"),
			[5]float64{0.2, 0.3, 0.5, 0.2, 0.3},
		},
		{
			"rxSpelling",
			elem("radialGradient", nil, "rx", "40%"),
			[5]float64{0.5, 0.5, 0.4, 0.5, 0.5},
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			if got := parseRadialCoords(test.el); got != test.want {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestReverseStops(t *testing.T) {
	in := []Stop{
		{Pos: 0, Opacity: 1},
		{Pos: 0.25, Opacity: 0.5},
		{Pos: 1, Opacity: 0},
	}
	got := reverseStops(in)
	want := []Stop{
		{Pos: 0, Opacity: 0},
		{Pos: 0.75, Opacity: 0.5},
		{Pos: 1, Opacity: 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestSpreadApply(t *testing.T) {
	cases := []struct {
		m    SpreadMethod
		f    float64
		want float64
	}{
		{PadSpread, 0.3, 0.3},
		{PadSpread, 1.5, 1},
		{PadSpread, -0.5, 0},
		{ReflectSpread, 0.3, 0.3},
		{ReflectSpread, 1.5, 0.5},
		{ReflectSpread, 2.5, 0.5},
		{ReflectSpread, -0.5, 0.5},
		{RepeatSpread, 0.3, 0.3},
		{RepeatSpread, 1.5, 0.5},
		{RepeatSpread, -0.25, 0.75},
	}
	for _, test := range cases {
		got := test.m.Apply(test.f)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%v.Apply(%g) = %g, want %g",
				test.m, test.f, got, test.want)
		}
	}
}

func TestParseSpread(t *testing.T) {
	cases := []struct {
		in   string
		want SpreadMethod
	}{
		{"pad", PadSpread},
		{"reflect", ReflectSpread},
		{"repeat", RepeatSpread},
		{"", PadSpread},
		{"bogus", PadSpread},
	}
	for _, test := range cases {
		if got := ParseSpread(test.in); got != test.want {
			t.Errorf("ParseSpread(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestRadialField(t *testing.T) {
	// centered gradient, unit square geometry
	coords := []float64{0.5, 0.5, 0.5, 0.5, 0.5}

	if got := RadialField(coords, 0.5, 0.5); got != 0 {
		t.Errorf("field at the center = %g, want 0", got)
	}
	if got := RadialField(coords, 1, 0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("field on the circle = %g, want 1", got)
	}

	// an off-center focal point pulls the contours towards it
	focal := []float64{0.5, 0.5, 0.5, 0.8, 0.5}
	left := RadialField(focal, 0.2, 0.5)
	right := RadialField(focal, 0.8, 0.5)
	if right >= left {
		t.Errorf("field not biased towards the focal point: left=%g right=%g",
			left, right)
	}
}
