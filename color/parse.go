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

package color

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse interprets an SVG color string.  The supported forms are
// "#rgb" and "#rrggbb" hex notation (case-insensitive),
// "rgb(r, g, b)", "hsl(h, s%, l%)", and the SVG 1.1 named colors.
// Strings which cannot be interpreted yield opaque black.
func Parse(s string) RGB {
	s = strings.TrimSpace(s)
	if s == "" {
		return Black
	}

	switch {
	case s[0] == '#':
		return parseHex(s[1:])
	case hasFuncPrefix(s, "rgb"):
		return parseRGBFunc(s[3:])
	case hasFuncPrefix(s, "hsl"):
		return parseHSLFunc(s[3:])
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{c.R, c.G, c.B}
	}
	return Black
}

// ParseBatch interprets a slice of SVG color strings.
func ParseBatch(ss []string) []RGB {
	out := make([]RGB, len(ss))
	for i, s := range ss {
		out[i] = Parse(s)
	}
	return out
}

// HSLToRGB converts an HSL color to sRGB.  The hue is in degrees and
// is reduced mod 360; saturation and lightness are in [0, 1].
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		v := clamp8(l * 255)
		return RGB{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	return RGB{
		clamp8(hueToChannel(p, q, hk+1.0/3) * 255),
		clamp8(hueToChannel(p, q, hk) * 255),
		clamp8(hueToChannel(p, q, hk-1.0/3) * 255),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func hasFuncPrefix(s, name string) bool {
	if len(s) < len(name) {
		return false
	}
	if !strings.EqualFold(s[:len(name)], name) {
		return false
	}
	rest := strings.TrimSpace(s[len(name):])
	return strings.HasPrefix(rest, "(")
}

func parseHex(s string) RGB {
	switch len(s) {
	case 3:
		var c RGB
		for i := range 3 {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return Black
			}
			c[i] = uint8(v*16 + v) // 0xA -> 0xAA
		}
		return c
	case 6:
		var c RGB
		for i := range 3 {
			v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
			if err != nil {
				return Black
			}
			c[i] = uint8(v)
		}
		return c
	}
	return Black
}

func parseRGBFunc(s string) RGB {
	args, ok := funcArgs(s, 3)
	if !ok {
		return Black
	}
	var c RGB
	for i, a := range args {
		var v float64
		if strings.HasSuffix(a, "%") {
			p, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
			if err != nil {
				return Black
			}
			v = p / 100 * 255
		} else {
			n, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return Black
			}
			v = n
		}
		c[i] = clamp8(v)
	}
	return c
}

func parseHSLFunc(s string) RGB {
	args, ok := funcArgs(s, 3)
	if !ok {
		return Black
	}
	h, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return Black
	}
	sat, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil {
		return Black
	}
	lig, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil {
		return Black
	}
	return HSLToRGB(h, sat/100, lig/100)
}

// funcArgs extracts exactly n comma-separated arguments from a
// parenthesized argument list, for example "( 1, 2, 3 )".
func funcArgs(s string, n int) ([]string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != n {
		return nil, false
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, true
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
