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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0, 4, "0"},
		{1, 4, "1"},
		{1.5, 4, "1.5"},
		{2.0, 4, "2"},
		{0.5, 4, "0.5"},
		{0.1234, 2, "0.12"},
		{-1.10, 4, "-1.1"},
		{100, 0, "100"},
	}
	for _, c := range cases {
		if got := Format(c.x, c.precision); got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q",
				c.x, c.precision, got, c.want)
		}
	}
}

func TestFormatPerMille(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1000"},
		{123.4, "123.4"},
		{999.96, "1000"},
		{0.05, "0"},
		{250.5, "250.5"},
	}
	for _, c := range cases {
		if got := FormatPerMille(c.x); got != c.want {
			t.Errorf("FormatPerMille(%g) = %q, want %q", c.x, got, c.want)
		}
	}
}
