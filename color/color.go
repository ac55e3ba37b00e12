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

import "fmt"

// RGB is an sRGB color with 8 bits per channel.
type RGB [3]uint8

// Hex returns the color as six uppercase hex digits, as used in
// DrawingML <a:srgbClr> elements.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c[0], c[1], c[2])
}

// Lab is a color in the CIE 1976 L*a*b* color space, relative to the
// D65 white point.
type Lab struct {
	L, A, B float64
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)
