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

import "math"

// WhitePointD65 is the CIE 1931 XYZ coordinates of the D65 white
// point, normalized so that Y=1.
var WhitePointD65 = [3]float64{0.95047, 1.00000, 1.08883}

// RGBToLab converts an sRGB color to the CIE 1976 L*a*b* color space.
//
// The conversion linearizes the sRGB channels using the piecewise sRGB
// transfer curve, maps them to CIE XYZ using the standard sRGB primary
// matrix, normalizes by the D65 white point and applies the L*a*b*
// transfer function.
func RGBToLab(c RGB) Lab {
	r := srgbToLinear(float64(c[0]) / 255)
	g := srgbToLinear(float64(c[1]) / 255)
	b := srgbToLinear(float64(c[2]) / 255)

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / WhitePointD65[0])
	fy := labF(y / WhitePointD65[1])
	fz := labF(z / WhitePointD65[2])

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToRGB converts a CIE 1976 L*a*b* color back to sRGB.  Channel
// values are clamped to the representable range.
func LabToRGB(c Lab) RGB {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	x := labFInv(fx) * WhitePointD65[0]
	y := labFInv(fy) * WhitePointD65[1]
	z := labFInv(fz) * WhitePointD65[2]

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{
		clamp8(linearToSRGB(r) * 255),
		clamp8(linearToSRGB(g) * 255),
		clamp8(linearToSRGB(b) * 255),
	}
}

// RGBToLabBatch converts a slice of sRGB colors to L*a*b*.
func RGBToLabBatch(cs []RGB) []Lab {
	out := make([]Lab, len(cs))
	for i, c := range cs {
		out[i] = RGBToLab(c)
	}
	return out
}

// LabToRGBBatch converts a slice of L*a*b* colors back to sRGB.
func LabToRGBBatch(cs []Lab) []RGB {
	out := make([]RGB, len(cs))
	for i, c := range cs {
		out[i] = LabToRGB(c)
	}
	return out
}

// InterpolateLabBatch blends between start and end once per factor.
// Both endpoints are converted to L*a*b*, the channels are linearly
// interpolated, and the results converted back to sRGB.  A factor of 0
// gives start, a factor of 1 gives end.
func InterpolateLabBatch(start, end RGB, factors []float64) []RGB {
	a := RGBToLab(start)
	b := RGBToLab(end)
	out := make([]RGB, len(factors))
	for i, t := range factors {
		out[i] = LabToRGB(Lab{
			L: a.L + (b.L-a.L)*t,
			A: a.A + (b.A-a.A)*t,
			B: a.B + (b.B-a.B)*t,
		})
	}
	return out
}

// labPivot is the cube of 6/29, the break point of the L*a*b* transfer
// function.
const labPivot = 216.0 / 24389.0

func labF(t float64) float64 {
	if t > labPivot {
		return math.Cbrt(t)
	}
	return t*(24389.0/27.0)/116 + 16.0/116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labPivot {
		return t3
	}
	return (116*t - 16) * (27.0 / 24389.0)
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func clamp8(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(math.Round(x))
}
