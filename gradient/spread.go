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

import "math"

// SpreadMethod is SVG's policy for extending a gradient beyond its
// [0, 1] domain.
type SpreadMethod byte

// The SVG spread methods.
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

func (m SpreadMethod) String() string {
	switch m {
	case ReflectSpread:
		return "reflect"
	case RepeatSpread:
		return "repeat"
	}
	return "pad"
}

// ParseSpread reads a spreadMethod attribute value.  Unknown values
// yield PadSpread, the SVG default.
func ParseSpread(s string) SpreadMethod {
	switch s {
	case "reflect":
		return ReflectSpread
	case "repeat":
		return RepeatSpread
	}
	return PadSpread
}

// Apply maps a raw gradient parameter into [0, 1] according to the
// spread method.
func (m SpreadMethod) Apply(f float64) float64 {
	switch m {
	case ReflectSpread:
		g := math.Mod(f, 2)
		if g < 0 {
			g += 2
		}
		if g > 1 {
			g = 2 - g
		}
		return g
	case RepeatSpread:
		g := math.Mod(f, 1)
		if g < 0 {
			g++
		}
		return g
	}
	return clamp01(f)
}

// focalWeight is the fixed weight of the focal term in the radial
// field.  It biases the iso-contours towards the focal point without
// attempting exact SVG focal semantics.
const focalWeight = 0.3

// RadialField samples the raw gradient parameter of a radial gradient
// at the point (x, y).  The coordinates are cx, cy, r, fx, fy as
// returned by [Spec.DeviceCoords].  The result is not yet passed
// through the spread method.
func RadialField(coords []float64, x, y float64) float64 {
	cx, cy, r, fx, fy := coords[0], coords[1], coords[2], coords[3], coords[4]
	if r < 1e-10 {
		r = 1e-10
	}

	dxc := (x - cx) / r
	dyc := (y - cy) / r
	center := math.Sqrt(dxc*dxc + dyc*dyc)

	dxf := (x - fx) / r
	dyf := (y - fy) / r
	focal := math.Sqrt(dxf*dxf + dyf*dyf)

	return (1-focalWeight)*center + focalWeight*focal
}
