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

// Converter converts colors between sRGB and L*a*b*, memoising the
// sRGB→L*a*b* direction in an optional cache.
//
// The zero value and the nil pointer are both usable and perform
// uncached conversions.
type Converter struct {
	Cache *Cache
}

// RGBToLab converts a single color, consulting the cache if one is
// set.
func (cv *Converter) RGBToLab(c RGB) Lab {
	if cv == nil || cv.Cache == nil {
		return RGBToLab(c)
	}
	if l, ok := cv.Cache.get(c); ok {
		return l
	}
	l := RGBToLab(c)
	cv.Cache.put(c, l)
	return l
}

// RGBToLabBatch converts a slice of colors, consulting the cache if
// one is set.
func (cv *Converter) RGBToLabBatch(cs []RGB) []Lab {
	out := make([]Lab, len(cs))
	for i, c := range cs {
		out[i] = cv.RGBToLab(c)
	}
	return out
}

// LabToRGBBatch converts a slice of L*a*b* colors back to sRGB.  This
// direction is not cached.
func (cv *Converter) LabToRGBBatch(cs []Lab) []RGB {
	return LabToRGBBatch(cs)
}

// InterpolateLabBatch blends between start and end once per factor,
// interpolating in L*a*b*.  The endpoint conversions use the cache if
// one is set.
func (cv *Converter) InterpolateLabBatch(start, end RGB, factors []float64) []RGB {
	a := cv.RGBToLab(start)
	b := cv.RGBToLab(end)
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
