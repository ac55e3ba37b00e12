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

package transform

import (
	"seehuhn.de/go/geom/matrix"
)

// ApplyLinearBatch transforms the end points of linear gradient
// vectors.  Each coordinate quadruple (x1, y1, x2, y2) is transformed
// by the matrix with the same index.  The two slices must have equal
// length.
func ApplyLinearBatch(coords [][4]float64, ms []matrix.Matrix) [][4]float64 {
	out := make([][4]float64, len(coords))
	for i, c := range coords {
		x1, y1 := ms[i].Apply(c[0], c[1])
		x2, y2 := ms[i].Apply(c[2], c[3])
		out[i] = [4]float64{x1, y1, x2, y2}
	}
	return out
}

// ApplyRadialBatch transforms radial gradient coordinates
// (cx, cy, r, fx, fy).  The center and the focal point are transformed
// by the matrix with the same index; the radius is passed through
// unchanged.  Transforming the radius would require tracking a full
// ellipse through shear and non-uniform scale, which DrawingML radial
// fills cannot express anyway.
func ApplyRadialBatch(coords [][5]float64, ms []matrix.Matrix) [][5]float64 {
	out := make([][5]float64, len(coords))
	for i, c := range coords {
		cx, cy := ms[i].Apply(c[0], c[1])
		fx, fy := ms[i].Apply(c[3], c[4])
		out[i] = [5]float64{cx, cy, c[2], fx, fy}
	}
	return out
}
