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

import "math"

// AngleUnitsPerDegree is the DrawingML angle resolution: angles are
// written in 1/60000 of a degree, measured clockwise from 3 o'clock.
const AngleUnitsPerDegree = 60000

// zeroEps bounds the component magnitudes below which a gradient
// vector counts as zero-length.
const zeroEps = 1e-10

// LinearAngle converts a linear gradient vector to a DrawingML angle.
//
// SVG measures gradient direction counter-clockwise in a y-up
// mathematical sense while DrawingML measures clockwise from
// 3 o'clock, so the angle maps through (90° − α) mod 360°.
// A zero-length vector defaults to the horizontal, left-to-right
// direction instead of producing NaN.
func LinearAngle(x1, y1, x2, y2 float64) int64 {
	dx := x2 - x1
	dy := y2 - y1
	if math.Abs(dx) < zeroEps && math.Abs(dy) < zeroEps {
		return 90 * AngleUnitsPerDegree
	}

	deg := math.Atan2(dy, dx) * 180 / math.Pi
	dml := math.Mod(90-deg, 360)
	if dml < 0 {
		dml += 360
	}
	return int64(math.Round(dml * AngleUnitsPerDegree))
}

// LinearAnglesBatch converts a slice of linear gradient coordinate
// quadruples (x1, y1, x2, y2) to DrawingML angles.
func LinearAnglesBatch(coords [][4]float64) []int64 {
	out := make([]int64, len(coords))
	for i, c := range coords {
		out[i] = LinearAngle(c[0], c[1], c[2], c[3])
	}
	return out
}
