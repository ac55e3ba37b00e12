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

// Package color parses SVG color strings and converts colors between
// the sRGB and CIE 1976 L*a*b* color spaces.
//
// All conversion functions come in batch form, operating on slices of
// colors, because the gradient pipeline processes all colors of a
// document in a small number of calls.  The n-th output always
// corresponds to the n-th input.
//
// Parsing never fails: strings which cannot be interpreted as a color
// yield opaque black.  This mirrors how renderers treat malformed
// colors in SVG documents, where a wrong color is preferable to a
// missing shape.
//
// Interpolation is performed in L*a*b* rather than sRGB.  Linear
// blending of gamma-encoded sRGB values darkens the midtones of a
// gradient; blending in a perceptually near-uniform space avoids this.  The
// extra conversions are amortized by batching, and can be memoised in
// an optional [Cache].
package color
