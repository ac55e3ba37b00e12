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

// Package gradient converts SVG gradient elements into PowerPoint
// DrawingML gradient-fill fragments.
//
// The entry point is [Engine]: [Engine.Convert] takes a mixed list of
// <linearGradient> and <radialGradient> elements and returns one
// DrawingML <a:gradFill> fragment per element, in input order.  The
// fragments can be embedded directly inside a shape's fill properties
// (<p:spPr>) of a .pptx package part.
//
// Input elements are supplied through the narrow [Element] interface,
// so any XML binding can be adapted with a small shim; [ParseFragment]
// provides a ready-made adapter based on encoding/xml.
//
// Malformed input never causes an error.  Unparseable coordinates,
// colors, offsets and transforms fall back to the SVG defaults, and
// the engines always emit a renderable, at worst approximate,
// gradient.  The only error condition is programmer misuse: feeding an
// element of the wrong kind into a kind-specific batch method.
package gradient
