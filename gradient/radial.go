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

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgpptx/transform"
)

// focalEps bounds the center-to-focal distance below which the focal
// point counts as coinciding with the center.
const focalEps = 1e-6

// ConvertRadial converts a batch of <radialGradient> elements.  The
// result has one DrawingML fragment per element, in input order.
//
// Unlike the linear engine, the radial engine honours only a bare
// matrix(a,b,c,d,e,f) gradientTransform; compositional
// translate/scale/rotate lists are not interpreted and fall back to
// the identity.  Radial transforms are rare in practice and the
// asymmetry is deliberate rather than an oversight.
//
// The only error condition is an element of the wrong kind; malformed
// attribute values fall back to the SVG defaults.
func (e *Engine) ConvertRadial(elems []Element) ([]string, error) {
	if err := checkKind(elems, KindRadial); err != nil {
		return nil, err
	}

	n := len(elems)
	coords := make([][5]float64, n)
	ms := make([]matrix.Matrix, n)
	for i, el := range elems {
		coords[i] = parseRadialCoords(el)
		ms[i] = transform.ParseMatrixOnly(attrOr(el, "gradientTransform", ""))
	}
	coords = transform.ApplyRadialBatch(coords, ms)

	out := make([]string, n)
	for i, el := range elems {
		stops := e.EnhanceSmoothness(parseStops(el), e.Smoothing)
		out[i] = emitGradFill(reverseStops(stops), radialPath(coords[i]))
	}
	return out, nil
}

// ParseRadial parses a single <radialGradient> element into a Spec.
func ParseRadial(el Element) (*Spec, error) {
	if got := el.Kind(); got != KindRadial {
		return nil, fmt.Errorf("gradient: expected <%s> element, got <%s>", KindRadial, got)
	}
	c := parseRadialCoords(el)
	return &Spec{
		Kind:      KindRadial,
		Coords:    c[:],
		Stops:     parseStops(el),
		Transform: transform.ParseMatrixOnly(attrOr(el, "gradientTransform", "")),
		Spread:    ParseSpread(attrOr(el, "spreadMethod", "")),
	}, nil
}

// parseRadialCoords reads center, radius and focal point.  Center and
// radius default to 50%; the focal point defaults to the center.  The
// radius also accepts the rx/ry spellings some producers emit.
func parseRadialCoords(el Element) [5]float64 {
	cx := coordValue(attrOr(el, "cx", ""), 0.5)
	cy := coordValue(attrOr(el, "cy", ""), 0.5)
	r := coordValue(attrOr(el, "r", attrOr(el, "rx", attrOr(el, "ry", ""))), 0.5)
	fx := coordValue(attrOr(el, "fx", ""), cx)
	fy := coordValue(attrOr(el, "fy", ""), cy)
	return [5]float64{cx, cy, r, fx, fy}
}

// reverseStops flips stop positions: DrawingML radial fills run from
// the edge to the center while SVG defines them center to edge.
func reverseStops(stops []Stop) []Stop {
	out := make([]Stop, len(stops))
	for i, s := range stops {
		s.Pos = 1 - s.Pos
		out[len(out)-1-i] = s
	}
	return out
}

// radialPath chooses the DrawingML path element.  A gradient whose
// focal point coincides with its center maps onto a circular path; an
// off-center focal point is approximated by shifting the fill-to-rect
// of a shape path, which does not reproduce exact SVG focal geometry.
func radialPath(c [5]float64) string {
	cx, cy, fx, fy := c[0], c[1], c[3], c[4]
	if math.Abs(fx-cx) < focalEps && math.Abs(fy-cy) < focalEps {
		return radialTail("circle", 50000, 50000, 50000, 50000)
	}
	l := int(math.Round(clamp01(fx) * 100000))
	t := int(math.Round(clamp01(fy) * 100000))
	return radialTail("shape", l, t, 100000-l, 100000-t)
}
