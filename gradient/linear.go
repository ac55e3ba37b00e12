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
	"strconv"
	"strings"

	"seehuhn.de/go/svgpptx/transform"
)

// ConvertLinear converts a batch of <linearGradient> elements.  The
// result has one DrawingML fragment per element, in input order.
//
// The only error condition is an element of the wrong kind; malformed
// attribute values fall back to the SVG defaults.
func (e *Engine) ConvertLinear(elems []Element) ([]string, error) {
	if err := checkKind(elems, KindLinear); err != nil {
		return nil, err
	}

	n := len(elems)
	coords := make([][4]float64, n)
	trs := make([]string, n)
	for i, el := range elems {
		coords[i] = parseLinearCoords(el)
		trs[i] = attrOr(el, "gradientTransform", "")
	}
	coords = transform.ApplyLinearBatch(coords, transform.ParseBatch(trs))
	angles := transform.LinearAnglesBatch(coords)

	out := make([]string, n)
	for i, el := range elems {
		stops := e.EnhanceSmoothness(parseStops(el), e.Smoothing)
		out[i] = emitGradFill(stops, linearTail(angles[i]))
	}
	return out, nil
}

// ParseLinear parses a single <linearGradient> element into a Spec.
func ParseLinear(el Element) (*Spec, error) {
	if got := el.Kind(); got != KindLinear {
		return nil, fmt.Errorf("gradient: expected <%s> element, got <%s>", KindLinear, got)
	}
	c := parseLinearCoords(el)
	return &Spec{
		Kind:      KindLinear,
		Coords:    c[:],
		Stops:     parseStops(el),
		Transform: transform.Parse(attrOr(el, "gradientTransform", "")),
	}, nil
}

// parseLinearCoords reads the gradient vector, defaulting to the
// horizontal unit vector 0%,0%,100%,0%.
func parseLinearCoords(el Element) [4]float64 {
	return [4]float64{
		coordValue(attrOr(el, "x1", ""), 0),
		coordValue(attrOr(el, "y1", ""), 0),
		coordValue(attrOr(el, "x2", ""), 1),
		coordValue(attrOr(el, "y2", ""), 0),
	}
}

// coordValue parses one gradient coordinate.  Percentages divide by
// 100.  Bare values with magnitude above 10 are taken to be pixel
// values relative to a nominal 100-pixel box and divided by 100; true
// userSpaceOnUse semantics would need the referencing element's
// bounding box, which never reaches this subsystem.  The result is
// clamped to [-10, 10].
func coordValue(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if t, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return def
		}
		return clampCoord(v / 100)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	if math.Abs(v) > 10 {
		v /= 100
	}
	return clampCoord(v)
}

func clampCoord(v float64) float64 {
	if v < -10 {
		return -10
	}
	if v > 10 {
		return 10
	}
	return v
}
