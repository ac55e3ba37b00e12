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

	"seehuhn.de/go/svgpptx/color"
	"seehuhn.de/go/svgpptx/transform"
)

// Engine converts SVG gradient elements to DrawingML fill fragments.
//
// The zero value is a valid engine performing uncached color
// conversions and no stop resampling.  Engines hold no per-call state
// and a single engine can be used for any number of batches.
type Engine struct {
	// Colors performs the color-space conversions.  A nil converter
	// is valid and disables the conversion cache.
	Colors *color.Converter

	// Smoothing, when positive, resamples every stop list with
	// L*a*b*-interpolated intermediate stops before emission.  See
	// [Engine.EnhanceSmoothness] for the levels.
	Smoothing int
}

// NewEngine returns an engine whose color conversions are memoised in
// the given cache.  The cache may be nil.
func NewEngine(cache *color.Cache) *Engine {
	return &Engine{Colors: &color.Converter{Cache: cache}}
}

// Convert converts a mixed list of gradient elements.  The result has
// exactly one DrawingML fragment per input element, in input order.
//
// Convert never fails: elements which are neither linear nor radial
// gradients yield a default black to white fill, so the output stays
// aligned with the input.
func (e *Engine) Convert(elems []Element) []string {
	out := make([]string, len(elems))

	var linear, radial []Element
	var linearIdx, radialIdx []int
	for i, el := range elems {
		switch el.Kind() {
		case KindLinear:
			linear = append(linear, el)
			linearIdx = append(linearIdx, i)
		case KindRadial:
			radial = append(radial, el)
			radialIdx = append(radialIdx, i)
		default:
			out[i] = e.defaultFill()
		}
	}

	// The kind checks cannot fail after the pre-filter above.
	linOut, _ := e.ConvertLinear(linear)
	for j, i := range linearIdx {
		out[i] = linOut[j]
	}
	radOut, _ := e.ConvertRadial(radial)
	for j, i := range radialIdx {
		out[i] = radOut[j]
	}

	return out
}

// defaultFill is the output for elements the engine cannot interpret:
// a horizontal black to white ramp.
func (e *Engine) defaultFill() string {
	stops := e.EnhanceSmoothness(normalizeStops(nil), e.Smoothing)
	return emitGradFill(stops, linearTail(90*transform.AngleUnitsPerDegree))
}

// checkKind guards the kind-specific batch entry points against
// caller misuse.
func checkKind(elems []Element, want Kind) error {
	for _, el := range elems {
		if got := el.Kind(); got != want {
			return fmt.Errorf("gradient: expected <%s> element, got <%s>", want, got)
		}
	}
	return nil
}
