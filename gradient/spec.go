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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgpptx/color"
)

// Stop is one anchor point of a gradient ramp.
type Stop struct {
	// Pos is the stop position in the range 0 to 1.
	Pos float64

	// Color is the stop color.
	Color color.RGB

	// Opacity is the stop opacity in the range 0 to 1.
	Opacity float64
}

// Spec is the parsed form of one SVG gradient element.  It is a
// derived, read-only view: building a Spec never mutates the input
// element.
//
// After parsing the following invariants hold for Stops: the slice is
// sorted by position, has at least two entries, and the first and last
// positions are exactly 0 and 1.
type Spec struct {
	Kind Kind

	// Coords holds the untransformed gradient geometry in unit
	// coordinates: x1, y1, x2, y2 for linear gradients and
	// cx, cy, r, fx, fy for radial gradients.
	Coords []float64

	Stops []Stop

	// Transform is the parsed gradientTransform attribute,
	// matrix.Identity if absent.  The zero matrix counts as the
	// identity, so Spec literals without an explicit transform work.
	Transform matrix.Matrix

	// Spread is only meaningful for radial gradients.
	Spread SpreadMethod
}

// DeviceCoords returns the gradient geometry with the transform
// applied.  For linear gradients both end points are transformed; for
// radial gradients the center and the focal point are transformed
// while the radius stays unchanged.
func (s *Spec) DeviceCoords() []float64 {
	m := s.Transform
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	switch s.Kind {
	case KindLinear:
		x1, y1 := m.Apply(s.Coords[0], s.Coords[1])
		x2, y2 := m.Apply(s.Coords[2], s.Coords[3])
		return []float64{x1, y1, x2, y2}
	case KindRadial:
		cx, cy := m.Apply(s.Coords[0], s.Coords[1])
		fx, fy := m.Apply(s.Coords[3], s.Coords[4])
		return []float64{cx, cy, s.Coords[2], fx, fy}
	}
	return nil
}

// Equal reports whether two specs describe the same gradient.
func (s *Spec) Equal(other *Spec) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Kind != other.Kind || s.Spread != other.Spread {
		return false
	}
	if len(s.Coords) != len(other.Coords) || len(s.Stops) != len(other.Stops) {
		return false
	}
	for i, c := range s.Coords {
		if c != other.Coords[i] {
			return false
		}
	}
	for i, st := range s.Stops {
		if st != other.Stops[i] {
			return false
		}
	}
	return s.Transform == other.Transform
}
