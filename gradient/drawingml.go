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
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/svgpptx/internal/float"
)

// DrawingML emission.  The fragments are assembled by hand rather than
// through an XML marshaller: the output grammar is tiny, fixed, and
// byte-for-byte prescribed (attribute order, per-mille formatting), and
// none of the emitted values can contain characters that need
// escaping.

const gradFillOpen = `<a:gradFill flip="none" rotWithShape="1">`

// emitGradFill writes a complete <a:gradFill> fragment with the given
// stop list and the kind-specific tail (<a:lin> or <a:path>).
func emitGradFill(stops []Stop, tail string) string {
	b := &strings.Builder{}
	b.WriteString(gradFillOpen)
	b.WriteString(`<a:gsLst>`)
	for _, s := range stops {
		emitStop(b, s)
	}
	b.WriteString(`</a:gsLst>`)
	b.WriteString(tail)
	b.WriteString(`</a:gradFill>`)
	return b.String()
}

// emitStop writes one <a:gs> element.  The position is in per-mille of
// the gradient run; an <a:alpha> child appears only for stops that are
// not fully opaque.
func emitStop(b *strings.Builder, s Stop) {
	b.WriteString(`<a:gs pos="`)
	b.WriteString(float.FormatPerMille(s.Pos * 1000))
	b.WriteString(`"><a:srgbClr val="`)
	b.WriteString(s.Color.Hex())
	if s.Opacity < 1 {
		b.WriteString(`"><a:alpha val="`)
		b.WriteString(strconv.FormatInt(int64(math.Round(s.Opacity*100000)), 10))
		b.WriteString(`"/></a:srgbClr></a:gs>`)
	} else {
		b.WriteString(`"/></a:gs>`)
	}
}

// linearTail builds the <a:lin> element for a linear fill.  The angle
// is in 1/60000 of a degree.
func linearTail(angle int64) string {
	return `<a:lin ang="` + strconv.FormatInt(angle, 10) + `" scaled="1"/>`
}

// radialTail builds the <a:path> element for a radial fill.  The
// fill-to-rect edges are in 1/1000 of a percent.
func radialTail(path string, l, t, r, b int) string {
	sb := &strings.Builder{}
	sb.WriteString(`<a:path path="`)
	sb.WriteString(path)
	sb.WriteString(`"><a:fillToRect l="`)
	sb.WriteString(strconv.Itoa(l))
	sb.WriteString(`" t="`)
	sb.WriteString(strconv.Itoa(t))
	sb.WriteString(`" r="`)
	sb.WriteString(strconv.Itoa(r))
	sb.WriteString(`" b="`)
	sb.WriteString(strconv.Itoa(b))
	sb.WriteString(`"/></a:path>`)
	return sb.String()
}
