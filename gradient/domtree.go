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
	"encoding/xml"
	"io"
)

// DOMElement is a self-contained implementation of [Element], used by
// [ParseFragment].  Attribute names are stored without namespace
// prefixes.
type DOMElement struct {
	Tag        string
	Attributes map[string]string
	StopNodes  []*DOMStop
}

// Kind implements the [Element] interface.
func (d *DOMElement) Kind() Kind {
	return KindOf(d.Tag)
}

// Attr implements the [Element] interface.
func (d *DOMElement) Attr(name string) (string, bool) {
	v, ok := d.Attributes[name]
	return v, ok
}

// Stops implements the [Element] interface.
func (d *DOMElement) Stops() []StopElement {
	out := make([]StopElement, len(d.StopNodes))
	for i, s := range d.StopNodes {
		out[i] = s
	}
	return out
}

// DOMStop is a <stop> child of a [DOMElement].
type DOMStop struct {
	Attributes map[string]string
}

// Attr implements the [StopElement] interface.
func (d *DOMStop) Attr(name string) (string, bool) {
	v, ok := d.Attributes[name]
	return v, ok
}

// ParseFragment reads an XML fragment and returns the gradient
// elements it contains, in document order.  Elements other than
// linearGradient and radialGradient are skipped, and namespace
// prefixes on element and attribute names are ignored.
//
// ParseFragment is a convenience adapter; callers with an existing SVG
// DOM can implement [Element] directly instead.
func ParseFragment(r io.Reader) ([]Element, error) {
	dec := xml.NewDecoder(r)

	var out []Element
	var current *DOMElement
	depth := 0 // nesting depth inside the current gradient element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			if current == nil {
				if KindOf(tok.Name.Local) == KindOther {
					continue
				}
				current = &DOMElement{
					Tag:        tok.Name.Local,
					Attributes: attrMap(tok.Attr),
				}
				depth = 1
				continue
			}
			depth++
			if tok.Name.Local == "stop" {
				current.StopNodes = append(current.StopNodes, &DOMStop{
					Attributes: attrMap(tok.Attr),
				})
			}
		case xml.EndElement:
			if current == nil {
				continue
			}
			depth--
			if depth == 0 {
				out = append(out, current)
				current = nil
			}
		}
	}
	return out, nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}
