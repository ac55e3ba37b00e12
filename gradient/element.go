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

import "strings"

// Kind distinguishes the two SVG gradient element types.
type Kind int

// The gradient kinds.  KindOther marks elements which are not
// gradients; the engines never process them.
const (
	KindOther Kind = iota
	KindLinear
	KindRadial
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linearGradient"
	case KindRadial:
		return "radialGradient"
	}
	return "other"
}

// KindOf maps an element tag name to a Kind.  Namespace prefixes
// ("svg:linearGradient") are ignored.
func KindOf(tag string) Kind {
	if i := strings.LastIndexByte(tag, ':'); i >= 0 {
		tag = tag[i+1:]
	}
	switch tag {
	case "linearGradient":
		return KindLinear
	case "radialGradient":
		return KindRadial
	}
	return KindOther
}

// Element is the capability the engines need from an SVG gradient
// element.  It is deliberately narrow so that any XML library can be
// adapted with a thin shim.
type Element interface {
	// Kind reports which gradient element this is.
	Kind() Kind

	// Attr returns the value of the named attribute, if present.
	Attr(name string) (string, bool)

	// Stops returns the <stop> children in document order.  Both
	// namespace-qualified and bare stop elements are included.
	Stops() []StopElement
}

// StopElement is the capability the engines need from a <stop> child.
type StopElement interface {
	Attr(name string) (string, bool)
}

// attrOr returns the value of the named attribute, or def if the
// attribute is absent or blank.
func attrOr(e Element, name, def string) string {
	if v, ok := e.Attr(name); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
