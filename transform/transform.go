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

// Package transform parses SVG transform attributes into affine
// matrices and applies them to gradient coordinates.
//
// Parsing never fails: empty or unparseable transform strings yield
// the identity matrix, and unknown transform functions contribute the
// identity to the composition.
package transform

import (
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// Parse converts an SVG transform attribute value into a single
// matrix.
//
// The functions matrix(a,b,c,d,e,f), translate(tx[,ty]), scale(sx[,sy])
// and rotate(angle[,cx,cy]) are recognized.  Multiple functions in one
// string compose with SVG semantics: the function written last is
// applied to coordinates first.
func Parse(s string) matrix.Matrix {
	m := matrix.Identity
	for _, f := range funcRegexp.FindAllStringSubmatch(s, -1) {
		fm, ok := evalFunc(f[1], parseArgs(f[2]))
		if !ok {
			continue
		}
		// row vector convention: p' = p * fm * m
		m = fm.Mul(m)
	}
	return m
}

// ParseBatch converts a slice of SVG transform attribute values, one
// matrix per input string.
func ParseBatch(ss []string) []matrix.Matrix {
	out := make([]matrix.Matrix, len(ss))
	for i, s := range ss {
		out[i] = Parse(s)
	}
	return out
}

// ParseMatrixOnly extracts a bare matrix(a,b,c,d,e,f) function from s.
// Other transform functions are not interpreted; if s is not a single
// matrix() application, the identity matrix is returned.
func ParseMatrixOnly(s string) matrix.Matrix {
	f := funcRegexp.FindAllStringSubmatch(s, -1)
	if len(f) != 1 || strings.ToLower(f[0][1]) != "matrix" {
		return matrix.Identity
	}
	m, ok := evalFunc("matrix", parseArgs(f[0][2]))
	if !ok {
		return matrix.Identity
	}
	return m
}

func evalFunc(name string, args []float64) (matrix.Matrix, bool) {
	switch strings.ToLower(name) {
	case "matrix":
		if len(args) != 6 {
			return matrix.Identity, false
		}
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, true
	case "translate":
		switch len(args) {
		case 1:
			return matrix.Translate(args[0], 0), true
		case 2:
			return matrix.Translate(args[0], args[1]), true
		}
	case "scale":
		switch len(args) {
		case 1:
			return matrix.Scale(args[0], args[0]), true
		case 2:
			return matrix.Scale(args[0], args[1]), true
		}
	case "rotate":
		switch len(args) {
		case 1:
			return matrix.RotateDeg(args[0]), true
		case 3:
			// rotation about (cx, cy)
			cx, cy := args[1], args[2]
			m := matrix.Translate(-cx, -cy)
			m = m.Mul(matrix.RotateDeg(args[0]))
			m = m.Mul(matrix.Translate(cx, cy))
			return m, true
		}
	}
	return matrix.Identity, false
}

// parseArgs splits a transform argument list on commas and whitespace.
// Malformed numbers terminate the list early.
func parseArgs(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	args := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			break
		}
		args = append(args, v)
	}
	return args
}

var funcRegexp = regexp.MustCompile(`([a-zA-Z]+)\s*\(([^)]*)\)`)
