// seehuhn.de/go/shapefit - approximate images with geometric shapes
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

package shapefit

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TriangleKind is the kind of filled triangles.
var TriangleKind = &Kind{
	Name:      "triangle",
	NumParams: 6,
	Random: func(width, height int, alpha uint8, rnd Rand) Shape {
		return RandomTriangle(width, height, alpha, rnd)
	},
	New: func(params []int, alpha uint8) (Shape, error) {
		if err := checkParams("triangle", 6, params, alpha); err != nil {
			return nil, err
		}
		t := &Triangle{A: alpha}
		copy(t.P[:], params)
		return t, nil
	},
}

// Triangle is a filled triangle. The vertices are stored as
// x1, y1, x2, y2, x3, y3 in P. A vertex (x, y) refers to the centre of
// the pixel (x, y).
type Triangle struct {
	P [6]int
	A uint8

	spans []Span
}

// RandomTriangle returns a triangle with all three vertices uniformly
// distributed in a width×height image.
func RandomTriangle(width, height int, alpha uint8, rnd Rand) *Triangle {
	t := &Triangle{A: alpha}
	for i := 0; i < 6; i += 2 {
		t.P[i] = rnd.IntN(width)
		t.P[i+1] = rnd.IntN(height)
	}
	return t
}

// Spans implements the [Shape] interface. Degenerate triangles have no
// spans.
func (t *Triangle) Spans() []Span {
	if t.spans == nil {
		t.spans = newFiller(matrix.Identity).Fill(t.outline())
		if t.spans == nil {
			t.spans = []Span{}
		}
	}
	return t.spans
}

func (t *Triangle) outline() path.Path {
	v := func(i int) vec.Vec2 {
		return vec.Vec2{X: float64(t.P[i]) + 0.5, Y: float64(t.P[i+1]) + 0.5}
	}
	return polygon(v(0), v(2), v(4))
}

// Mutate implements the [Shape] interface. One of the six coordinates is
// moved and clamped to the image.
func (t *Triangle) Mutate(width, height int, rnd Rand) {
	i := rnd.IntN(6)
	limit := width - 1
	if i%2 == 1 {
		limit = height - 1
	}
	t.P[i] = clampInt(t.P[i]+mutationDelta(rnd), 0, limit)
	t.spans = nil
}

// Clone implements the [Shape] interface.
func (t *Triangle) Clone() Shape {
	c := *t
	c.spans = slices.Clone(t.spans)
	return &c
}

// Alpha implements the [Shape] interface.
func (t *Triangle) Alpha() uint8 {
	return t.A
}

// Kind implements the [Shape] interface.
func (t *Triangle) Kind() *Kind {
	return TriangleKind
}

// Params implements the [Shape] interface.
func (t *Triangle) Params() []int {
	return slices.Clone(t.P[:])
}

func (t *Triangle) String() string {
	return fmt.Sprintf("triangle (%d, %d), (%d, %d), (%d, %d)",
		t.P[0], t.P[1], t.P[2], t.P[3], t.P[4], t.P[5])
}
