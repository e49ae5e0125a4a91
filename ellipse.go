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
	"errors"
	"fmt"
	"math"
	"slices"
)

// EllipseKind is the kind of axis-aligned filled ellipses.
var EllipseKind = &Kind{
	Name:      "ellipse",
	NumParams: 4,
	Random: func(width, height int, alpha uint8, rnd Rand) Shape {
		return RandomEllipse(width, height, alpha, rnd)
	},
	New: func(params []int, alpha uint8) (Shape, error) {
		if err := checkParams("ellipse", 4, params, alpha); err != nil {
			return nil, err
		}
		if params[2] < 0 || params[3] < 0 {
			return nil, errors.New("ellipse: negative radius")
		}
		return NewEllipse(params[0], params[1], params[2], params[3], alpha), nil
	},
}

// Ellipse is an axis-aligned filled ellipse with centre (X, Y) and radii
// RX and RY.
//
// The fields may be changed directly, but then the cached footprint must
// be discarded by calling Reset.
type Ellipse struct {
	X, Y   int
	RX, RY int
	A      uint8

	spans []Span
}

// NewEllipse returns a new ellipse. Radii may be zero, and the ellipse may
// extend beyond the image.
func NewEllipse(x, y, rx, ry int, alpha uint8) *Ellipse {
	return &Ellipse{X: x, Y: y, RX: rx, RY: ry, A: alpha}
}

// RandomEllipse returns an ellipse with centre uniformly distributed in a
// width×height image and radii uniform in [0, width) and [0, height).
func RandomEllipse(width, height int, alpha uint8, rnd Rand) *Ellipse {
	x := rnd.IntN(width)
	y := rnd.IntN(height)
	rx := rnd.IntN(width)
	ry := rnd.IntN(height)
	return NewEllipse(x, y, rx, ry, alpha)
}

// Reset discards the cached footprint.
func (e *Ellipse) Reset() {
	e.spans = nil
}

// Spans implements the [Shape] interface.
//
// The first span is the central row. For every row offset 1, ..., RY-1
// two spans follow, one above and one below the centre, so that there
// are 2·RY-1 spans in total (one if RY is zero).
func (e *Ellipse) Spans() []Span {
	if e.spans == nil {
		e.spans = e.rasterize()
	}
	return e.spans
}

func (e *Ellipse) rasterize() []Span {
	a, b := e.RX, e.RY
	spans := make([]Span, 0, max(2*b-1, 1))
	spans = append(spans, Span{X1: e.X - a, X2: e.X + a, Y: e.Y})
	if b <= 0 {
		return spans
	}

	ratio := float64(a) / float64(b)
	b2 := b * b
	for dy := 1; dy < b; dy++ {
		dx := int(math.Round(math.Sqrt(float64(b2-dy*dy)) * ratio))
		x1, x2 := e.X-dx, e.X+dx
		spans = append(spans,
			Span{X1: x1, X2: x2, Y: e.Y - dy},
			Span{X1: x1, X2: x2, Y: e.Y + dy})
	}
	return spans
}

// Mutate implements the [Shape] interface. One of the four parameters is
// chosen uniformly and moved by a rounded normal offset with standard
// deviation 4. The result is clamped to the image.
func (e *Ellipse) Mutate(width, height int, rnd Rand) {
	switch rnd.IntN(4) {
	case 0:
		e.X = clampInt(e.X+mutationDelta(rnd), 0, width-1)
	case 1:
		e.Y = clampInt(e.Y+mutationDelta(rnd), 0, height-1)
	case 2:
		e.RX = clampInt(e.RX+mutationDelta(rnd), 0, width-1)
	case 3:
		e.RY = clampInt(e.RY+mutationDelta(rnd), 0, height-1)
	}
	e.spans = nil
}

// Clone implements the [Shape] interface.
func (e *Ellipse) Clone() Shape {
	c := *e
	c.spans = slices.Clone(e.spans)
	return &c
}

// Alpha implements the [Shape] interface.
func (e *Ellipse) Alpha() uint8 {
	return e.A
}

// Kind implements the [Shape] interface.
func (e *Ellipse) Kind() *Kind {
	return EllipseKind
}

// Params implements the [Shape] interface.
func (e *Ellipse) Params() []int {
	return []int{e.X, e.Y, e.RX, e.RY}
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("ellipse at (%d, %d) with radii (%d, %d)", e.X, e.Y, e.RX, e.RY)
}
