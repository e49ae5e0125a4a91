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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// RotatedEllipseKind is the kind of filled ellipses with arbitrary
// orientation.
var RotatedEllipseKind = &Kind{
	Name:      "rotated-ellipse",
	NumParams: 5,
	Random: func(width, height int, alpha uint8, rnd Rand) Shape {
		return RandomRotatedEllipse(width, height, alpha, rnd)
	},
	New: func(params []int, alpha uint8) (Shape, error) {
		if err := checkParams("rotated-ellipse", 5, params, alpha); err != nil {
			return nil, err
		}
		if params[2] < 0 || params[3] < 0 {
			return nil, errors.New("rotated-ellipse: negative radius")
		}
		return &RotatedEllipse{
			X: params[0], Y: params[1],
			RX: params[2], RY: params[3],
			Angle: wrapAngle(params[4]),
			A:     alpha,
		}, nil
	},
}

// RotatedEllipse is a filled ellipse with centre (X, Y) and radii RX and
// RY, rotated clockwise on screen by Angle degrees.
type RotatedEllipse struct {
	X, Y   int
	RX, RY int
	Angle  int
	A      uint8

	spans []Span
}

// RandomRotatedEllipse returns a rotated ellipse with centre uniformly
// distributed in a width×height image, radii uniform in [0, width) and
// [0, height) and a uniform angle.
func RandomRotatedEllipse(width, height int, alpha uint8, rnd Rand) *RotatedEllipse {
	return &RotatedEllipse{
		X:     rnd.IntN(width),
		Y:     rnd.IntN(height),
		RX:    rnd.IntN(width),
		RY:    rnd.IntN(height),
		Angle: rnd.IntN(360),
		A:     alpha,
	}
}

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498307936

// unitCircle is the unit circle as four cubic Bézier segments.
func unitCircle(yield func(path.Command, []vec.Vec2) bool) {
	var buf [3]vec.Vec2

	buf[0] = vec.Vec2{X: 1, Y: 0}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return
	}
	quarters := [4][3]vec.Vec2{
		{{X: 1, Y: kappa}, {X: kappa, Y: 1}, {X: 0, Y: 1}},
		{{X: -kappa, Y: 1}, {X: -1, Y: kappa}, {X: -1, Y: 0}},
		{{X: -1, Y: -kappa}, {X: -kappa, Y: -1}, {X: 0, Y: -1}},
		{{X: kappa, Y: -1}, {X: 1, Y: -kappa}, {X: 1, Y: 0}},
	}
	for _, q := range quarters {
		buf = q
		if !yield(path.CmdCubeTo, buf[:]) {
			return
		}
	}
	yield(path.CmdClose, nil)
}

// Spans implements the [Shape] interface. Ellipses with a zero radius
// have no spans.
func (e *RotatedEllipse) Spans() []Span {
	if e.spans == nil {
		e.spans = newFiller(e.transform()).Fill(unitCircle)
		if e.spans == nil {
			e.spans = []Span{}
		}
	}
	return e.spans
}

// transform maps the unit circle to the ellipse in device space.
func (e *RotatedEllipse) transform() matrix.Matrix {
	sin, cos := math.Sincos(float64(e.Angle) * math.Pi / 180)
	rx, ry := float64(e.RX), float64(e.RY)
	return matrix.Matrix{
		cos * rx, sin * rx,
		-sin * ry, cos * ry,
		float64(e.X) + 0.5, float64(e.Y) + 0.5,
	}
}

// Mutate implements the [Shape] interface. One of the five parameters is
// changed. Position and radii are clamped to the image, the angle wraps
// around.
func (e *RotatedEllipse) Mutate(width, height int, rnd Rand) {
	switch rnd.IntN(5) {
	case 0:
		e.X = clampInt(e.X+mutationDelta(rnd), 0, width-1)
	case 1:
		e.Y = clampInt(e.Y+mutationDelta(rnd), 0, height-1)
	case 2:
		e.RX = clampInt(e.RX+mutationDelta(rnd), 0, width-1)
	case 3:
		e.RY = clampInt(e.RY+mutationDelta(rnd), 0, height-1)
	case 4:
		e.Angle = wrapAngle(e.Angle + mutationDelta(rnd))
	}
	e.spans = nil
}

func wrapAngle(a int) int {
	a %= 360
	if a < 0 {
		a += 360
	}
	return a
}

// Clone implements the [Shape] interface.
func (e *RotatedEllipse) Clone() Shape {
	c := *e
	c.spans = slices.Clone(e.spans)
	return &c
}

// Alpha implements the [Shape] interface.
func (e *RotatedEllipse) Alpha() uint8 {
	return e.A
}

// Kind implements the [Shape] interface.
func (e *RotatedEllipse) Kind() *Kind {
	return RotatedEllipseKind
}

// Params implements the [Shape] interface.
func (e *RotatedEllipse) Params() []int {
	return []int{e.X, e.Y, e.RX, e.RY, e.Angle}
}

func (e *RotatedEllipse) String() string {
	return fmt.Sprintf("rotated ellipse at (%d, %d) with radii (%d, %d), angle %d°",
		e.X, e.Y, e.RX, e.RY, e.Angle)
}
