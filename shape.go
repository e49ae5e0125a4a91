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
	"math"
)

// Rand is the source of randomness used by the shape search.
// [*math/rand/v2.Rand] implements this interface.
//
// All search functions draw from a single Rand in a fixed order, so that
// results are reproducible for a fixed seed.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int

	// NormFloat64 returns a standard normally distributed number.
	NormFloat64() float64
}

// Shape is a primitive which can be placed onto the canvas.
//
// Shapes have value semantics: the search clones shapes before mutating
// them, and a clone never shares mutable state with the original.
type Shape interface {
	// Spans returns the footprint of the shape. The result is cached
	// until the next call to Mutate and must not be modified.
	Spans() []Span

	// Mutate changes one randomly chosen parameter of the shape.
	// The width and height of the image bound the new parameter value.
	Mutate(width, height int, rnd Rand)

	// Clone returns an independent copy of the shape.
	Clone() Shape

	// Alpha returns the opacity the shape is drawn with.
	Alpha() uint8

	// Kind returns the kind of the shape.
	Kind() *Kind

	// Params returns the geometric parameters of the shape, in the order
	// expected by Kind().New.
	Params() []int

	fmt.Stringer
}

// mutationRate is the standard deviation of parameter changes in Mutate.
const mutationRate = 4.0

// mutationDelta returns a normally distributed integer offset.
func mutationDelta(rnd Rand) int {
	return int(math.Round(mutationRate * rnd.NormFloat64()))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ShapeColor returns the best fill colour for s, see [BestColor].
func ShapeColor(s Shape, source, target *Image) RGB {
	return BestColor(s.Spans(), s.Alpha(), source, target)
}

// DrawShape composites s with colour c into canvas.
func DrawShape(canvas *Image, s Shape, c RGB) {
	Draw(canvas, s.Spans(), c, s.Alpha())
}

// FitError returns the error between target and a copy of source, after
// s has been drawn onto the copy at its best colour. source is not
// modified. Shapes without any pixel inside the image have error +Inf.
func FitError(s Shape, source, target *Image) float64 {
	spans := s.Spans()
	if !covers(spans, source.Width, source.Height) {
		return math.Inf(1)
	}
	canvas := source.Clone()
	c := BestColor(spans, s.Alpha(), source, target)
	Draw(canvas, spans, c, s.Alpha())
	return RMSError(canvas, target)
}
