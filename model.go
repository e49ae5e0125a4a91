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
	"slices"
)

// Model is an approximation session. It owns the canvas, which starts as
// a uniform background and receives one shape per step, together with
// the history of committed shapes and errors.
//
// A Model is not safe for concurrent use.
type Model struct {
	// Alpha is the opacity of new shapes. Zero means DefaultAlpha.
	Alpha uint8

	// Incremental selects incremental scoring during the search,
	// see [Search].
	Incremental bool

	background RGB
	current    *Image
	target     *Image
	rnd        Rand

	shapes []Shape
	colors []RGB
	errors []float64
}

// NewModel starts a session for the given target. The canvas is filled
// with the mean colour of the target. rnd is used for all searches.
//
// The model keeps a reference to target, which must not be modified
// afterwards.
func NewModel(target *Image, rnd Rand) *Model {
	return NewModelWithBackground(target, target.MeanColor(), rnd)
}

// NewModelWithBackground is like [NewModel], but fills the canvas with
// the given colour.
func NewModelWithBackground(target *Image, background RGB, rnd Rand) *Model {
	current := NewUniform(target.Width, target.Height, background)
	return &Model{
		background: background,
		current:    current,
		target:     target,
		rnd:        rnd,
		errors:     []float64{RMSError(current, target)},
	}
}

// Step finds the best shape of the given kind using
// [Search.BestOfClimbs] and commits it to the canvas. The committed
// shape and the new error are returned.
//
// If no candidate covers any pixel of the image, nothing is committed
// and an error wrapping [ErrNoShape] is returned.
func (m *Model) Step(kind *Kind, restarts, maxAge, numRandom int) (Shape, float64, error) {
	search := &Search{
		Current:     m.current,
		Target:      m.target,
		Rand:        m.rnd,
		Alpha:       m.Alpha,
		Incremental: m.Incremental,
	}
	shape, fitErr := search.BestOfClimbs(kind, restarts, maxAge, numRandom)
	if math.IsInf(fitErr, 1) {
		return nil, m.CurrentError(), fmt.Errorf("%w: kind %s on a %dx%d image",
			ErrNoShape, kind.Name, m.target.Width, m.target.Height)
	}
	c := ShapeColor(shape, m.current, m.target)
	rms := m.Commit(shape, c)
	Logger().Info("step", "n", len(m.shapes), "shape", shape, "color", c, "error", rms)
	return shape, rms, nil
}

// Commit draws s with colour c onto the canvas and appends it to the
// history. The new error is returned. Commit is used by Step and for
// replaying saved sessions.
func (m *Model) Commit(s Shape, c RGB) float64 {
	DrawShape(m.current, s, c)
	err := RMSError(m.current, m.target)
	m.shapes = append(m.shapes, s)
	m.colors = append(m.colors, c)
	m.errors = append(m.errors, err)
	return err
}

// Current returns the canvas. The caller must not modify it.
func (m *Model) Current() *Image {
	return m.current
}

// Target returns the target image.
func (m *Model) Target() *Image {
	return m.target
}

// Background returns the initial colour of the canvas.
func (m *Model) Background() RGB {
	return m.background
}

// Shapes returns a copy of the list of committed shapes, in order.
// The shapes themselves are shared with the model and must not be
// mutated.
func (m *Model) Shapes() []Shape {
	return slices.Clone(m.shapes)
}

// Colors returns a copy of the colours the shapes were committed with.
func (m *Model) Colors() []RGB {
	return slices.Clone(m.colors)
}

// Errors returns a copy of the error history. Errors()[0] is the error
// of the blank canvas and Errors()[i] the error after the i-th shape.
func (m *Model) Errors() []float64 {
	return slices.Clone(m.errors)
}

// NumShapes returns the number of committed shapes.
func (m *Model) NumShapes() int {
	return len(m.shapes)
}

// CurrentError returns the error of the current canvas.
func (m *Model) CurrentError() float64 {
	return m.errors[len(m.errors)-1]
}
