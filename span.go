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
	"cmp"
	"fmt"
)

// Span is a horizontal run of pixels: all (x, Y) with X1 <= x <= X2.
//
// Spans produced by a shape may lie partially or completely outside the
// image. They are clipped when they are used.
type Span struct {
	X1, X2 int
	Y      int
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.X1, s.X2, s.Y)
}

// CompareSpans orders spans by row. Spans in the same row compare equal.
// This can be used with [slices.SortFunc] and [slices.SortStableFunc].
func CompareSpans(a, b Span) int {
	return cmp.Compare(a.Y, b.Y)
}

// FullImage returns one span per row, covering a whole width×height image.
func FullImage(width, height int) []Span {
	spans := make([]Span, height)
	for y := range height {
		spans[y] = Span{X1: 0, X2: width - 1, Y: y}
	}
	return spans
}

// clip returns the horizontal range of s inside a width×height image.
// The result is false if the span has no pixel inside the image.
func (s Span) clip(width, height int) (x1, x2 int, ok bool) {
	if s.Y < 0 || s.Y >= height {
		return 0, 0, false
	}
	x1 = max(s.X1, 0)
	x2 = min(s.X2, width-1)
	if x1 > x2 {
		return 0, 0, false
	}
	return x1, x2, true
}

// covers reports whether any of the spans has a pixel inside a
// width×height image.
func covers(spans []Span, width, height int) bool {
	for _, s := range spans {
		if _, _, ok := s.clip(width, height); ok {
			return true
		}
	}
	return false
}
