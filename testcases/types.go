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

// Package testcases contains named shapes with known footprints. The
// cases are shared by the tests and by the export tool.
package testcases

// ShapeCase defines a single rasterization test.
type ShapeCase struct {
	Name   string // lowercase a-z and _ only
	Kind   string // name of a registered shape kind
	Params []int  // shape parameters, as accepted by Kind.New
	Width  int    // image width in pixels
	Height int    // image height in pixels

	// Spans is the expected number of spans, or -1 if not checked.
	Spans int

	// Pixels is the expected number of covered pixels inside the image,
	// or -1 if not checked.
	Pixels int
}
