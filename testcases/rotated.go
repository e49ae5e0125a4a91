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

package testcases

var rotatedCases = []ShapeCase{
	{
		Name:   "unrotated",
		Kind:   "rotated-ellipse",
		Params: []int{16, 16, 10, 5, 0},
		Width:  32,
		Height: 32,
		Spans:  -1,
		Pixels: -1,
	},
	{
		Name:   "diagonal",
		Kind:   "rotated-ellipse",
		Params: []int{16, 16, 12, 4, 45},
		Width:  32,
		Height: 32,
		Spans:  -1,
		Pixels: -1,
	},
	{
		Name:   "zero_radius",
		Kind:   "rotated-ellipse",
		Params: []int{16, 16, 0, 7, 30},
		Width:  32,
		Height: 32,
		Spans:  0,
		Pixels: 0,
	},
}
