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

var triangleCases = []ShapeCase{
	{
		Name:   "right_angle",
		Kind:   "triangle",
		Params: []int{0, 0, 10, 0, 0, 10},
		Width:  20,
		Height: 20,
		Spans:  10,
		Pixels: 55,
	},
	{
		Name:   "collinear",
		Kind:   "triangle",
		Params: []int{1, 1, 5, 5, 9, 9},
		Width:  20,
		Height: 20,
		Spans:  0,
		Pixels: 0,
	},
	{
		Name:   "general",
		Kind:   "triangle",
		Params: []int{3, 17, 12, 2, 18, 14},
		Width:  20,
		Height: 20,
		Spans:  -1,
		Pixels: -1,
	},
}
