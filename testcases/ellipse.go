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

var ellipseCases = []ShapeCase{
	{
		Name:   "point",
		Kind:   "ellipse",
		Params: []int{5, 5, 0, 0},
		Width:  10,
		Height: 10,
		Spans:  1,
		Pixels: 1,
	},
	{
		Name:   "horizontal_line",
		Kind:   "ellipse",
		Params: []int{5, 5, 3, 0},
		Width:  10,
		Height: 10,
		Spans:  1,
		Pixels: 7,
	},
	{
		Name:   "radius_one",
		Kind:   "ellipse",
		Params: []int{5, 5, 1, 1},
		Width:  10,
		Height: 10,
		Spans:  1,
		Pixels: 3,
	},
	{
		Name:   "circle",
		Kind:   "ellipse",
		Params: []int{10, 10, 3, 3},
		Width:  20,
		Height: 20,
		Spans:  5,
		Pixels: 31,
	},
	{
		Name:   "wide",
		Kind:   "ellipse",
		Params: []int{10, 10, 8, 2},
		Width:  20,
		Height: 20,
		Spans:  3,
		Pixels: 47,
	},
	{
		Name:   "tall",
		Kind:   "ellipse",
		Params: []int{5, 10, 2, 6},
		Width:  11,
		Height: 21,
		Spans:  11,
		Pixels: 47,
	},
	{
		Name:   "clipped_corner",
		Kind:   "ellipse",
		Params: []int{0, 0, 3, 3},
		Width:  10,
		Height: 10,
		Spans:  5,
		Pixels: 11,
	},
}
