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

// Package shapefit approximates a raster image by a sequence of
// semi-transparent geometric shapes.
//
// A [Model] holds the target image and a canvas which starts out as a
// uniform background. Every call to [Model.Step] searches for the single
// shape which, drawn at its best colour, brings the canvas closest to the
// target, and composites this shape into the canvas. The search combines
// random sampling with hill climbing and is driven by an explicitly passed
// random source, so that runs are reproducible for a fixed seed.
//
// Shapes are rasterized into horizontal pixel runs ([Span]). All colour
// estimation, compositing and error computation works on these runs.
package shapefit
