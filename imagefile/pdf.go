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

package imagefile

import (
	"cmp"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapefit"
)

// run is a maximal horizontal run of equally coloured pixels.
type run struct {
	x, y, n int
}

// colorRuns splits every row of img into runs of equal colour and groups
// the runs by colour.
func colorRuns(img *shapefit.Image) map[shapefit.RGB][]run {
	runs := make(map[shapefit.RGB][]run)
	for y := range img.Height {
		start := 0
		for x := 1; x <= img.Width; x++ {
			if x < img.Width && img.RGBAt(x, y) == img.RGBAt(start, y) {
				continue
			}
			c := img.RGBAt(start, y)
			runs[c] = append(runs[c], run{x: start, y: y, n: x - start})
			start = x
		}
	}
	return runs
}

func compareRGB(a, b shapefit.RGB) int {
	return cmp.Or(cmp.Compare(a.R, b.R), cmp.Compare(a.G, b.G), cmp.Compare(a.B, b.B))
}

// writePDF writes img as a single page PDF file, one point per pixel.
// Every run of equal colour becomes a filled rectangle, and all
// rectangles of one colour are filled together.
func writePDF(fname string, img *shapefit.Image) error {
	paper := &pdf.Rectangle{
		URx: float64(img.Width),
		URy: float64(img.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; image rows count from the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(img.Height)})

	runs := colorRuns(img)
	colors := make([]shapefit.RGB, 0, len(runs))
	for c := range runs {
		colors = append(colors, c)
	}
	slices.SortFunc(colors, compareRGB)

	for _, c := range colors {
		page.SetFillColor(color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255})
		for _, r := range runs[c] {
			page.Rectangle(float64(r.x), float64(r.y), float64(r.n), 1)
		}
		page.Fill()
	}

	return page.Close()
}
