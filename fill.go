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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
	dir    int     // +1 for downward edges, -1 for upward edges
}

// crossing is the intersection of an edge with the centre line of a row.
type crossing struct {
	x   float64
	dir int
}

// filler converts closed outlines into spans. A pixel belongs to the
// outline if its centre lies inside, using the nonzero winding rule.
//
// A filler is not safe for concurrent use.
type filler struct {
	// CTM transforms from user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in device pixels.
	Flatness float64

	edges     []edge     // edge list for the current path, sorted by y_min
	activeIdx []int      // indices of active edges
	xs        []crossing // crossings for the current row

	bbox      rect.Rect // bounding box of all edges in device space
	bboxEmpty bool
}

func newFiller(ctm matrix.Matrix) *filler {
	return &filler{
		CTM:      ctm,
		Flatness: defaultFlatness,
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (f *filler) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (f *filler) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := f.transformLinear(e).Length()

	n := 1
	if errDev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint. All in user space.
func (f *filler) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	mDev := max(f.transformLinear(d1).Length(), f.transformLinear(d2).Length())
	n := 1
	if mDev > 0 {
		nFloat := math.Sqrt(3 * mDev / (4 * f.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// Fill returns the spans covered by the outline p. Open subpaths are
// closed implicitly. Every row contains at most one span per connected
// run of covered pixels, and rows appear in increasing order.
func (f *filler) Fill(p path.Path) []Span {
	if !f.collectEdges(p) {
		return nil
	}

	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	// Rows whose centre y+0.5 lies in [LLy, URy).
	yMin := int(math.Ceil(f.bbox.LLy - 0.5))
	yMax := int(math.Ceil(f.bbox.URy - 0.5))

	var spans []Span
	f.activeIdx = f.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		for nextEdge < len(f.edges) {
			e := &f.edges[nextEdge]
			if min(e.y0, e.y1) > yc {
				break
			}
			f.activeIdx = append(f.activeIdx, nextEdge)
			nextEdge++
		}

		f.xs = f.xs[:0]
		for i := 0; i < len(f.activeIdx); {
			e := &f.edges[f.activeIdx[i]]
			if max(e.y0, e.y1) <= yc {
				// remove from active list (swap with last)
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}
			f.xs = append(f.xs, crossing{
				x:   e.x0 + e.dxdy*(yc-e.y0),
				dir: e.dir,
			})
			i++
		}
		if len(f.xs) < 2 {
			continue
		}
		slices.SortFunc(f.xs, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		winding := 0
		var start float64
		for _, c := range f.xs {
			prev := winding
			winding += c.dir
			switch {
			case prev == 0 && winding != 0:
				start = c.x
			case prev != 0 && winding == 0:
				spans = appendRun(spans, start, c.x, y)
			}
		}
	}
	return spans
}

// appendRun appends the pixels with centre in [from, to) in row y,
// merging with the previous span where the two touch.
func appendRun(spans []Span, from, to float64, y int) []Span {
	x1 := int(math.Ceil(from - 0.5))
	x2 := int(math.Ceil(to-0.5)) - 1
	if x1 > x2 {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Y == y && spans[n-1].X2+1 >= x1 {
		spans[n-1].X2 = max(spans[n-1].X2, x2)
		return spans
	}
	return append(spans, Span{X1: x1, X2: x2, Y: y})
}

// collectEdges walks the path, transforms to device space, and builds the
// edge list. The result is false if the path has no non-horizontal edges.
func (f *filler) collectEdges(p path.Path) bool {
	f.edges = f.edges[:0]
	f.bboxEmpty = true
	if p == nil {
		return false
	}

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	open := false

	closeSubpath := func() {
		if open && current != subpath {
			f.addEdge(current, subpath)
		}
		current = subpath
		open = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = pts[0]
			subpath = current

		case path.CmdLineTo:
			f.addEdge(current, pts[0])
			current = pts[0]
			open = true

		case path.CmdQuadTo:
			f.flattenQuadratic(current, pts[0], pts[1], f.addEdge)
			current = pts[1]
			open = true

		case path.CmdCubeTo:
			f.flattenCubic(current, pts[0], pts[1], pts[2], f.addEdge)
			current = pts[2]
			open = true

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	return len(f.edges) > 0
}

// polygon returns the closed outline through the given vertices.
func polygon(vertices ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(vertices) == 0 {
			return
		}
		var buf [1]vec.Vec2
		cmd := path.CmdMoveTo
		for _, v := range vertices {
			buf[0] = v
			if !yield(cmd, buf[:]) {
				return
			}
			cmd = path.CmdLineTo
		}
		yield(path.CmdClose, nil)
	}
}

// addEdge adds an edge from user space coordinates, transforming to device space.
func (f *filler) addEdge(p0, p1 vec.Vec2) {
	dx0 := f.CTM[0]*p0.X + f.CTM[2]*p0.Y + f.CTM[4]
	dy0 := f.CTM[1]*p0.X + f.CTM[3]*p0.Y + f.CTM[5]
	dx1 := f.CTM[0]*p1.X + f.CTM[2]*p1.Y + f.CTM[4]
	dy1 := f.CTM[1]*p1.X + f.CTM[3]*p1.Y + f.CTM[5]

	// horizontal edges never cross a row centre line
	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	dir := 1
	if dy < 0 {
		dir = -1
	}
	f.edges = append(f.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
		dir:  dir,
	})

	b := rect.Rect{
		LLx: min(dx0, dx1),
		LLy: min(dy0, dy1),
		URx: max(dx0, dx1),
		URy: max(dy0, dy1),
	}
	if f.bboxEmpty {
		f.bbox = b
		f.bboxEmpty = false
	} else {
		f.bbox.LLx = min(f.bbox.LLx, b.LLx)
		f.bbox.LLy = min(f.bbox.LLy, b.LLy)
		f.bbox.URx = max(f.bbox.URx, b.URx)
		f.bbox.URy = max(f.bbox.URy, b.URy)
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to be kept.
	horizontalEdgeThreshold = 1e-10
)
