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
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestModelEndToEnd(t *testing.T) {
	black := NewUniform(4, 4, RGB{0, 0, 0})
	m := NewModelWithBackground(black, RGB{255, 255, 255}, rand.New(rand.NewPCG(1, 1)))

	if got := m.Errors(); len(got) != 1 || got[0] != 255 {
		t.Fatalf("initial errors %v", got)
	}

	e := NewEllipse(2, 2, 4, 4, 255)
	c := ShapeColor(e, m.Current(), m.Target())
	if c != (RGB{0, 0, 0}) {
		t.Errorf("best colour %v", c)
	}
	if err := m.Commit(e, c); err != 0 {
		t.Errorf("error after commit %g", err)
	}
	if err := compareImages("end_to_end", black, m.Current()); err != nil {
		t.Error(err)
	}
	if len(m.Shapes()) != 1 || len(m.Colors()) != 1 || len(m.Errors()) != 2 {
		t.Errorf("history lengths %d, %d, %d",
			len(m.Shapes()), len(m.Colors()), len(m.Errors()))
	}
}

func TestModelBackground(t *testing.T) {
	target := NewImage(2, 1)
	target.SetRGB(0, 0, RGB{10, 20, 31})
	target.SetRGB(1, 0, RGB{20, 40, 60})
	m := NewModel(target, rand.New(rand.NewPCG(2, 2)))

	want := RGB{15, 30, 45} // 91/2 rounds down
	if m.Background() != want {
		t.Errorf("background %v, want %v", m.Background(), want)
	}
	if m.Current().RGBAt(1, 0) != want {
		t.Errorf("canvas not filled with background")
	}
}

func TestModelStep(t *testing.T) {
	target := gradientImage(24, 16)
	m := NewModel(target, rand.New(rand.NewPCG(3, 3)))
	m.Incremental = true

	for i := range 4 {
		shape, err, stepErr := m.Step(EllipseKind, 2, 20, 40)
		if stepErr != nil {
			t.Fatal(stepErr)
		}
		if shape == nil {
			t.Fatal("no shape")
		}
		if len(m.Errors()) != len(m.Shapes())+1 {
			t.Fatalf("step %d: %d errors for %d shapes", i, len(m.Errors()), len(m.Shapes()))
		}
		if err != m.CurrentError() || err != RMSError(m.Current(), target) {
			t.Errorf("step %d: inconsistent error %g", i, err)
		}
	}
	if m.CurrentError() >= m.Errors()[0] {
		t.Errorf("error did not decrease: %v", m.Errors())
	}
}

func TestModelReproducible(t *testing.T) {
	run := func() [][]int {
		m := NewModel(gradientImage(20, 20), rand.New(rand.NewPCG(4, 4)))
		m.Alpha = 200
		var params [][]int
		for range 3 {
			shape, _, err := m.Step(TriangleKind, 2, 10, 20)
			if err != nil {
				t.Fatal(err)
			}
			if shape.Alpha() != 200 {
				t.Errorf("alpha %d", shape.Alpha())
			}
			params = append(params, shape.Params())
		}
		return params
	}
	a, b := run(), run()
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			t.Errorf("step %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestModelStepNoShape(t *testing.T) {
	cases := []struct {
		kind          *Kind
		width, height int
	}{
		{TriangleKind, 1, 1},
		{TriangleKind, 1, 8},
		{TriangleKind, 8, 1},
		{RotatedEllipseKind, 1, 1},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s_%dx%d", c.kind.Name, c.width, c.height), func(t *testing.T) {
			m := NewModel(gradientImage(c.width, c.height), rand.New(rand.NewPCG(9, 9)))
			before := m.Current().Clone()

			shape, rms, err := m.Step(c.kind, 2, 10, 10)
			if !errors.Is(err, ErrNoShape) {
				t.Fatalf("expected ErrNoShape, got %v", err)
			}
			if shape != nil {
				t.Errorf("got shape %s", shape)
			}
			if rms != m.Errors()[0] {
				t.Errorf("error changed to %g", rms)
			}
			if m.NumShapes() != 0 || len(m.Errors()) != 1 {
				t.Error("a shape was committed")
			}
			if !slices.Equal(m.Current().Pix, before.Pix) {
				t.Error("canvas was modified")
			}
		})
	}
}

func TestModelStepThinImages(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 8}, {8, 1}} {
		m := NewModel(gradientImage(size[0], size[1]), rand.New(rand.NewPCG(9, 9)))
		if _, _, err := m.Step(EllipseKind, 2, 10, 10); err != nil {
			t.Errorf("%dx%d: %v", size[0], size[1], err)
		}
	}
}

func TestModelHistoryCopies(t *testing.T) {
	m := NewModel(gradientImage(8, 8), rand.New(rand.NewPCG(2, 2)))
	if _, _, err := m.Step(EllipseKind, 1, 5, 5); err != nil {
		t.Fatal(err)
	}

	shapes, colors, errs := m.Shapes(), m.Colors(), m.Errors()
	shapes[0] = nil
	colors[0] = RGB{R: 1, G: 2, B: 3}
	errs[1] = -1

	if m.Shapes()[0] == nil {
		t.Error("Shapes exposes the internal slice")
	}
	if m.Colors()[0] == colors[0] {
		t.Error("Colors exposes the internal slice")
	}
	if m.Errors()[1] != m.CurrentError() || m.CurrentError() < 0 {
		t.Error("Errors exposes the internal slice")
	}
}
