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

// Command export writes all shape test cases, together with their spans,
// to testdata/testcases.json, for use by external tools.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/shapefit"
	"seehuhn.de/go/shapefit/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Params []int   `json:"params"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Spans  [][]int `json:"spans"`
}

func toJSON(category string, tc testcases.ShapeCase) (jsonTestCase, error) {
	kind, ok := shapefit.LookupKind(tc.Kind)
	if !ok {
		return jsonTestCase{}, &unknownKindError{tc.Kind}
	}
	shape, err := kind.New(tc.Params, shapefit.DefaultAlpha)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Kind:   tc.Kind,
		Params: tc.Params,
		Width:  tc.Width,
		Height: tc.Height,
		Spans:  [][]int{},
	}
	for _, s := range shape.Spans() {
		jtc.Spans = append(jtc.Spans, []int{s.X1, s.X2, s.Y})
	}
	return jtc, nil
}

type unknownKindError struct {
	name string
}

func (e *unknownKindError) Error() string {
	return "unknown shape kind " + e.name
}
