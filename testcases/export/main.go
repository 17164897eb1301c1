// seehuhn.de/go/paintpick - source rectangles for image paints
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

// Command export writes all test cases, together with the source rects
// computed for them, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/paintpick"
	"seehuhn.de/go/paintpick/testcases"
)

func main() {
	outPath := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("export: ")

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				log.Fatal(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonTestCase struct {
	Name       string     `json:"name"`
	Width      int        `json:"width,omitempty"`
	Height     int        `json:"height,omitempty"`
	Op         string     `json:"op"`
	Translate  []float64  `json:"translate,omitempty"`
	LockAspect bool       `json:"lock_aspect,omitempty"`
	Policy     string     `json:"policy"`
	Rect       [4]float64 `json:"rect"`
	Want       [4]float64 `json:"want"`
	Got        [4]float64 `json:"got"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	name := category + "_" + tc.Name
	got, err := paintpick.RunExample(tc)
	if err != nil {
		return jsonTestCase{}, fmt.Errorf("%s: %w", name, err)
	}

	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
		Policy: tc.Policy,
		Rect:   [4]float64{tc.Rect.X, tc.Rect.Y, tc.Rect.W, tc.Rect.H},
		Want:   [4]float64{tc.Want.X, tc.Want.Y, tc.Want.W, tc.Want.H},
		Got:    [4]float64{got.Origin.X, got.Origin.Y, got.Size.Width, got.Size.Height},
	}

	switch op := tc.Op.(type) {
	case testcases.Move:
		jtc.Op = "move"
		jtc.Translate = []float64{op.By.X, op.By.Y}
	case testcases.Resize:
		jtc.Op = "resize"
		jtc.Translate = []float64{op.By.X, op.By.Y}
		jtc.LockAspect = op.LockAspect
	case testcases.Clamp:
		jtc.Op = "clamp"
	}
	return jtc, nil
}
