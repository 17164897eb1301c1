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

// Command genpdf draws every test case into a PDF file for visual
// inspection.  With -png, the PDFs are also rendered using Ghostscript.
//
// Each page shows the picker layout: the unit square in the middle cell of
// a 3×3 grid, the source rect before the operation as an outline and the
// resulting source rect as a filled rectangle.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/paintpick"
	"seehuhn.de/go/paintpick/testcases"
)

// cell is the size of the unit square on the page, in points.
const cell = 100

// unitToPage maps the unit square to the middle cell of the page.
var unitToPage = matrix.Matrix{cell, 0, 0, cell, cell, cell}

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	png := flag.Bool("png", false, "also render PNG files using Ghostscript")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genpdf: ")

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			got, err := paintpick.RunExample(tc)
			if err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(paintpick.FromCase(tc.Rect), got, pdfPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}

			if *png {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					log.Fatal(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(before, after paintpick.NormalizedRect, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: 3 * cell,
		URy: 3 * cell,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	drawPath := func(p *path.Data) {
		for cmd, pts := range p.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	page.SetFillColor(color.DeviceGray(0.5))
	page.Rectangle(0, 0, 3*cell, 3*cell)
	page.Fill()

	// PDF origin is bottom-left; source rects use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, 3 * cell})

	page.SetFillColor(color.DeviceGray(0.2))
	page.Rectangle(cell, cell, cell, cell)
	page.Fill()

	page.SetFillColor(color.DeviceGray(0.9))
	drawPath(after.Transform(unitToPage).Outline())
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(2)
	drawPath(before.Transform(unitToPage).Outline())
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
