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

package paintpick

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// DrawPaint fills r in dst with the paint p: the part of the image named
// by the source rect is scaled by p.Scale and repeated across r, starting
// at the top-left corner of r.  Parts of the source rect outside the
// image wrap around.
//
// DrawPaint draws nothing if the image is missing or empty, or if a scale
// factor is not positive.
func DrawPaint(dst draw.Image, r image.Rectangle, p Paint) {
	if p.Image == nil || r.Empty() || !(p.Scale.X > 0) || !(p.Scale.Y > 0) {
		return
	}
	tile := sourceTile(p.Image, p.SourceRect)
	if tile == nil {
		return
	}

	tb := tile.Bounds()
	dw := max(1, int(math.Round(float64(tb.Dx())*p.Scale.X)))
	dh := max(1, int(math.Round(float64(tb.Dy())*p.Scale.Y)))
	scaled := scaleTile(tile, dw, dh, r.Size())

	for y := r.Min.Y; y < r.Max.Y; y += dh {
		for x := r.Min.X; x < r.Max.X; x += dw {
			cell := image.Rect(x, y, x+dw, y+dh).Intersect(r)
			draw.Draw(dst, cell, scaled, image.Point{}, draw.Over)
		}
	}
}

// scaleTile scales tile to dw×dh pixels and returns the top-left part of
// the result, at most limit in size.  Pixels beyond limit are never
// computed.
func scaleTile(tile *image.RGBA, dw, dh int, limit image.Point) *image.RGBA {
	tb := tile.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, min(dw, limit.X), min(dh, limit.Y)))
	s2d := f64.Aff3{
		float64(dw) / float64(tb.Dx()), 0, float64(-tb.Min.X),
		0, float64(dh) / float64(tb.Dy()), float64(-tb.Min.Y),
	}
	draw.ApproxBiLinear.Transform(out, s2d, tile, tb, draw.Src, nil)
	return out
}

// sourceTile copies the pixels of img covered by src, in unit coordinates,
// into a new image.  Coordinates outside the image wrap around.
func sourceTile(img image.Image, src NormalizedRect) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	bb := src.Bounds()
	x0 := int(math.Floor(bb.LLx * float64(w)))
	y0 := int(math.Floor(bb.LLy * float64(h)))
	tw := max(1, int(math.Ceil(bb.URx*float64(w)))-x0)
	th := max(1, int(math.Ceil(bb.URy*float64(h)))-y0)

	tile := image.NewRGBA(image.Rect(0, 0, tw, th))
	for ty := 0; ty < th; {
		sy := mod(y0+ty, h)
		rows := min(th-ty, h-sy)
		for tx := 0; tx < tw; {
			sx := mod(x0+tx, w)
			cols := min(tw-tx, w-sx)
			dr := image.Rect(tx, ty, tx+cols, ty+rows)
			draw.Draw(tile, dr, img, image.Pt(b.Min.X+sx, b.Min.Y+sy), draw.Src)
			tx += cols
		}
		ty += rows
	}
	return tile
}

// mod returns a mod n in the range [0, n).
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
