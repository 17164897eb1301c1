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

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SizedImage holds an image together with its horizontally mirrored
// variant and its size in pixels.
type SizedImage struct {
	Original image.Image
	Flipped  image.Image
	Size     Size
}

// NewSizedImage measures img and precomputes its mirrored variant.
func NewSizedImage(img image.Image) SizedImage {
	b := img.Bounds()
	return SizedImage{
		Original: img,
		Flipped:  FlipHorizontal(img),
		Size:     Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
	}
}

// FlipHorizontal returns a copy of img mirrored about its vertical center
// line.  The result has its origin at (0, 0).
func FlipHorizontal(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	// x ↦ Max.X - x, y ↦ y - Min.Y
	s2d := f64.Aff3{
		-1, 0, float64(b.Max.X),
		0, 1, float64(-b.Min.Y),
	}
	draw.NearestNeighbor.Transform(dst, s2d, img, b, draw.Src, nil)
	return dst
}

// PaintParameters is the stored state of an image paint: which image,
// which part of it, and at what scale.
//
// The engine never keeps a PaintParameters value; callers own it and
// replace the source rect with the results of [Resolve] or [Gesture].
type PaintParameters struct {
	Image      SizedImage
	SourceRect NormalizedRect
	Scale      float64
}

// NewPaintParameters returns parameters selecting the whole of img at
// scale 1.
func NewPaintParameters(img SizedImage) PaintParameters {
	return PaintParameters{
		Image:      img,
		SourceRect: UnitRect,
		Scale:      1,
	}
}

// FitScale sets the scale so that the image, drawn at full size, is one
// third as wide as a picker of the given width.  The picker shows the
// unit square in the middle cell of a 3×3 grid.
// Images without width leave the scale unchanged.
func (p *PaintParameters) FitScale(pickerWidth float64) {
	if !(p.Image.Size.Width > 0) {
		return
	}
	p.Scale = pickerWidth / 3 / p.Image.Size.Width
}
