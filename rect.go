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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Size is a width/height pair. Depending on context it holds the pixel
// dimensions of an image or viewport, or the extent of a normalized rect.
type Size struct {
	Width, Height float64
}

// IsEmpty reports whether either dimension is not strictly positive.
// NaN dimensions count as empty.
func (s Size) IsEmpty() bool {
	return !(s.Width > 0) || !(s.Height > 0)
}

// NormalizedRect is a rectangle in unit space, where the full image covers
// [0,1]×[0,1] and y grows downwards.
//
// The zero value is the empty rect at the origin. Any values may be stored;
// validity is only restored by [Clamp].
type NormalizedRect struct {
	Origin vec.Vec2
	Size   Size
}

// UnitRect selects the whole image.
var UnitRect = NormalizedRect{Size: Size{Width: 1, Height: 1}}

// Rect returns the normalized rect with origin (x, y) and size (w, h).
func Rect(x, y, w, h float64) NormalizedRect {
	return NormalizedRect{
		Origin: vec.Vec2{X: x, Y: y},
		Size:   Size{Width: w, Height: h},
	}
}

// MaxX returns the x coordinate of the right edge.
func (r NormalizedRect) MaxX() float64 {
	return r.Origin.X + r.Size.Width
}

// MaxY returns the y coordinate of the bottom edge.
func (r NormalizedRect) MaxY() float64 {
	return r.Origin.Y + r.Size.Height
}

func (r NormalizedRect) overflowsHorizontally() bool {
	return r.Origin.X < 0 || r.MaxX() > 1
}

func (r NormalizedRect) overflowsVertically() bool {
	return r.Origin.Y < 0 || r.MaxY() > 1
}

// Overflow reports on which axes r extends beyond the unit square.
// The result is one of [OverflowNone], [OverflowHorizontal],
// [OverflowVertical] and [OverflowBoth].
func (r NormalizedRect) Overflow() OverflowPolicy {
	h := r.overflowsHorizontally()
	v := r.overflowsVertically()
	switch {
	case h && v:
		return OverflowBoth
	case h:
		return OverflowHorizontal
	case v:
		return OverflowVertical
	default:
		return OverflowNone
	}
}

// Bounds returns r in lower-left/upper-right form.
func (r NormalizedRect) Bounds() rect.Rect {
	return rect.Rect{
		LLx: r.Origin.X,
		LLy: r.Origin.Y,
		URx: r.MaxX(),
		URy: r.MaxY(),
	}
}

// FromBounds converts a rect.Rect back to origin/size form.
func FromBounds(b rect.Rect) NormalizedRect {
	return Rect(b.LLx, b.LLy, b.URx-b.LLx, b.URy-b.LLy)
}

// Outline returns the boundary of r as a closed path.
func (r NormalizedRect) Outline() *path.Data {
	x0, y0 := r.Origin.X, r.Origin.Y
	x1, y1 := r.MaxX(), r.MaxY()
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// Transform returns the bounding box of r under the affine map m.
func (r NormalizedRect) Transform(m matrix.Matrix) NormalizedRect {
	corners := [4]vec.Vec2{
		{X: r.Origin.X, Y: r.Origin.Y},
		{X: r.MaxX(), Y: r.Origin.Y},
		{X: r.Origin.X, Y: r.MaxY()},
		{X: r.MaxX(), Y: r.MaxY()},
	}
	b := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, c := range corners {
		p := apply(m, c)
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return FromBounds(b)
}

// Equal reports whether all coordinates of r and o differ by at most eps.
func (r NormalizedRect) Equal(o NormalizedRect, eps float64) bool {
	return math.Abs(r.Origin.X-o.Origin.X) <= eps &&
		math.Abs(r.Origin.Y-o.Origin.Y) <= eps &&
		math.Abs(r.Size.Width-o.Size.Width) <= eps &&
		math.Abs(r.Size.Height-o.Size.Height) <= eps
}

// apply maps p through m, using the PDF convention [a b c d e f].
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
